package game

import (
	"context"
	"log"
	"math"

	"oneko/config"
	"oneko/internal/entity"
	"oneko/internal/monitor"
	"oneko/internal/oneko"

	"github.com/hajimehoshi/ebiten/v2"
)

// window 窗口相关的调用，包一层方便测试
type window interface {
	Position() (int, int)
	SetPosition(x, y int)
	Cursor() (int, int)
	SetTPS(tps int)
	QuitPressed() bool
}

type ebitenWindow struct{}

func (ebitenWindow) Position() (int, int) { return ebiten.WindowPosition() }
func (ebitenWindow) SetPosition(x, y int) { ebiten.SetWindowPosition(x, y) }
func (ebitenWindow) Cursor() (int, int)   { return ebiten.CursorPosition() }
func (ebitenWindow) SetTPS(tps int)       { ebiten.SetTPS(tps) }
func (ebitenWindow) QuitPressed() bool    { return ebiten.IsKeyPressed(ebiten.KeyEscape) }

// Manager 实现 ebiten.Game，同时是小猫的 Surface：
// 窗口就是那个 32x32 的元素，移动窗口就是移动小猫。
type Manager struct {
	Cat *oneko.Driver

	cfg     *config.Config
	win     window
	sampler *monitor.Sampler
	ctx     context.Context

	sheet   *ebiten.Image // 精灵图，加载失败时为 nil，什么都不画
	frame   *ebiten.Image // 当前帧 (sheet 的子图)
	visible bool

	loop        *oneko.Loop
	lastPointer entity.Vec
	hasPointer  bool
	tps         int
}

// NewManager sheet 和 sampler 都可以为 nil
func NewManager(cfg *config.Config, sheet *ebiten.Image, sampler *monitor.Sampler, opts ...oneko.Option) *Manager {
	return &Manager{
		Cat:     oneko.New(opts...),
		cfg:     cfg,
		win:     ebitenWindow{},
		sampler: sampler,
		sheet:   sheet,
	}
}

// SetupWindow 窗口基础设置：无边框、透明、置顶、鼠标穿透
func SetupWindow(cfg *config.Config) {
	ebiten.SetWindowDecorated(false)
	ebiten.SetScreenTransparent(true)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowTitle("oneko")
	ebiten.SetRunnableOnUnfocused(true)

	size := int(math.Round(entity.FrameSize * cfg.Scale))
	ebiten.SetWindowSize(size, size)
	ebiten.SetTPS(cfg.TPS)
}

// ScreenCenter 当前显示器中心，作为小猫的初始位置
func ScreenCenter() entity.Vec {
	w, h := ebiten.Monitor().Size()
	return entity.Vec{X: float64(w) / 2, Y: float64(h) / 2}
}

// Init 开始跑。ctx 取消后下一帧退出。
func (g *Manager) Init(ctx context.Context, origin entity.Vec) {
	g.ctx = ctx
	g.tps = g.cfg.TPS
	g.hasPointer = false
	g.loop = g.Cat.Start(g, origin)
	log.Printf("[Game] Started at (%.0f, %.0f)", origin.X, origin.Y)
}

// Close 停止小猫，可以重复调用
func (g *Manager) Close() {
	g.Cat.Stop()
}

func (g *Manager) Update() error {
	// 1. 退出：ESC 或者收到信号
	if g.win.QuitPressed() || (g.ctx != nil && g.ctx.Err() != nil) {
		g.Close()
		return ebiten.Termination
	}

	// 2. 鼠标移动才通知小猫
	g.pollPointer()

	// 3. 推进一帧
	f, ok := g.Cat.Tick()
	if !ok {
		return ebiten.Termination
	}

	// 4. 动态调整 TPS
	g.adjustTPS(f)
	return nil
}

// pollPointer 鼠标的屏幕坐标 = 窗口位置 + 窗口内坐标 (逻辑坐标要乘回缩放)
func (g *Manager) pollPointer() {
	wx, wy := g.win.Position()
	cx, cy := g.win.Cursor()
	p := entity.Vec{
		X: float64(wx) + float64(cx)*g.cfg.Scale,
		Y: float64(wy) + float64(cy)*g.cfg.Scale,
	}
	if g.hasPointer && p == g.lastPointer {
		return
	}
	g.lastPointer = p
	g.hasPointer = true
	g.Cat.PointerMoved(p.X, p.Y)
}

func (g *Manager) adjustTPS(f entity.Frame) {
	want := g.cfg.TPS
	if !f.Moving {
		want = g.cfg.IdleTPS
		// 没人理它又赶上系统繁忙，进一步省电
		if g.cfg.PowerSaver && g.sampler.Stressed(g.cfg.StressCPU) {
			want = g.cfg.StressedTPS
		}
	}
	if want != g.tps {
		g.tps = want
		g.win.SetTPS(want)
	}
}

func (g *Manager) Draw(screen *ebiten.Image) {
	if !g.visible || g.frame == nil {
		return
	}
	screen.DrawImage(g.frame, nil)
}

func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 画布就是一帧的大小，窗口缩放交给 ebiten
	return entity.FrameSize, entity.FrameSize
}

// Place 实现 oneko.Surface
func (g *Manager) Place(x, y float64) {
	g.visible = true
	g.win.SetPosition(int(math.Round(x)), int(math.Round(y)))
}

// Show 实现 oneko.Surface
func (g *Manager) Show(offset entity.SheetOffset) {
	if g.sheet == nil {
		return
	}
	sub, ok := g.sheet.SubImage(offset.Rect()).(*ebiten.Image)
	if !ok {
		return
	}
	g.frame = sub
}

// Remove 实现 oneko.Surface
func (g *Manager) Remove() {
	g.visible = false
	g.frame = nil
}

// Loop 当前的更新循环
func (g *Manager) Loop() *oneko.Loop {
	return g.loop
}
