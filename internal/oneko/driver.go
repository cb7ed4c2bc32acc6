// Package oneko 是追着鼠标跑的小猫的动画逻辑。
// 这里只做纯计算：位置、朝向、精灵图偏移；真正的窗口和绘制交给宿主 (Surface)。
package oneko

import (
	"math"
	"math/rand/v2"
	"time"

	"oneko/internal/entity"
)

const (
	Speed           = 2.0                    // 每帧最多走多少像素
	MoveThreshold   = 1.0                    // 距离大于这个值才算移动，避免原地抖动
	DrawOffsetX     = 16.0                   // 绘制锚点和逻辑位置的 X 偏差
	FrameDelay      = 150 * time.Millisecond // 走路、呼噜的换帧间隔
	SleepFrameDelay = 2 * FrameDelay         // 睡觉换帧慢一倍
	PurringDuration = 3000 * time.Millisecond
)

// Surface 是宿主提供的那个 32x32 的可视元素
type Surface interface {
	Place(x, y float64)
	Show(offset entity.SheetOffset)
	Remove()
}

// Rand 随机数来源，测试时可以换成固定值
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Option 配置 Driver
type Option func(*Driver)

// WithClock 替换时钟
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// WithRand 替换随机数来源
func WithRand(r Rand) Option {
	return func(d *Driver) { d.rng = r }
}

// idleSession 只在停下来的时候存在
type idleSession struct {
	state      entity.IdleState
	start      time.Time
	frame      int
	frameTimer time.Time
}

// Driver 持有小猫的全部可变状态，只能在宿主的更新线程里使用
type Driver struct {
	now func() time.Time
	rng Rand

	surface   Surface
	loop      *Loop
	listening bool // 是否还在接收鼠标移动

	pointer    entity.Vec
	actor      entity.Vec
	direction  entity.Direction
	frame      int
	frameTimer time.Time
	idle       *idleSession
}

// New 创建 Driver，还没开始跑
func New(opts ...Option) *Driver {
	d := &Driver{
		now:       time.Now,
		rng:       globalRand{},
		direction: entity.DirRight,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Start 把 surface 放到 origin (一般是屏幕中间)，开始接收鼠标移动，
// 返回代表这条更新链的 Loop。重复 Start 会先 Stop 掉上一次。
func (d *Driver) Start(surface Surface, origin entity.Vec) *Loop {
	if d.loop.Active() {
		d.Stop()
	}

	d.surface = surface
	d.pointer = origin
	d.actor = origin
	d.direction = entity.DirRight
	d.frame = 0
	d.frameTimer = time.Time{}
	d.idle = nil
	d.listening = true
	d.loop = &Loop{}

	if d.surface != nil {
		d.surface.Place(origin.X+DrawOffsetX, origin.Y)
		d.surface.Show(entity.SheetOffset{})
	}
	return d.loop
}

// PointerMoved 只记录最新的鼠标坐标，不做任何计算
func (d *Driver) PointerMoved(x, y float64) {
	if !d.listening {
		return
	}
	d.pointer = entity.Vec{X: x, Y: y}
}

// Tick 每个显示帧调用一次。循环已经停了就什么都不做，返回 false。
func (d *Driver) Tick() (entity.Frame, bool) {
	if !d.loop.Active() {
		return entity.Frame{}, false
	}
	d.loop.ticks++

	now := d.now()
	delta := d.pointer.Sub(d.actor)
	dist := math.Hypot(delta.X, delta.Y)
	moving := dist > MoveThreshold

	if moving {
		// 越靠近走得越慢，永远不会一步越过目标
		step := math.Min(Speed, dist/10)
		angle := math.Atan2(delta.Y, delta.X)
		d.actor.X += math.Cos(angle) * step
		d.actor.Y += math.Sin(angle) * step
		d.direction = Classify(delta.X, delta.Y)
	}

	pos := entity.Vec{X: d.actor.X + DrawOffsetX, Y: d.actor.Y}
	if d.surface != nil {
		d.surface.Place(pos.X, pos.Y)
	}

	// 走路帧一直在交替，只有移动时才看得到
	if now.Sub(d.frameTimer) > FrameDelay {
		d.frame = (d.frame + 1) % 2
		d.frameTimer = now
	}

	var offset entity.SheetOffset
	if moving {
		d.idle = nil
		offset = WalkFrames[d.direction][d.frame]
	} else {
		offset = d.idleOffset(now)
	}
	if d.surface != nil {
		d.surface.Show(offset)
	}

	return entity.Frame{
		Actor:     d.actor,
		Position:  pos,
		Direction: d.direction,
		Moving:    moving,
		Idle:      d.IdleState(),
		Offset:    offset,
	}, true
}

func (d *Driver) idleOffset(now time.Time) entity.SheetOffset {
	if d.idle == nil {
		state := entity.IdleSleeping
		if d.rng.Float64() < 0.5 {
			state = entity.IdlePurring
		}
		d.idle = &idleSession{state: state, start: now, frameTimer: now}
	}

	s := d.idle
	switch s.state {
	case entity.IdlePurring:
		if now.Sub(s.start) >= PurringDuration {
			// 呼噜够了就坐下，换帧计时不重置
			s.state = entity.IdleSit
			return sitOffset(d.direction)
		}
		if now.Sub(s.frameTimer) > FrameDelay {
			s.frame = (s.frame + 1) % len(PurringFrames)
			s.frameTimer = now
		}
		return PurringFrames[s.frame]
	case entity.IdleSleeping:
		if now.Sub(s.frameTimer) > SleepFrameDelay {
			s.frame = (s.frame + 1) % len(SleepingFrames)
			s.frameTimer = now
		}
		return SleepingFrames[s.frame]
	default:
		return sitOffset(d.direction)
	}
}

func sitOffset(dir entity.Direction) entity.SheetOffset {
	if off, ok := SitFrames[dir]; ok {
		return off
	}
	return sitFallback
}

// Stop 取消循环、停止接收鼠标、移除 surface。
// 没 Start 过或者重复调用都没关系。
func (d *Driver) Stop() {
	if d == nil {
		return
	}
	d.loop.Stop()
	d.listening = false
	if d.surface != nil {
		d.surface.Remove()
		d.surface = nil
	}
}

// Running 循环是否还在跑
func (d *Driver) Running() bool {
	return d.loop.Active()
}

// Direction 当前朝向
func (d *Driver) Direction() entity.Direction {
	return d.direction
}

// Actor 当前逻辑位置
func (d *Driver) Actor() entity.Vec {
	return d.actor
}

// Pointer 最后一次记录到的鼠标位置
func (d *Driver) Pointer() entity.Vec {
	return d.pointer
}

// IdleState 当前待机子状态，没有待机时返回 IdleNone
func (d *Driver) IdleState() entity.IdleState {
	if d.idle == nil {
		return entity.IdleNone
	}
	return d.idle.state
}
