package entity

import "image"

// FrameSize 精灵图里每一帧的边长 (像素)
const FrameSize = 32

// Vec 屏幕坐标下的一个点 (或者位移)
type Vec struct {
	X float64
	Y float64
}

// Sub 返回 v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Direction 猫的朝向，一共 8 个
type Direction string

const (
	DirUp        Direction = "up"
	DirDown      Direction = "down"
	DirLeft      Direction = "left"
	DirRight     Direction = "right"
	DirUpLeft    Direction = "up-left"
	DirUpRight   Direction = "up-right"
	DirDownLeft  Direction = "down-left"
	DirDownRight Direction = "down-right"
)

// Directions 按顺时针列出全部朝向 (从右开始)
var Directions = []Direction{
	DirRight, DirDownRight, DirDown, DirDownLeft,
	DirLeft, DirUpLeft, DirUp, DirUpRight,
}

// IdleState 待机时的子状态
type IdleState string

const (
	IdleNone     IdleState = ""         // 正在走路，没有待机
	IdlePurring  IdleState = "purring"  // 呼噜
	IdleSleeping IdleState = "sleeping" // 睡觉
	IdleSit      IdleState = "sit"      // 呼噜完了坐着
)

// SheetOffset 精灵图上某一帧左上角的像素坐标
type SheetOffset struct {
	X int
	Y int
}

// Rect 这一帧在精灵图上占的矩形区域
func (o SheetOffset) Rect() image.Rectangle {
	return image.Rect(o.X, o.Y, o.X+FrameSize, o.Y+FrameSize)
}

// Frame 每一帧 Tick 的结果，给宿主渲染，也方便测试
type Frame struct {
	Actor     Vec         // 猫的逻辑位置
	Position  Vec         // 实际绘制位置 (X 多了 16 的锚点补偿)
	Direction Direction   // 当前朝向
	Moving    bool        // 这一帧是否在移动
	Idle      IdleState   // 待机子状态，移动时为 IdleNone
	Offset    SheetOffset // 精灵图偏移
}
