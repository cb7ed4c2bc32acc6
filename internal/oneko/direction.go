package oneko

import (
	"math"

	"oneko/internal/entity"
)

// Classify 根据位移 (dx, dy) 判断朝向。
// 屏幕坐标 Y 轴向下，所以 45° 是右下。
func Classify(dx, dy float64) entity.Direction {
	return ClassifyAngle(math.Atan2(dy, dx) * (180 / math.Pi))
}

// ClassifyAngle 把角度 (度，范围 (-180, 180]) 分到 8 个 45° 扇区里，
// 扇区边界在 22.5° 的奇数倍上，左闭右开。
func ClassifyAngle(angle float64) entity.Direction {
	switch {
	case angle >= -22.5 && angle < 22.5:
		return entity.DirRight
	case angle >= 22.5 && angle < 67.5:
		return entity.DirDownRight
	case angle >= 67.5 && angle < 112.5:
		return entity.DirDown
	case angle >= 112.5 && angle < 157.5:
		return entity.DirDownLeft
	case angle >= 157.5 || angle < -157.5:
		return entity.DirLeft
	case angle >= -157.5 && angle < -112.5:
		return entity.DirUpLeft
	case angle >= -112.5 && angle < -67.5:
		return entity.DirUp
	case angle >= -67.5 && angle < -22.5:
		return entity.DirUpRight
	}
	// 只有 NaN 会走到这里
	return entity.DirDown
}
