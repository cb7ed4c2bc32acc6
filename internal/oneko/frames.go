package oneko

import "oneko/internal/entity"

// WalkFrames 每个朝向两帧走路动画
var WalkFrames = map[entity.Direction][2]entity.SheetOffset{
	entity.DirUp:        {{X: 32, Y: 64}, {X: 32, Y: 96}},
	entity.DirDown:      {{X: 224, Y: 320}, {X: 192, Y: 480}},
	entity.DirLeft:      {{X: 128, Y: 320}, {X: 128, Y: 480}},
	entity.DirRight:     {{X: 96, Y: 0}, {X: 96, Y: 160}},
	entity.DirUpLeft:    {{X: 0, Y: 0}, {X: 32, Y: 0}},
	entity.DirUpRight:   {{X: 0, Y: 64}, {X: 0, Y: 480}},
	entity.DirDownLeft:  {{X: 160, Y: 480}, {X: 192, Y: 160}},
	entity.DirDownRight: {{X: 160, Y: 160}, {X: 160, Y: 320}},
}

// PurringFrames 呼噜动画，5 帧循环
var PurringFrames = []entity.SheetOffset{
	{X: 96, Y: 480}, {X: 96, Y: 320}, {X: 192, Y: 0}, {X: 160, Y: 0}, {X: 224, Y: 0},
}

// SleepingFrames 睡觉动画，2 帧循环
var SleepingFrames = []entity.SheetOffset{
	{X: 64, Y: 0}, {X: 64, Y: 160},
}

// SitFrames 坐姿，按朝向取。
// 目前所有朝向都是同一帧，精灵图里还没有分方向的坐姿。
var SitFrames = map[entity.Direction]entity.SheetOffset{
	entity.DirDown:      {X: 96, Y: 480},
	entity.DirLeft:      {X: 96, Y: 480},
	entity.DirRight:     {X: 96, Y: 480},
	entity.DirUp:        {X: 96, Y: 480},
	entity.DirDownLeft:  {X: 96, Y: 480},
	entity.DirDownRight: {X: 96, Y: 480},
	entity.DirUpLeft:    {X: 96, Y: 480},
	entity.DirUpRight:   {X: 96, Y: 480},
}

// sitFallback 朝向不在表里时用的坐姿
var sitFallback = entity.SheetOffset{X: 96, Y: 0}

// NamedFrames 列出精灵图里所有用到的帧，-layout 检查时按这个顺序打印
func NamedFrames() []NamedFrame {
	var out []NamedFrame
	for _, dir := range entity.Directions {
		for i, off := range WalkFrames[dir] {
			out = append(out, NamedFrame{Name: "walk/" + string(dir), Index: i, Offset: off})
		}
	}
	for i, off := range PurringFrames {
		out = append(out, NamedFrame{Name: "purring", Index: i, Offset: off})
	}
	for i, off := range SleepingFrames {
		out = append(out, NamedFrame{Name: "sleeping", Index: i, Offset: off})
	}
	out = append(out, NamedFrame{Name: "sit", Offset: SitFrames[entity.DirDown]})
	return out
}

// NamedFrame 带名字的一帧
type NamedFrame struct {
	Name   string
	Index  int
	Offset entity.SheetOffset
}
