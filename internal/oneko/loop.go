package oneko

// Loop 代表一条正在运行的逐帧更新链。
// 宿主每个显示帧调用一次 Driver.Tick，Stop 之后 Tick 不再生效。
// 所有方法都允许 nil 接收者，Stop 可以重复调用。
type Loop struct {
	stopped bool
	ticks   uint64
}

// Active 循环是否还在跑
func (l *Loop) Active() bool {
	return l != nil && !l.stopped
}

// Ticks 已经执行过的帧数
func (l *Loop) Ticks() uint64 {
	if l == nil {
		return 0
	}
	return l.ticks
}

// Stop 取消循环
func (l *Loop) Stop() {
	if l == nil {
		return
	}
	l.stopped = true
}
