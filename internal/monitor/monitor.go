package monitor

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DefaultInterval 采样间隔，避免频繁占用资源
const DefaultInterval = 2 * time.Second

// Stats 一次采样结果 (百分比，0-100)
type Stats struct {
	CPU float64
	Mem float64
}

// Sampler 在后台定时采集 CPU / 内存占用
type Sampler struct {
	mu    sync.RWMutex
	stats Stats

	interval time.Duration
	cpuFn    func() (float64, error)
	memFn    func() (float64, error)
}

// New 创建采样器，interval <= 0 时用默认间隔
func New(interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{
		interval: interval,
		cpuFn:    cpuPercent,
		memFn:    memPercent,
	}
}

// Start 启动采样协程，ctx 取消后退出
func (s *Sampler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sample()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sample()
			}
		}
	}()
}

// Stats 最近一次的采样结果
func (s *Sampler) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Stressed CPU 是否超过阈值
func (s *Sampler) Stressed(threshold float64) bool {
	if s == nil {
		return false
	}
	return s.Stats().CPU >= threshold
}

func (s *Sampler) sample() {
	next := s.Stats()
	if v, err := s.memFn(); err == nil {
		next.Mem = round1(v)
	}
	if v, err := s.cpuFn(); err == nil {
		next.CPU = round1(v)
	}

	s.mu.Lock()
	s.stats = next
	s.mu.Unlock()
}

func memPercent() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

// cpuPercent 用距离上次调用的间隔计算，不阻塞采样协程
func cpuPercent() (float64, error) {
	c, err := cpu.Percent(0, false)
	if err != nil {
		return 0, err
	}
	if len(c) == 0 {
		return 0, nil
	}
	return c[0], nil
}

// round1 保留 1 位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
