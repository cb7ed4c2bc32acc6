package monitor

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSampleRounds(t *testing.T) {
	s := New(time.Hour)
	s.cpuFn = func() (float64, error) { return 83.26, nil }
	s.memFn = func() (float64, error) { return 41.04, nil }

	s.sample()

	got := s.Stats()
	if got.CPU != 83.3 || got.Mem != 41.0 {
		t.Errorf("Stats() = %+v, want {83.3 41}", got)
	}
	if !s.Stressed(80) {
		t.Error("Stressed(80) = false at 83.3% CPU")
	}
	if s.Stressed(90) {
		t.Error("Stressed(90) = true at 83.3% CPU")
	}
}

func TestSampleKeepsLastOnError(t *testing.T) {
	s := New(time.Hour)
	s.cpuFn = func() (float64, error) { return 50, nil }
	s.memFn = func() (float64, error) { return 60, nil }
	s.sample()

	s.cpuFn = func() (float64, error) { return 0, errors.New("boom") }
	s.sample()

	if got := s.Stats(); got.CPU != 50 || got.Mem != 60 {
		t.Errorf("Stats() = %+v, want previous values kept", got)
	}
}

func TestNilSamplerNeverStressed(t *testing.T) {
	var s *Sampler
	if s.Stressed(0) {
		t.Error("nil sampler reported stress")
	}
}

func TestStartStopsWithContext(t *testing.T) {
	s := New(5 * time.Millisecond)
	calls := make(chan struct{}, 100)
	s.cpuFn = func() (float64, error) {
		calls <- struct{}{}
		return 10, nil
	}
	s.memFn = func() (float64, error) { return 10, nil }

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("sampler never ran")
	}
	cancel()
}
