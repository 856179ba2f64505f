package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPausableClockElapsed(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	clock := NewPausableClockWith(mock)

	mock.Advance(1500 * time.Millisecond)
	if got := clock.Seconds(); got != 1.5 {
		t.Errorf("Seconds = %v, want 1.5", got)
	}

	clock.Pause()
	clock.Pause()
	mock.Advance(10 * time.Second)
	if got := clock.Elapsed(); got != 1500*time.Millisecond {
		t.Errorf("Elapsed while paused = %v, want frozen at 1.5s", got)
	}
	if got := clock.TotalPauseDuration(); got != 10*time.Second {
		t.Errorf("TotalPauseDuration = %v, want 10s", got)
	}

	clock.Resume()
	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 2500*time.Millisecond {
		t.Errorf("Elapsed after resume = %v, want 2.5s", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock := NewPausableClockWith(NewMockTimeProvider(epoch))
	if !clock.Toggle() || !clock.IsPaused() {
		t.Fatal("first Toggle should pause")
	}
	if clock.Toggle() || clock.IsPaused() {
		t.Fatal("second Toggle should resume")
	}
}

func TestMockTimeProviderAutoStep(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	mock.AutoStep(16 * time.Millisecond)
	a := mock.Now()
	b := mock.Now()
	if b.Sub(a) != 16*time.Millisecond {
		t.Errorf("auto step = %v, want 16ms", b.Sub(a))
	}
	mock.AutoStep(0)
	if !mock.Now().Equal(mock.Now()) {
		t.Error("zero step should freeze the mock")
	}
}
