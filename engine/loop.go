// Package engine drives a scene: a pausable clock and a frame loop that advances the scene,
// hands it to a render backend, and survives failing frames.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/event"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/status"
)

var (
	// ErrStopped is returned by Step once the loop has been stopped
	ErrStopped = errors.New("engine: loop stopped")

	// ErrFramePanic wraps a panic recovered inside a frame
	ErrFramePanic = errors.New("engine: frame panic")
)

// Metric keys published by the loop
const (
	MetricFrames   = "loop.frames"
	MetricFailures = "loop.failures"
	MetricRecycled = "loop.recycled"
	MetricEntities = "loop.entities"
	MetricFrameMs  = "loop.frame_ms"
	MetricPaused   = "loop.paused"
	MetricScene    = "scene.id"
	MetricEffect   = "scene.effect"
	MetricTier     = "scene.tier"
)

// frameMsWeight is the moving average weight of the newest frame time
const frameMsWeight = 0.1

// Loop owns one scene and advances it once per frame on a single goroutine
// Posted tasks run on that goroutine in FIFO order before the next advance
type Loop struct {
	sc      *scene.Scene
	backend render.Backend
	clock   *PausableClock
	log     *zap.Logger

	interval time.Duration

	mu      sync.Mutex
	tasks   []func()
	spare   []func() // drained buffer, swapped back in on the next drain
	onFrame func(n uint64)

	frames  atomic.Uint64
	stopped atomic.Bool

	pauseSub *event.Subscription

	// Cached metric pointers
	statFrames   *atomic.Int64
	statFailures *atomic.Int64
	statRecycled *atomic.Int64
	statEntities *atomic.Int64
	statFrameMs  *status.AtomicFloat
	statPaused   *atomic.Bool
}

// LoopOption configures NewLoop
type LoopOption func(*loopOptions)

type loopOptions struct {
	log      *zap.Logger
	reg      *status.Registry
	bus      *event.Bus
	interval time.Duration
}

// WithLogger sets the loop logger
func WithLogger(log *zap.Logger) LoopOption {
	return func(o *loopOptions) { o.log = log }
}

// WithRegistry publishes frame metrics into reg
func WithRegistry(reg *status.Registry) LoopOption {
	return func(o *loopOptions) { o.reg = reg }
}

// WithBus pauses and resumes the loop clock on pause events from bus
// The subscription is released when the loop stops
func WithBus(bus *event.Bus) LoopOption {
	return func(o *loopOptions) { o.bus = bus }
}

// WithFPS sets the target frame rate, clamped to parameter.MinFPS..MaxFPS
func WithFPS(fps int) LoopOption {
	return func(o *loopOptions) {
		fps = min(max(fps, parameter.MinFPS), parameter.MaxFPS)
		o.interval = time.Second / time.Duration(fps)
	}
}

// NewLoop wires sc, backend and clock; nothing runs until Step, Run or Start
func NewLoop(sc *scene.Scene, backend render.Backend, clock *PausableClock, opts ...LoopOption) *Loop {
	o := loopOptions{
		log:      zap.NewNop(),
		interval: parameter.FrameUpdateInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reg == nil {
		o.reg = status.NewRegistry()
	}

	l := &Loop{
		sc:           sc,
		backend:      backend,
		clock:        clock,
		log:          o.log,
		interval:     o.interval,
		tasks:        make([]func(), 0, parameter.TaskQueueSize),
		spare:        make([]func(), 0, parameter.TaskQueueSize),
		statFrames:   o.reg.Ints.Get(MetricFrames),
		statFailures: o.reg.Ints.Get(MetricFailures),
		statRecycled: o.reg.Ints.Get(MetricRecycled),
		statEntities: o.reg.Ints.Get(MetricEntities),
		statFrameMs:  o.reg.Floats.Get(MetricFrameMs),
		statPaused:   o.reg.Bools.Get(MetricPaused),
	}
	o.reg.Strings.Get(MetricScene).Store(sc.ID)
	o.reg.Strings.Get(MetricEffect).Store(sc.Blueprint)
	o.reg.Strings.Get(MetricTier).Store(sc.Tier.String())
	l.statEntities.Store(int64(sc.Count()))
	if o.bus != nil {
		l.pauseSub = o.bus.Subscribe(event.EventPause, l.onPause)
	}
	return l
}

// onPause applies a pause event to the clock
func (l *Loop) onPause(ev event.Event) {
	if ev.Paused {
		l.clock.Pause()
	} else {
		l.clock.Resume()
	}
	l.statPaused.Store(l.clock.IsPaused())
	l.log.Info("clock", zap.Bool("paused", ev.Paused), zap.String("scene", l.sc.ID))
}

// Close stops the loop and releases its bus subscription, safe to call more than once
// Step returns ErrStopped afterwards
func (l *Loop) Close() {
	l.stopped.Store(true)
	l.pauseSub.Cancel()
}

// Interval returns the running frame interval
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Clock returns the loop clock
func (l *Loop) Clock() *PausableClock {
	return l.clock
}

// Frames returns the number of frames started
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// OnFrame sets a hook called on the loop goroutine after every frame, failed frames included
func (l *Loop) OnFrame(fn func(n uint64)) {
	l.mu.Lock()
	l.onFrame = fn
	l.mu.Unlock()
}

// Post queues fn to run on the loop goroutine before the next advance
// Returns false once the loop is stopped; the task is dropped
func (l *Loop) Post(fn func()) bool {
	if fn == nil || l.stopped.Load() {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = append(l.tasks, fn)
	return true
}

// drain runs every task queued before the call, in order
// A panicking task drops the rest of its batch
func (l *Loop) drain() {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks, l.spare = l.spare[:0], nil
	l.mu.Unlock()

	defer func() {
		clear(tasks)
		l.mu.Lock()
		l.spare = tasks[:0]
		l.mu.Unlock()
	}()
	for _, fn := range tasks {
		fn()
	}
}

// Step runs one frame: queued tasks, Advance to the clock, Render
// A frame that panics or fails to render is logged, counted and returned; the next Step proceeds normally
func (l *Loop) Step() (err error) {
	if l.stopped.Load() {
		return ErrStopped
	}
	n := l.frames.Add(1)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrFramePanic, r)
		}
		if err != nil {
			l.statFailures.Add(1)
			l.log.Warn("frame failed",
				zap.Uint64("frame", n),
				zap.String("scene", l.sc.ID),
				zap.Error(err),
			)
		}
		l.statFrames.Store(int64(n))
		l.statFrameMs.Ease(float64(time.Since(start).Microseconds())/1000, frameMsWeight)

		l.mu.Lock()
		hook := l.onFrame
		l.mu.Unlock()
		if hook != nil {
			hook(n)
		}
	}()

	l.drain()
	l.sc.Advance(l.clock.Seconds())
	l.statRecycled.Store(int64(l.sc.Recycled()))
	l.statPaused.Store(l.clock.IsPaused())

	return l.backend.Render(l.sc)
}

// Run steps once per interval until ctx is cancelled
// While the clock is paused frames slow to parameter.PausedFrameInterval
func (l *Loop) Run(ctx context.Context) error {
	if l.stopped.Load() {
		return ErrStopped
	}
	defer l.Close()

	interval := l.interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.log.Info("loop started",
		zap.String("scene", l.sc.ID),
		zap.Duration("interval", interval),
	)

	for {
		select {
		case <-ctx.Done():
			l.log.Info("loop stopped",
				zap.String("scene", l.sc.ID),
				zap.Uint64("frames", l.frames.Load()),
			)
			return nil
		case <-ticker.C:
		}

		// Cancellation wins over a tick that raced it
		if ctx.Err() != nil {
			continue
		}
		_ = l.Step()

		want := l.interval
		if l.clock.IsPaused() {
			want = parameter.PausedFrameInterval
		}
		if want != interval {
			interval = want
			ticker.Reset(interval)
		}
	}
}

// Handle controls a loop started with Start
type Handle struct {
	loop     *Loop
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	tearOnce sync.Once
}

// Start runs the loop on a crash-safe goroutine
func (l *Loop) Start(ctx context.Context) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{loop: l, cancel: cancel, done: make(chan struct{})}
	core.Go(func() {
		defer close(h.done)
		_ = l.Run(ctx)
	})
	return h
}

// Stop cancels the loop and waits for the in-flight frame; no frame runs after Stop returns
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		h.cancel()
		<-h.done
		h.loop.Close()
	})
}

// Teardown stops the loop then tears the scene down
func (h *Handle) Teardown() {
	h.Stop()
	h.tearOnce.Do(h.loop.sc.Teardown)
}

// Done is closed when the loop goroutine exits
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
