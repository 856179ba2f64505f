// Package render draws scenes. Backends receive a fully advanced scene once per frame
// and must not mutate it.
package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/backdrop/scene"
)

var (
	// ErrNoScene is returned when asked to render a nil or torn-down scene
	ErrNoScene = errors.New("render: no scene")

	// ErrInjected is the failure a Recorder returns on its configured frames
	ErrInjected = errors.New("render: injected failure")
)

// Backend consumes each advanced frame
type Backend interface {
	Render(sc *scene.Scene) error
}

// TerminalBackend rasterises scenes onto a tcell screen
type TerminalBackend struct {
	screen tcell.Screen
	buf    *Buffer
	ramp   Ramp
	hud    func() string
}

// TerminalOption configures NewTerminalBackend
type TerminalOption func(*TerminalBackend)

// WithRamp replaces the glyph density ramp
func WithRamp(r Ramp) TerminalOption {
	return func(t *TerminalBackend) {
		if len(r) > 0 {
			t.ramp = r
		}
	}
}

// WithHUD draws the returned text on the bottom row every frame
func WithHUD(fn func() string) TerminalOption {
	return func(t *TerminalBackend) { t.hud = fn }
}

// NewTerminalBackend wraps an initialised screen
func NewTerminalBackend(screen tcell.Screen, opts ...TerminalOption) *TerminalBackend {
	w, h := screen.Size()
	t := &TerminalBackend{
		screen: screen,
		buf:    NewBuffer(w, h),
		ramp:   DefaultRamp,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Render composites sc over its palette background and shows the screen
func (t *TerminalBackend) Render(sc *scene.Scene) error {
	if sc == nil || sc.TornDown() {
		return ErrNoScene
	}
	w, h := t.screen.Size()
	if bw, bh := t.buf.Size(); bw != w || bh != h {
		t.buf.Resize(w, h)
	}
	t.buf.Clear(FromColor(sc.Palette().Background))
	Draw(t.buf, sc)
	t.buf.Resolve(t.ramp)
	if t.hud != nil && h > 0 {
		t.buf.SetText(0, h-1, t.hud(), RGBWhite)
	}
	t.buf.Flush(t.screen)
	t.screen.Show()
	return nil
}

// Buffer exposes the last composited frame
func (t *TerminalBackend) Buffer() *Buffer {
	return t.buf
}

// Recorder is a headless backend that rasterises into an off-screen buffer and counts frames
// With FailEvery set to n, every nth frame returns ErrInjected without drawing
type Recorder struct {
	FailEvery uint64

	mu       sync.Mutex
	buf      *Buffer
	frames   uint64
	failures uint64
	samples  int
	elapsed  []float64
	keep     bool
}

// NewRecorder creates a recorder with a width x height off-screen buffer
func NewRecorder(width, height int) *Recorder {
	return &Recorder{buf: NewBuffer(width, height)}
}

// KeepTimes records the scene clock of every successful frame
func (r *Recorder) KeepTimes() *Recorder {
	r.mu.Lock()
	r.keep = true
	r.mu.Unlock()
	return r
}

func (r *Recorder) Render(sc *scene.Scene) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sc == nil || sc.TornDown() {
		return ErrNoScene
	}
	r.frames++
	if r.FailEvery > 0 && r.frames%r.FailEvery == 0 {
		r.failures++
		return fmt.Errorf("frame %d: %w", r.frames, ErrInjected)
	}
	r.buf.Clear(RGBBlack)
	r.samples = Draw(r.buf, sc)
	if r.keep {
		r.elapsed = append(r.elapsed, sc.Elapsed())
	}
	return nil
}

// Frames returns the number of Render calls, failed ones included
func (r *Recorder) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Failures returns the number of injected failures
func (r *Recorder) Failures() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failures
}

// Samples returns the number of samples the last successful frame drew
func (r *Recorder) Samples() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.samples
}

// Times returns a copy of the recorded scene clock values
func (r *Recorder) Times() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.elapsed...)
}
