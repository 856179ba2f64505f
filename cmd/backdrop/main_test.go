package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/event"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/status"
	"github.com/lixenwraith/backdrop/theme"
)

func newTestController(t *testing.T) (*controller, *scene.Scene) {
	t.Helper()
	themes, err := loadThemes(config.Default().Scene)
	if err != nil {
		t.Fatal(err)
	}
	bus := event.NewBus()
	sc := scene.New(effect.Starfield(), themes, scene.TierLow, scene.WithBus(bus))
	reg := status.NewRegistry()
	loop := engine.NewLoop(sc, render.NewRecorder(80, 24), engine.NewPausableClock(),
		engine.WithRegistry(reg), engine.WithBus(bus))
	return &controller{loop: loop, bus: bus, themes: themes, reg: reg, log: zap.NewNop(), width: 80, height: 24}, sc
}

func TestControllerResizeIsPosted(t *testing.T) {
	c, sc := newTestController(t)

	if !c.handle(tcell.NewEventResize(120, 40)) {
		t.Fatal("resize should not quit")
	}
	if sc.Viewport.Width == 120 {
		t.Fatal("resize applied before the loop ran")
	}
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}
	if sc.Viewport.Width != 120 || sc.Viewport.Height != 40 {
		t.Errorf("viewport = %+v, want 120x40", sc.Viewport)
	}
}

func TestControllerThemeCycle(t *testing.T) {
	c, sc := newTestController(t)
	before := sc.Palette().Name

	c.handle(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone))
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}

	after := sc.Palette().Name
	if after == before {
		t.Errorf("palette still %q after cycling", after)
	}
	if got := c.reg.Strings.Get(metricTheme).Load(); got != after {
		t.Errorf("theme metric = %q, want %q", got, after)
	}
}

func TestControllerPauseAndQuit(t *testing.T) {
	c, _ := newTestController(t)
	var seen []bool
	sub := c.bus.Subscribe(event.EventPause, func(ev event.Event) { seen = append(seen, ev.Paused) })
	defer sub.Cancel()

	c.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if c.loop.Clock().IsPaused() {
		t.Error("pause applied before the loop ran")
	}
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}
	if !c.loop.Clock().IsPaused() || !c.reg.Bools.Get(engine.MetricPaused).Load() {
		t.Error("p should pause")
	}
	c.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}
	if c.loop.Clock().IsPaused() {
		t.Error("space should resume")
	}

	// Two toggles posted in one frame cancel out
	c.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	c.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}
	if c.loop.Clock().IsPaused() {
		t.Error("double toggle left the clock paused")
	}
	if len(seen) != 4 || !seen[0] || seen[1] || !seen[2] || seen[3] {
		t.Errorf("pause events = %v, want [true false true false]", seen)
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if c.handle(ev) {
			t.Errorf("key %v should quit", ev.Name())
		}
	}
}

func TestControllerMouseMovesPointer(t *testing.T) {
	c, sc := newTestController(t)
	var got [][2]float64
	sub := c.bus.OnPointer(func(x, y float64) { got = append(got, [2]float64{x, y}) })
	defer sub.Cancel()

	c.handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	c.handle(tcell.NewEventResize(40, 10))
	c.handle(tcell.NewEventMouse(39, 9, tcell.ButtonNone, tcell.ModNone))
	if len(got) != 0 {
		t.Fatal("pointer published before the loop ran")
	}
	if err := c.loop.Step(); err != nil {
		t.Fatal(err)
	}

	want := [][2]float64{
		{-1 + 1.0/80, 1 - 1.0/24},
		{1 - 1.0/40, -1 + 1.0/10},
	}
	if len(got) != len(want) {
		t.Fatalf("pointer events = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i][0]-want[i][0]) > 1e-12 || math.Abs(got[i][1]-want[i][1]) > 1e-12 {
			t.Errorf("pointer %d = %v, want %v", i, got[i], want[i])
		}
	}
	if sc.Viewport.Width != 40 {
		t.Errorf("viewport = %+v, want resize applied with the pointer", sc.Viewport)
	}
}

func TestLoadThemesStartAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	data := []byte("themes:\n  dusk:\n    primary: \"#112233\"\n    secondary: \"#445566\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Scene
	cfg.ThemeFile = path
	cfg.Theme = "dusk"
	cycle, err := loadThemes(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cycle.Len() != len(theme.BuiltinNames())+1 {
		t.Errorf("cycle len = %d", cycle.Len())
	}
	if cycle.Palette().Name != "dusk" {
		t.Errorf("start palette = %q, want dusk", cycle.Palette().Name)
	}

	cfg.Theme = "missing"
	if _, err := loadThemes(cfg); err == nil {
		t.Error("expected error for unknown start palette")
	}
}
