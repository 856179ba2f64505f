package render

import (
	"errors"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// beaconScene holds one fully lit white star at the origin, seen from +Z
func beaconScene(t *testing.T, at vmath.Vec3F) *scene.Scene {
	t.Helper()
	bp := scene.Blueprint{
		Name: "beacon",
		Groups: []scene.GroupSpec{{
			Name:  "beacon",
			Kind:  scene.KindStar,
			Count: scene.TierCounts{1, 1, 1, 1},
			New: func(g *scene.Gen, i int) scene.Params {
				return &scene.StarParams{Position: at, Phase: math.Pi / 2, Size: 1, Tint: colorful.Color{R: 1, G: 1, B: 1}}
			},
		}},
		Camera: scene.CameraPath{Base: vmath.Vec3F{Z: 50}},
	}
	pal := theme.MustPalette("bg", "#ff0000", "#00ff00", "#0000ff", "#102030")
	return scene.New(bp, theme.Static(pal), scene.TierLow, scene.WithViewport(40, 12))
}

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestRampGlyph(t *testing.T) {
	tests := []struct {
		name      string
		intensity float64
		want      rune
	}{
		{"Negative", -1, ' '},
		{"Zero", 0, ' '},
		{"Half", 0.5, '+'},
		{"Full", 1, '@'},
		{"Saturated", 3, '@'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultRamp.Glyph(tt.intensity); got != tt.want {
				t.Errorf("Glyph(%v) = %q, want %q", tt.intensity, got, tt.want)
			}
		})
	}
	if got := Ramp(nil).Glyph(1); got != ' ' {
		t.Errorf("empty ramp glyph = %q", got)
	}
}

func TestBlendModes(t *testing.T) {
	dst := RGB{100, 100, 100}
	src := RGB{200, 50, 0}
	tests := []struct {
		name  string
		mode  BlendMode
		alpha float64
		want  RGB
	}{
		{"Replace", BlendReplace, 0.3, src},
		{"Alpha zero", BlendAlpha, 0, dst},
		{"Alpha full", BlendAlpha, 1, src},
		{"Alpha half", BlendAlpha, 0.5, RGB{150, 75, 50}},
		{"Add clamps", BlendAdd, 1, RGB{255, 150, 100}},
		{"Add scaled", BlendAdd, 0.5, RGB{200, 125, 100}},
		{"Screen", BlendScreenBg, 1, RGB{222, 130, 100}},
		{"Screen scaled", BlendScreenBg, 0.5, RGB{161, 115, 100}},
		{"Screen zero", BlendScreenBg, 0, dst},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.apply(dst, src, tt.alpha); got != tt.want {
				t.Errorf("apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBufferLightAccumulates(t *testing.T) {
	b := NewBuffer(4, 3)
	b.AddLight(1, 1, RGB{R: 255}, 0.5)
	b.AddLight(1, 1, RGB{R: 255}, 0.5)
	b.AddLight(9, 9, RGB{R: 255}, 1)

	if got := b.Light(1, 1); got != 1 {
		t.Errorf("Light = %v, want 1", got)
	}
	if got := b.Get(1, 1).Fg; got != (RGB{R: 254}) {
		t.Errorf("Fg = %v, want additive 254", got)
	}
	b.Resolve(DefaultRamp)
	if got := b.Get(1, 1).Rune; got != '@' {
		t.Errorf("Rune = %q, want '@'", got)
	}
	if got := b.Get(0, 0).Rune; got != 0 {
		t.Errorf("unlit cell rune = %q, want none", got)
	}
}

func TestBufferMaxLightKeepsBrightest(t *testing.T) {
	b := NewBuffer(4, 3)
	b.MaxLight(2, 1, RGB{R: 200, G: 100}, 0.5)
	b.MaxLight(2, 1, RGB{R: 200, G: 100}, 0.5)
	b.MaxLight(2, 1, RGB{G: 250}, 0.2)

	if got := b.Light(2, 1); got != 0.5 {
		t.Errorf("Light = %v, want 0.5", got)
	}
	if got := b.Get(2, 1).Fg; got != (RGB{R: 100, G: 50}) {
		t.Errorf("Fg = %v, want {100 50 0}", got)
	}

	// Screen never darkens and approaches white without clipping
	c := RGB{10, 200, 255}
	for range 3 {
		next := Screen(c, RGB{128, 128, 128}, 1)
		if next.R < c.R || next.G < c.G || next.B < c.B {
			t.Fatalf("Screen darkened %v to %v", c, next)
		}
		c = next
	}
	if c.R == 255 {
		t.Errorf("three half-grey screens reached full red: %v", c)
	}
}

func TestBufferClearAndResize(t *testing.T) {
	b := NewBuffer(3, 3)
	b.Set(1, 1, 'x', RGBWhite, RGBWhite, BlendReplace, 1)
	b.Clear(RGB{1, 2, 3})
	if got := b.Get(1, 1); got != (Cell{Bg: RGB{1, 2, 3}}) {
		t.Errorf("cell after Clear = %+v", got)
	}
	b.Resize(5, 2)
	if w, h := b.Size(); w != 5 || h != 2 {
		t.Errorf("Size = %dx%d, want 5x2", w, h)
	}
	b.Resize(-1, 4)
	if w, h := b.Size(); w != 0 || h != 4 {
		t.Errorf("Size = %dx%d, want 0x4", w, h)
	}
}

func TestLineCellCount(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"Point", 2, 2, 2, 2, 1},
		{"Horizontal", 0, 0, 3, 0, 4},
		{"Vertical reversed", 0, 5, 0, 1, 5},
		{"Diagonal", 0, 0, 2, 2, 3},
		{"Steep", 0, 0, 1, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var last [2]int
			got := line(tt.x0, tt.y0, tt.x1, tt.y1, func(x, y int) { last = [2]int{x, y} })
			if got != tt.want {
				t.Errorf("line cells = %d, want %d", got, tt.want)
			}
			if last != [2]int{tt.x1, tt.y1} {
				t.Errorf("line ended at %v", last)
			}
		})
	}
}

func TestProjectorCentreAndClip(t *testing.T) {
	sc := beaconScene(t, vmath.Vec3F{})
	p := NewProjector(sc.Camera, 40, 12)

	x, y, depth, ok := p.Project(vmath.Vec3F{})
	if !ok || x != 20 || y != 6 || depth != 50 {
		t.Errorf("origin -> (%v,%v,%v,%v), want (20,6,50,true)", x, y, depth, ok)
	}
	if _, _, _, ok := p.Project(vmath.Vec3F{Z: 60}); ok {
		t.Error("point behind camera not clipped")
	}
	if _, _, _, ok := p.Project(vmath.Vec3F{X: 1000}); ok {
		t.Error("point outside frustum not clipped")
	}
	// Up in the world is up on screen
	_, yUp, _, _ := p.Project(vmath.Vec3F{Y: 5})
	if yUp >= y {
		t.Errorf("world +Y projected to row %v, not above centre %v", yUp, y)
	}
}

func TestTerminalBackendRender(t *testing.T) {
	screen := simScreen(t, 40, 12)
	sc := beaconScene(t, vmath.Vec3F{})
	tb := NewTerminalBackend(screen, WithHUD(func() string { return "hud" }))

	if err := tb.Render(sc); err != nil {
		t.Fatalf("Render: %v", err)
	}

	r, _, style, _ := screen.GetContent(20, 6)
	if r != '@' {
		t.Errorf("beacon cell rune = %q, want '@'", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("beacon fg = %v, want white", fg)
	}
	if bg != tcell.NewRGBColor(0x10, 0x20, 0x30) {
		t.Errorf("beacon bg = %v, want palette background", bg)
	}

	hud := ""
	for x := 0; x < 3; x++ {
		r, _, _, _ := screen.GetContent(x, 11)
		hud += string(r)
	}
	if hud != "hud" {
		t.Errorf("hud row = %q", hud)
	}

	// Resize is picked up from the screen on the next frame
	screen.SetSize(60, 20)
	sc.Resize(60, 20)
	if err := tb.Render(sc); err != nil {
		t.Fatalf("Render after resize: %v", err)
	}
	if w, h := tb.Buffer().Size(); w != 60 || h != 20 {
		t.Errorf("buffer %dx%d after resize, want 60x20", w, h)
	}

	sc.Teardown()
	if err := tb.Render(sc); !errors.Is(err, ErrNoScene) {
		t.Errorf("Render after teardown = %v, want ErrNoScene", err)
	}
}

func TestRecorderFailureInjection(t *testing.T) {
	sc := beaconScene(t, vmath.Vec3F{})
	rec := NewRecorder(40, 12).KeepTimes()
	rec.FailEvery = 3

	var failed []int
	for f := 1; f <= 9; f++ {
		sc.Advance(float64(f) / 60)
		if err := rec.Render(sc); err != nil {
			if !errors.Is(err, ErrInjected) {
				t.Fatalf("frame %d: unexpected error %v", f, err)
			}
			failed = append(failed, f)
		}
	}
	if len(failed) != 3 || failed[0] != 3 || failed[2] != 9 {
		t.Errorf("failed frames = %v, want [3 6 9]", failed)
	}
	if rec.Frames() != 9 || rec.Failures() != 3 {
		t.Errorf("frames=%d failures=%d", rec.Frames(), rec.Failures())
	}
	if rec.Samples() != 1 {
		t.Errorf("Samples = %d, want 1", rec.Samples())
	}
	if got := len(rec.Times()); got != 6 {
		t.Errorf("recorded %d times, want 6", got)
	}
}

func TestDrawShapes(t *testing.T) {
	bp := scene.Blueprint{
		Name: "shapes",
		Groups: []scene.GroupSpec{{
			Name:     "ring",
			Kind:     scene.KindRing,
			Count:    scene.TierCounts{1, 1, 1, 1},
			Segments: scene.TierCounts{12, 12, 12, 12},
			New: func(g *scene.Gen, i int) scene.Params {
				return &scene.RingParams{Radius: 10, Sides: g.Segments, Opacity: 1, Slot: theme.SlotPrimary}
			},
		}, {
			Name:     "fog",
			Kind:     scene.KindFog,
			Count:    scene.TierCounts{1, 1, 1, 1},
			Segments: scene.TierCounts{4, 4, 4, 4},
			New: func(g *scene.Gen, i int) scene.Params {
				return &scene.FogParams{Width: 20, Depth: 20, Segments: g.Segments, Y: -5}
			},
		}},
		Camera: scene.CameraPath{Base: vmath.Vec3F{Z: 50}},
	}
	sc := scene.New(bp, theme.Static(theme.MustPalette("p", "#ff0000", "#00ff00")), scene.TierLow, scene.WithViewport(80, 24))
	buf := NewBuffer(80, 24)
	n := Draw(buf, sc)
	if n <= 12 {
		t.Errorf("Draw wrote %d samples, want ring outline plus fog", n)
	}
	lit := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if buf.Light(x, y) > 0 {
				lit++
			}
		}
	}
	if lit < 12 {
		t.Errorf("only %d lit cells for a 12-sided ring", lit)
	}

	// Ring vertices are shared by two edges and must not exceed the ring's own opacity
	ring := sc.Group("ring").Entities[0].State.Opacity
	fogged := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if l := buf.Light(x, y); l > ring+1e-12 {
				t.Fatalf("cell %d,%d light %v above ring opacity %v", x, y, l, ring)
			}
			if buf.Get(x, y).Bg != (RGB{}) {
				fogged++
			}
		}
	}
	if fogged == 0 {
		t.Error("fog left no background tint")
	}
}
