// Package scene implements the real-time parametric scene animator.
//
// A Scene is a fixed set of entity groups built from a Blueprint. Every frame
// Advance recomputes each entity's transient State as a closed-form function of
// the elapsed time and the entity's origin Params; nothing else mutates after New.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/backdrop/event"
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// ErrTornDown is the panic value raised when a torn-down scene is used
var ErrTornDown = errors.New("scene: use after teardown")

// Viewport is the host surface size in cells
type Viewport struct {
	Width  int
	Height int
}

// Scene owns the entity groups, the clock and the camera of one animator activation
type Scene struct {
	ID        string
	Blueprint string
	Tier      Tier
	Groups    []Group
	Camera    Camera
	Viewport  Viewport

	path       CameraPath
	cellAspect float64
	theme      theme.Source
	palette    theme.Palette
	gen        *Gen
	clock      float64
	frames     uint64
	recycled   uint64
	pointer    pointer
	subs       []*event.Subscription
	log        *zap.Logger
	tornDown   bool
}

type options struct {
	seed       uint64
	width      int
	height     int
	cellAspect float64
	bus        *event.Bus
	log        *zap.Logger
	physics    Physics
}

// Option configures New
type Option func(*options)

// WithSeed sets the generator seed, equal seeds build equal scenes
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithViewport sets the initial viewport size in cells
func WithViewport(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithCellAspect sets the height/width ratio of one viewport cell
func WithCellAspect(aspect float64) Option {
	return func(o *options) { o.cellAspect = aspect }
}

// WithBus subscribes the scene to resize, theme and pointer events
// Teardown cancels exactly those subscriptions
func WithBus(bus *event.Bus) Option {
	return func(o *options) { o.bus = bus }
}

// WithLogger sets the scene logger
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithPhysics overrides the damping constants handed to generators
func WithPhysics(p Physics) Option {
	return func(o *options) { o.physics = p }
}

// DefaultPhysics converts the tuned per-frame constants to continuous rates
func DefaultPhysics() Physics {
	return Physics{
		DrifterDamping: vmath.DampingRate(parameter.DrifterDampingPerFrame, parameter.ReferenceFPS),
		SwirlPull:      vmath.DampingRate(parameter.SwirlPullPerFrame, parameter.ReferenceFPS),
		SpinRate:       parameter.SpinnerRatePerFrame * parameter.ReferenceFPS,
	}
}

// New builds a fully populated scene from bp at tier, reading colours from src
// An out-of-range tier is coerced to TierLow. Panics if bp fails Validate, which is a programming error
func New(bp Blueprint, src theme.Source, tier Tier, opts ...Option) *Scene {
	o := options{
		seed:       parameter.DefaultSeed,
		width:      parameter.DefaultViewportWidth,
		height:     parameter.DefaultViewportHeight,
		cellAspect: parameter.CellAspect,
		log:        zap.NewNop(),
		physics:    DefaultPhysics(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := bp.Validate(); err != nil {
		panic(err)
	}

	if !tier.Valid() {
		o.log.Debug("unknown tier, using low", zap.Uint8("tier", uint8(tier)))
		tier = TierLow
	}

	pal := src.Palette()
	s := &Scene{
		ID:         uuid.NewString(),
		Blueprint:  bp.Name,
		Tier:       tier,
		Groups:     make([]Group, len(bp.Groups)),
		path:       bp.Camera,
		cellAspect: o.cellAspect,
		theme:      src,
		palette:    pal,
		log:        o.log,
		gen: &Gen{
			Rand:    vmath.NewFastRand(o.seed),
			Tier:    tier,
			Palette: pal,
			Physics: o.physics,
		},
	}
	s.Camera = newCamera(bp.Camera)

	for gi, gs := range bp.Groups {
		count := gs.Count.For(tier)
		g := Group{
			Name:     gs.Name,
			Kind:     gs.Kind,
			Entities: make([]Entity, count),
			Boundary: gs.Boundary,
			respawn:  gs.Respawn,
			segments: gs.Segments.For(tier),
		}
		s.gen.Count, s.gen.Segments = count, g.segments
		for i := 0; i < count; i++ {
			p := gs.New(s.gen, i)
			if p.Kind() != gs.Kind {
				panic(fmt.Errorf("%w: %s/%s generated %s, want %s", ErrBlueprint, bp.Name, gs.Name, p.Kind(), gs.Kind))
			}
			e := &g.Entities[i]
			e.Index = i
			e.Kind = gs.Kind
			e.Params = p
			allocate(e)
		}
		s.Groups[gi] = g
	}

	s.Resize(o.width, o.height)
	if o.bus != nil {
		s.subs = append(s.subs,
			o.bus.OnResize(s.Resize),
			o.bus.OnTheme(s.refreshPalette),
			o.bus.OnPointer(s.Point),
		)
	}

	// Populate transient state so a scene is renderable before its first frame
	s.Advance(0)
	s.frames = 0

	s.log.Debug("scene initialized",
		zap.String("scene", s.ID),
		zap.String("blueprint", bp.Name),
		zap.Stringer("tier", tier),
		zap.Int("entities", s.Count()),
	)
	return s
}

// Resize stores the viewport and recomputes the camera aspect
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Viewport = Viewport{Width: width, Height: height}
	s.Camera.updateProjection(float64(width) / (float64(height) * s.cellAspect))
}

// refreshPalette applies a palette switch without waiting for the next Advance
func (s *Scene) refreshPalette() {
	if s.tornDown {
		return
	}
	s.palette = s.theme.Palette()
	s.gen.Palette = s.palette
}

// pointer is the last reported pointer position in normalized device coordinates
type pointer struct {
	x, y   float64
	active bool
}

// Point records the pointer position, x and y in [-1,1] with y up
// The next Advance highlights hoverable entities under it
func (s *Scene) Point(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	s.pointer = pointer{x: x, y: y, active: true}
}

// ClearPointer stops hover highlighting until the next Point
func (s *Scene) ClearPointer() {
	s.pointer = pointer{}
}

// Teardown releases all entities and cancels the subscriptions New made
// Any later Advance panics with ErrTornDown
func (s *Scene) Teardown() {
	if s.tornDown {
		return
	}
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.Groups = nil
	s.gen = nil
	s.tornDown = true
	s.log.Debug("scene torn down",
		zap.String("scene", s.ID),
		zap.Uint64("frames", s.frames),
		zap.Uint64("recycled", s.recycled),
	)
}

// TornDown reports whether Teardown has run
func (s *Scene) TornDown() bool {
	return s.tornDown
}

// Group returns the named group or nil
func (s *Scene) Group(name string) *Group {
	for i := range s.Groups {
		if s.Groups[i].Name == name {
			return &s.Groups[i]
		}
	}
	return nil
}

// Count returns the total entity count
func (s *Scene) Count() int {
	n := 0
	for i := range s.Groups {
		n += len(s.Groups[i].Entities)
	}
	return n
}

// Counts returns entity counts keyed by group name
func (s *Scene) Counts() map[string]int {
	m := make(map[string]int, len(s.Groups))
	for i := range s.Groups {
		m[s.Groups[i].Name] = len(s.Groups[i].Entities)
	}
	return m
}

// Elapsed returns the scene clock in seconds
func (s *Scene) Elapsed() float64 {
	return s.clock
}

// Frames returns the number of Advance calls since New
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Recycled returns the running count of entity respawns
func (s *Scene) Recycled() uint64 {
	return s.recycled
}

// Palette returns the palette read by the last Advance
func (s *Scene) Palette() theme.Palette {
	return s.palette
}
