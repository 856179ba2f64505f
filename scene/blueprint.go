package scene

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// ErrBlueprint wraps blueprint validation failures
var ErrBlueprint = errors.New("scene: invalid blueprint")

// Gen is handed to generators while a scene is built and when recyclable entities respawn
// Rand is the scene's own deterministic source
type Gen struct {
	Rand     *vmath.FastRand
	Tier     Tier
	Palette  theme.Palette
	Count    int // entities in the group being generated or recycled
	Segments int // tier subdivision for the group, zero when unused
	Physics  Physics
}

// NewFunc produces the origin parameters of entity i
type NewFunc func(g *Gen, i int) Params

// RespawnFunc samples a fresh spawn for entity i at scene time now
type RespawnFunc func(g *Gen, i int, now float64) Spawn

// GroupSpec describes one entity group of a blueprint
type GroupSpec struct {
	Name     string
	Kind     Kind
	Count    TierCounts
	Segments TierCounts
	Boundary Boundary
	New      NewFunc
	Respawn  RespawnFunc
}

// Blueprint is everything New needs to build a scene
type Blueprint struct {
	Name   string
	Groups []GroupSpec
	Camera CameraPath
}

// Validate checks the blueprint is usable: named unique groups, monotonic tier tables,
// a generator per group and a respawn function with a boundary for recyclable kinds
func (bp Blueprint) Validate() error {
	if bp.Name == "" {
		return fmt.Errorf("%w: unnamed", ErrBlueprint)
	}
	if len(bp.Groups) == 0 {
		return fmt.Errorf("%w: %s has no groups", ErrBlueprint, bp.Name)
	}

	seen := make(map[string]bool, len(bp.Groups))
	for _, gs := range bp.Groups {
		switch {
		case gs.Name == "":
			return fmt.Errorf("%w: %s has an unnamed group", ErrBlueprint, bp.Name)
		case seen[gs.Name]:
			return fmt.Errorf("%w: %s repeats group %q", ErrBlueprint, bp.Name, gs.Name)
		case gs.New == nil:
			return fmt.Errorf("%w: %s/%s has no generator", ErrBlueprint, bp.Name, gs.Name)
		case !gs.Count.Monotonic():
			return fmt.Errorf("%w: %s/%s counts decrease with tier", ErrBlueprint, bp.Name, gs.Name)
		case !gs.Segments.Monotonic():
			return fmt.Errorf("%w: %s/%s segments decrease with tier", ErrBlueprint, bp.Name, gs.Name)
		}
		if gs.Kind.Recyclable() {
			if gs.Respawn == nil {
				return fmt.Errorf("%w: %s/%s is recyclable without respawn", ErrBlueprint, bp.Name, gs.Name)
			}
			if gs.Boundary.Inner <= 0 && gs.Boundary.Outer <= 0 {
				return fmt.Errorf("%w: %s/%s is recyclable without boundary", ErrBlueprint, bp.Name, gs.Name)
			}
		}
		seen[gs.Name] = true
	}
	return nil
}

// Physics carries the tunable damping constants generators read
type Physics struct {
	// DrifterDamping is the continuous velocity damping rate of drifting particles (1/s)
	DrifterDamping float64
	// SwirlPull is the continuous radial decay rate of swirl particles (1/s)
	SwirlPull float64
	// SpinRate is the starfield angular rate (rad/s)
	SpinRate float64
}
