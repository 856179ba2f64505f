package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/vmath"
)

// State is the transient per-frame output of an entity, the only state Advance writes
type State struct {
	Position vmath.Vec3F
	Rotation vmath.Vec3F
	Scale    float64
	Opacity  float64
	Color    colorful.Color

	// Vertices holds world-space geometry for line, mesh and surface shapes, sized at creation
	Vertices []vmath.Vec3F
	// Alpha and Colors are optional per-vertex overrides, same length as Vertices when set
	Alpha  []float64
	Colors []colorful.Color
}

// Entity is one animated object; Kind and Edges never change after creation
type Entity struct {
	Index  int
	Kind   Kind
	Params Params
	State  State

	// Edges index into State.Vertices for mesh and line shapes, nil draws vertices as points
	Edges [][2]int
}

// Group is a fixed-size batch of same-kind entities
type Group struct {
	Name     string
	Kind     Kind
	Entities []Entity
	Boundary Boundary

	respawn  RespawnFunc
	segments int
}

// Len returns the entity count
func (g *Group) Len() int {
	return len(g.Entities)
}

// Boundary is the spatial recycle rule of a recyclable group
// Inner and Outer are distances from the origin, zero disables that side
type Boundary struct {
	Inner float64
	Outer float64
	// Spawn bounds |position| of any freshly sampled spawn
	Spawn float64
}

// Exceeded reports whether p has left the band between Inner and Outer
func (b Boundary) Exceeded(p vmath.Vec3F) bool {
	if b.Inner <= 0 && b.Outer <= 0 {
		return false
	}
	m := vmath.V3FMagSq(p)
	if b.Outer > 0 && m > b.Outer*b.Outer {
		return true
	}
	if b.Inner > 0 && m < b.Inner*b.Inner {
		return true
	}
	return false
}
