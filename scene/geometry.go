package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/vmath"
)

const (
	minSegments = 1
	minSides    = 3
)

// allocate sizes the vertex buffers and fixed topology of e once, at creation
func allocate(e *Entity) {
	st := &e.State
	switch p := e.Params.(type) {
	case *CurtainParams:
		p.Segments = max(p.Segments, minSegments)
		n := (p.Segments + 1) * (p.Segments + 1)
		st.Vertices = make([]vmath.Vec3F, n)
		st.Alpha = make([]float64, n)
		st.Colors = make([]colorful.Color, n)

	case *FogParams:
		p.Segments = max(p.Segments, minSegments)
		n := (p.Segments + 1) * (p.Segments + 1)
		st.Vertices = make([]vmath.Vec3F, n)

	case *RayParams:
		p.Segments = max(p.Segments, minSegments)
		st.Vertices = make([]vmath.Vec3F, p.Segments+1)
		st.Alpha = make([]float64, p.Segments+1)
		e.Edges = chain(p.Segments + 1)

	case *CrystalParams:
		p.Sides = max(p.Sides, minSides)
		st.Vertices = make([]vmath.Vec3F, p.Sides+1)
		edges := loop(p.Sides)
		for k := 0; k < p.Sides; k++ {
			edges = append(edges, [2]int{k, p.Sides})
		}
		e.Edges = edges

	case *RingParams:
		p.Sides = max(p.Sides, minSides)
		st.Vertices = make([]vmath.Vec3F, p.Sides)
		e.Edges = loop(p.Sides)
	}
}

// chain connects n vertices in order
func chain(n int) [][2]int {
	edges := make([][2]int, 0, n-1)
	for k := 0; k+1 < n; k++ {
		edges = append(edges, [2]int{k, k + 1})
	}
	return edges
}

// loop is a chain closed back to vertex 0
func loop(n int) [][2]int {
	edges := chain(n)
	return append(edges, [2]int{n - 1, 0})
}
