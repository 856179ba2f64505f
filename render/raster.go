package render

import (
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/vmath"
)

// surfaceGain scales surface vertex alpha so dense meshes tint rather than saturate the background
const surfaceGain = 0.35

// Draw rasterises every entity of sc into buf and returns the number of samples written
// Points and rays accumulate as light, mesh outlines keep their brightest sample per cell
// and surfaces tint the background
func Draw(buf *Buffer, sc *scene.Scene) int {
	w, h := buf.Size()
	proj := NewProjector(sc.Camera, w, h)
	n := 0
	for gi := range sc.Groups {
		g := &sc.Groups[gi]
		for i := range g.Entities {
			e := &g.Entities[i]
			switch e.Kind.Shape() {
			case scene.ShapePoint:
				n += drawPoint(buf, proj, e)
			case scene.ShapeLine, scene.ShapeMesh:
				n += drawEdges(buf, proj, e)
			case scene.ShapeSurface:
				n += drawSurface(buf, proj, e)
			}
		}
	}
	return n
}

func drawPoint(buf *Buffer, proj Projector, e *scene.Entity) int {
	st := &e.State
	x, y, ok := proj.Cell(st.Position)
	if !ok {
		return 0
	}
	buf.AddLight(x, y, FromColor(st.Color), vmath.Clamp01(st.Opacity))
	return 1
}

// vertexAlpha reads per-vertex alpha when the entity carries it
func vertexAlpha(st *scene.State, k int) float64 {
	if k < len(st.Alpha) {
		return st.Alpha[k]
	}
	return st.Opacity
}

func drawEdges(buf *Buffer, proj Projector, e *scene.Entity) int {
	st := &e.State
	col := FromColor(st.Color)
	// Adjacent mesh edges share end cells, which must not double in brightness
	plot := buf.AddLight
	if e.Kind.Shape() == scene.ShapeMesh {
		plot = buf.MaxLight
	}
	n := 0
	for _, edge := range e.Edges {
		a, b := edge[0], edge[1]
		ax, ay, okA := proj.Cell(st.Vertices[a])
		bx, by, okB := proj.Cell(st.Vertices[b])
		if !okA || !okB {
			continue
		}
		alpha := vmath.Clamp01((vertexAlpha(st, a) + vertexAlpha(st, b)) / 2)
		n += line(ax, ay, bx, by, func(x, y int) {
			plot(x, y, col, alpha)
		})
	}
	return n
}

func drawSurface(buf *Buffer, proj Projector, e *scene.Entity) int {
	st := &e.State
	mode := BlendAddBg
	if e.Kind == scene.KindFog {
		mode = BlendScreenBg
	}
	n := 0
	for k, v := range st.Vertices {
		x, y, ok := proj.Cell(v)
		if !ok {
			continue
		}
		col := st.Color
		if k < len(st.Colors) {
			col = st.Colors[k]
		}
		buf.Set(x, y, 0, RGB{}, FromColor(col), mode, vmath.Clamp01(vertexAlpha(st, k)*surfaceGain))
		n++
	}
	return n
}

// line walks integer cells from (x0,y0) to (x1,y1) inclusive and returns the cell count
func line(x0, y0, x1, y1 int, plot func(x, y int)) int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	n := 0
	for {
		plot(x0, y0)
		n++
		if x0 == x1 && y0 == y1 {
			return n
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
