package render

import (
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/vmath"
)

// Projector maps world points to fractional cell coordinates for one frame
// The scene camera aspect already carries the cell aspect correction
type Projector struct {
	cam    scene.Camera
	width  float64
	height float64
}

// NewProjector snapshots cam for a width x height cell surface
func NewProjector(cam scene.Camera, width, height int) Projector {
	return Projector{cam: cam, width: float64(width), height: float64(height)}
}

// Project returns the cell position and view depth of p; ok is false when p is clipped
func (p Projector) Project(w vmath.Vec3F) (x, y, depth float64, ok bool) {
	ndcX, ndcY, depth, ok := p.cam.NDC(w)
	if !ok {
		return 0, 0, depth, false
	}
	x = (ndcX + 1) * 0.5 * p.width
	y = (1 - ndcY) * 0.5 * p.height
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return x, y, depth, false
	}
	return x, y, depth, true
}

// Cell is Project truncated to integer cell coordinates
func (p Projector) Cell(w vmath.Vec3F) (cx, cy int, ok bool) {
	x, y, _, ok := p.Project(w)
	return int(x), int(y), ok
}
