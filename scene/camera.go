package scene

import (
	"math"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/vmath"
)

// CameraPath is a closed-form camera drift: each axis is Base + Amplitude*sin(Frequency*t + Phase)
type CameraPath struct {
	Base      vmath.Vec3F
	Amplitude vmath.Vec3F
	Frequency vmath.Vec3F
	Phase     vmath.Vec3F
	Target    vmath.Vec3F
	FOV       float64 // degrees, zero uses parameter.CameraFOV
}

// At returns the camera position at time t
func (p CameraPath) At(t float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: p.Base.X + vmath.Wave(t, p.Frequency.X, p.Phase.X, p.Amplitude.X),
		Y: p.Base.Y + vmath.Wave(t, p.Frequency.Y, p.Phase.Y, p.Amplitude.Y),
		Z: p.Base.Z + vmath.Wave(t, p.Frequency.Z, p.Phase.Z, p.Amplitude.Z),
	}
}

// Camera is the per-frame pose and projection parameters of a scene
type Camera struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
	Up       vmath.Vec3F

	FOV    float64 // vertical, degrees
	Near   float64
	Far    float64
	Aspect float64 // physical width/height of the viewport

	// Focal is 1/tan(FOV/2), recomputed with the aspect on resize
	Focal float64

	// Orthonormal view basis, recomputed each frame
	Right   vmath.Vec3F
	ViewUp  vmath.Vec3F
	Forward vmath.Vec3F
}

func newCamera(path CameraPath) Camera {
	fov := path.FOV
	if fov <= 0 {
		fov = parameter.CameraFOV
	}
	c := Camera{
		Up:   vmath.Vec3F{Y: 1},
		FOV:  fov,
		Near: parameter.CameraNear,
		Far:  parameter.CameraFar,
	}
	c.updateProjection(1)
	c.moveTo(path.At(0), path.Target)
	return c
}

// updateProjection recomputes aspect-dependent values
func (c *Camera) updateProjection(aspect float64) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		aspect = 1
	}
	c.Aspect = aspect
	c.Focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// moveTo sets the pose and rebuilds the look-at basis
func (c *Camera) moveTo(pos, target vmath.Vec3F) {
	c.Position = pos
	c.Target = target

	fwd := vmath.V3FNormalize(vmath.V3FSub(target, pos))
	if fwd == (vmath.Vec3F{}) {
		fwd = vmath.Vec3F{Z: -1}
	}
	right := vmath.V3FNormalize(vmath.V3FCross(fwd, c.Up))
	if right == (vmath.Vec3F{}) {
		// Looking straight along Up
		right = vmath.Vec3F{X: 1}
	}
	c.Forward = fwd
	c.Right = right
	c.ViewUp = vmath.V3FCross(right, fwd)
}

// NDC projects p to normalized device coordinates, x right and y up in [-1,1] when visible
// ok is false when p lies outside the near and far planes
func (c *Camera) NDC(p vmath.Vec3F) (x, y, depth float64, ok bool) {
	v := c.ToView(p)
	if v.Z <= c.Near || v.Z >= c.Far {
		return 0, 0, v.Z, false
	}
	return v.X * c.Focal / (v.Z * c.Aspect), v.Y * c.Focal / v.Z, v.Z, true
}

// ToView transforms a world point into camera space: x right, y up, z depth along Forward
func (c *Camera) ToView(p vmath.Vec3F) vmath.Vec3F {
	rel := vmath.V3FSub(p, c.Position)
	return vmath.Vec3F{
		X: vmath.V3FDot(rel, c.Right),
		Y: vmath.V3FDot(rel, c.ViewUp),
		Z: vmath.V3FDot(rel, c.Forward),
	}
}
