package effect

import (
	"math"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Vortex group names
const (
	VortexSwirl = "swirl"
	VortexRings = "rings"
)

// Vortex pulls a particle cloud into a portal of stacked rotating rings
func Vortex() scene.Blueprint {
	return scene.Blueprint{
		Name:   "vortex",
		Groups: []scene.GroupSpec{VortexSwirlGroup(), VortexRingGroup()},
		Camera: scene.CameraPath{
			Base:      vmath.Vec3F{Y: 5},
			Amplitude: vmath.Vec3F{X: 12, Z: 12},
			Frequency: vmath.Vec3F{X: 0.1, Z: 0.1},
			Phase:     vmath.Vec3F{X: vmath.TwoPi / 4},
			FOV:       parameter.CameraFOV,
		},
	}
}

// swirlSpawn samples a point on the respawn ring, bounded by VortexSwirlGroup's Boundary.Spawn
func swirlSpawn(g *scene.Gen, i int, now float64) scene.Spawn {
	p := vmath.OrbitXZ(
		g.Rand.Range(0, vmath.TwoPi),
		g.Rand.Range(parameter.VortexSpawnMinRadius, parameter.VortexSpawnMaxRadius),
	)
	p.Y = g.Rand.Spread(parameter.VortexSpawnHeight)
	return scene.Spawn{Position: p, Time: now}
}

func VortexSwirlGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  VortexSwirl,
		Kind:  scene.KindSwirl,
		Count: scene.TierCounts(parameter.VortexParticles),
		Boundary: scene.Boundary{
			Inner: parameter.VortexInnerRadius,
			Outer: parameter.VortexOuterRadius,
			Spawn: math.Hypot(parameter.VortexSpawnMaxRadius, parameter.VortexSpawnHeight/2),
		},
		New: func(g *scene.Gen, i int) scene.Params {
			slot := theme.SlotPrimary
			if g.Rand.Float64() < 0.5 {
				slot = theme.SlotSecondary
			}
			return &scene.SwirlParams{
				Spawn:     swirlSpawn(g, i, 0),
				Pull:      g.Physics.SwirlPull,
				Spin:      0.2,
				SpawnMax:  parameter.VortexSpawnMaxRadius,
				Slot:      slot,
				ToSlot:    theme.SlotTertiary,
				BaseAlpha: 0.8,
			}
		},
		Respawn: swirlSpawn,
	}
}

// VortexRingGroup widens each ring and spins it faster than the one inside it
func VortexRingGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     VortexRings,
		Kind:     scene.KindRing,
		Count:    scene.TierCounts(parameter.VortexRings),
		Segments: scene.TierCounts(parameter.VortexRingSides),
		New: func(g *scene.Gen, i int) scene.Params {
			slot := theme.SlotPrimary
			if i%2 == 1 {
				slot = theme.SlotSecondary
			}
			return &scene.RingParams{
				Radius:     2 + float64(i)*0.4,
				Sides:      g.Segments,
				Tilt:       vmath.Vec3F{X: math.Pi / 2},
				SpinRate:   (0.3 + float64(i)*0.1) * 0.01 * parameter.ReferenceFPS,
				PulseSpeed: 2,
				Phase:      float64(i),
				Opacity:    0.8,
				Slot:       slot,
			}
		},
	}
}
