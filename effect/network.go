package effect

import (
	"math"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Network group names
const (
	NetworkNodes     = "nodes"
	NetworkParticles = "particles"
	NetworkRings     = "rings"
)

// Network orbits node markers and a particle halo around a pulsing portal
func Network() scene.Blueprint {
	return scene.Blueprint{
		Name: "network",
		Groups: []scene.GroupSpec{
			NetworkNodeGroup(),
			NetworkParticleGroup(),
			NetworkRingGroup(),
		},
		Camera: scene.CameraPath{
			Base:      vmath.Vec3F{Z: 15},
			Amplitude: vmath.Vec3F{X: 2, Y: 1},
			Frequency: vmath.Vec3F{X: 0.1, Y: 0.08},
			Phase:     vmath.Vec3F{Y: vmath.TwoPi / 4},
			FOV:       parameter.CameraFOV,
		},
	}
}

func NetworkNodeGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  NetworkNodes,
		Kind:  scene.KindOrbiter,
		Count: scene.TierCounts(parameter.NetworkNodes),
		New: func(g *scene.Gen, i int) scene.Params {
			fi := float64(i)
			return &scene.OrbiterParams{
				Radius:       8 + math.Sin(fi*0.5)*2,
				Angle:        vmath.TwoPi * fi / float64(max(g.Count, 1)),
				AngularSpeed: g.Rand.Range(0.005, 0.015) * parameter.ReferenceFPS,
				Z:            math.Sin(fi*0.7) * 2,
				Bob:          g.Rand.Range(0.3, 0.5),
				Phase:        fi,
				Opacity:      0.9,
			}
		},
	}
}

// NetworkParticleGroup breathes radially and lerps primary to secondary with phase 0.1 per index
func NetworkParticleGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  NetworkParticles,
		Kind:  scene.KindOrbiter,
		Count: scene.TierCounts(parameter.NetworkParticles),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.OrbiterParams{
				Radius:       g.Rand.Range(5, 15),
				Angle:        g.Rand.Range(0, vmath.TwoPi),
				AngularSpeed: 0.005 * parameter.ReferenceFPS,
				Breath:       0.5,
				Z:            g.Rand.Spread(10),
				Bob:          0.3,
				Phase:        float64(i) * 0.1,
				Opacity:      0.6,
			}
		},
	}
}

func NetworkRingGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     NetworkRings,
		Kind:     scene.KindRing,
		Count:    scene.TierCounts(parameter.NetworkRings),
		Segments: scene.TierCounts(parameter.NetworkRingSides),
		New: func(g *scene.Gen, i int) scene.Params {
			slot := theme.SlotPrimary
			if i%2 == 1 {
				slot = theme.SlotSecondary
			}
			return &scene.RingParams{
				Radius:     3 + float64(i),
				Sides:      g.Segments,
				SpinRate:   g.Rand.Range(0.005, 0.015) * parameter.ReferenceFPS,
				PulseSpeed: 2,
				Phase:      g.Rand.Range(0, vmath.TwoPi),
				Opacity:    0.7,
				Slot:       slot,
			}
		},
	}
}
