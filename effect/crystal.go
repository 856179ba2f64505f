package effect

import (
	"math"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Crystal group names
const (
	CrystalCrystals  = "crystals"
	CrystalFragments = "fragments"
	CrystalEnergy    = "energy"
)

// Crystal grows a ring of crystals with floating shards and rising energy particles
func Crystal() scene.Blueprint {
	return scene.Blueprint{
		Name: "crystal",
		Groups: []scene.GroupSpec{
			CrystalGroup(),
			CrystalFragmentGroup(),
			CrystalEnergyGroup(),
		},
		Camera: scene.CameraPath{
			Base:      vmath.Vec3F{Y: 20},
			Amplitude: vmath.Vec3F{X: 50, Y: 10, Z: 50},
			Frequency: vmath.Vec3F{X: 0.1, Y: 0.2, Z: 0.1},
			Phase:     vmath.Vec3F{X: vmath.TwoPi / 4},
			Target:    vmath.Vec3F{Y: 5},
			FOV:       parameter.CameraFOV,
		},
	}
}

// CrystalGroup places crystals evenly by angle at random cluster distance; each grows to full size then holds
func CrystalGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     CrystalCrystals,
		Kind:     scene.KindCrystal,
		Count:    scene.TierCounts(parameter.CrystalCrystals),
		Segments: scene.TierCounts(parameter.CrystalSides),
		New: func(g *scene.Gen, i int) scene.Params {
			angle := vmath.TwoPi * float64(i) / float64(max(g.Count, 1))
			x, z := vmath.Orbit(angle, g.Rand.Range(0, parameter.CrystalClusterRadius))
			return &scene.CrystalParams{
				Base:       vmath.Vec3F{X: x, Z: z},
				Tilt:       vmath.Vec3F{X: g.Rand.Spread(0.3), Z: g.Rand.Spread(0.3)},
				Radius:     g.Rand.Range(1, 3),
				Height:     g.Rand.Range(3, 8),
				Sides:      g.Segments,
				StartScale: 0.1,
				GrowthRate: g.Rand.Range(0.001, 0.003) * parameter.ReferenceFPS,
				SpinRate:   0.001 * parameter.ReferenceFPS,
				PulseSpeed: g.Rand.Range(1, 3),
				Glow:       g.Rand.Float64(),
				Slot:       theme.SlotPrimary,
			}
		},
	}
}

func CrystalFragmentGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  CrystalFragments,
		Kind:  scene.KindCrystal,
		Count: scene.TierCounts(parameter.CrystalFragments),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.CrystalParams{
				Base: vmath.Vec3F{
					X: g.Rand.Spread(40),
					Y: g.Rand.Range(0, 10),
					Z: g.Rand.Spread(40),
				},
				Radius:     0.5,
				Height:     0.8,
				Sides:      3,
				StartScale: 1,
				SpinRate:   g.Rand.Spread(0.05) * parameter.ReferenceFPS,
				PulseSpeed: 1,
				Glow:       0.5,
				BobAmp:     2,
				BobSpeed:   g.Rand.Range(0.5, 1.5),
				Slot:       theme.SlotSecondary,
			}
		},
	}
}

// energySpawn samples inside the cluster disk up to CrystalSpawnHeight, which stays within CrystalSpawnRadius
func energySpawn(g *scene.Gen, i int, now float64) scene.Spawn {
	x, z := vmath.Orbit(
		g.Rand.Range(0, vmath.TwoPi),
		parameter.CrystalClusterRadius*math.Sqrt(g.Rand.Float64()),
	)
	return scene.Spawn{
		Position: vmath.Vec3F{X: x, Y: g.Rand.Range(0, parameter.CrystalSpawnHeight), Z: z},
		Velocity: vmath.V3FScale(vmath.Vec3F{
			X: g.Rand.Spread(0.1),
			Y: g.Rand.Range(0, 0.1),
			Z: g.Rand.Spread(0.1),
		}, parameter.ReferenceFPS),
		Time:  now,
		Phase: g.Rand.Range(0, vmath.TwoPi),
	}
}

func CrystalEnergyGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  CrystalEnergy,
		Kind:  scene.KindDrifter,
		Count: scene.TierCounts(parameter.CrystalEnergy),
		Boundary: scene.Boundary{
			Outer: parameter.CrystalBoundaryRadius,
			Spawn: parameter.CrystalSpawnRadius,
		},
		New: func(g *scene.Gen, i int) scene.Params {
			slot := theme.SlotPrimary
			if g.Rand.Float64() < 0.5 {
				slot = theme.SlotSecondary
			}
			return &scene.DrifterParams{
				Spawn:      energySpawn(g, i, 0),
				Damping:    g.Physics.DrifterDamping,
				Buoyancy:   0.6,
				WobbleAmp:  0.3,
				WobbleFreq: 1,
				FadeIn:     0.5,
				Opacity:    0.8,
				Slot:       slot,
			}
		},
		Respawn: energySpawn,
	}
}
