package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

var testPalette = theme.MustPalette("test", "#ff0000", "#0000ff", "#00ff00")

func starGroup(counts TierCounts) GroupSpec {
	return GroupSpec{
		Name:  "stars",
		Kind:  KindStar,
		Count: counts,
		New: func(g *Gen, i int) Params {
			return &StarParams{
				Position: vmath.Vec3F{X: g.Rand.Spread(100), Y: g.Rand.Spread(100), Z: -50},
				Phase:    float64(i),
				Rate:     2,
				Size:     1,
				Tint:     colorful.Color{R: 1, G: 1, B: 1},
			}
		},
	}
}

func ringGroup(counts TierCounts) GroupSpec {
	return GroupSpec{
		Name:     "rings",
		Kind:     KindRing,
		Count:    counts,
		Segments: TierCounts{8, 12, 16, 24},
		New: func(g *Gen, i int) Params {
			return &RingParams{
				Radius:     5 + float64(i),
				Sides:      g.Segments,
				SpinRate:   0.5,
				PulseSpeed: 1,
				Opacity:    0.8,
				Slot:       theme.SlotSecondary,
			}
		},
	}
}

// drifterGroup rises fast so entities cross the outer boundary within a few seconds
func drifterGroup(counts TierCounts) GroupSpec {
	respawn := func(g *Gen, i int, now float64) Spawn {
		return Spawn{
			Position: g.Rand.InSphere(4),
			Velocity: vmath.Vec3F{X: g.Rand.Spread(2), Y: g.Rand.Range(0, 2), Z: g.Rand.Spread(2)},
			Time:     now,
			Phase:    g.Rand.Range(0, vmath.TwoPi),
		}
	}
	return GroupSpec{
		Name:     "drifters",
		Kind:     KindDrifter,
		Count:    counts,
		Boundary: Boundary{Outer: 10, Spawn: 4},
		New: func(g *Gen, i int) Params {
			return &DrifterParams{
				Spawn:      respawn(g, i, 0),
				Damping:    g.Physics.DrifterDamping,
				Buoyancy:   3,
				WobbleAmp:  0.5,
				WobbleFreq: 2,
				FadeIn:     0.5,
				Opacity:    0.8,
				Slot:       theme.SlotSecondary,
			}
		},
		Respawn: respawn,
	}
}

func swirlGroup(counts TierCounts) GroupSpec {
	respawn := func(g *Gen, i int, now float64) Spawn {
		return Spawn{
			Position: vmath.OrbitXZ(g.Rand.Range(0, vmath.TwoPi), g.Rand.Range(8, 13)),
			Time:     now,
		}
	}
	return GroupSpec{
		Name:     "swirl",
		Kind:     KindSwirl,
		Count:    counts,
		Boundary: Boundary{Inner: 0.5, Spawn: 13},
		New: func(g *Gen, i int) Params {
			return &SwirlParams{
				Spawn:     respawn(g, i, 0),
				Pull:      1.5,
				Spin:      1,
				SpawnMax:  13,
				Slot:      theme.SlotSecondary,
				ToSlot:    theme.SlotPrimary,
				BaseAlpha: 1,
			}
		},
		Respawn: respawn,
	}
}

func testBlueprint(groups ...GroupSpec) Blueprint {
	return Blueprint{
		Name:   "test",
		Groups: groups,
		Camera: CameraPath{
			Base:      vmath.Vec3F{Z: 50},
			Amplitude: vmath.Vec3F{X: 10, Y: 5},
			Frequency: vmath.Vec3F{X: 0.1, Y: 0.1},
			Phase:     vmath.Vec3F{Y: vmath.TwoPi / 4},
		},
	}
}

func newTestScene(tier Tier, groups ...GroupSpec) *Scene {
	return New(testBlueprint(groups...), theme.Static(testPalette), tier, WithSeed(42))
}
