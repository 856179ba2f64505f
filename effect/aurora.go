package effect

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Aurora group names
const (
	AuroraCurtains = "curtains"
	AuroraStars    = "stars"
	AuroraRays     = "rays"
	AuroraFog      = "fog"
)

// Aurora is layered light curtains over a twinkling star backdrop with pulsing light rays and a ground fog
func Aurora() scene.Blueprint {
	return scene.Blueprint{
		Name: "aurora",
		Groups: []scene.GroupSpec{
			AuroraCurtainGroup(),
			AuroraStarGroup(),
			AuroraRayGroup(),
			AuroraFogGroup(),
		},
		Camera: scene.CameraPath{
			Base:      vmath.Vec3F{Y: 5, Z: 50},
			Amplitude: vmath.Vec3F{X: 10, Y: 5},
			Frequency: vmath.Vec3F{X: 0.1, Y: 0.1},
			Phase:     vmath.Vec3F{Y: vmath.TwoPi / 4},
			Target:    vmath.Vec3F{Y: 10, Z: -30},
			FOV:       parameter.CameraFOV,
		},
	}
}

// AuroraCurtainGroup stacks curtains back to front, each more opaque than the one before
func AuroraCurtainGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     AuroraCurtains,
		Kind:     scene.KindCurtain,
		Count:    scene.TierCounts(parameter.AuroraCurtains),
		Segments: scene.TierCounts(parameter.AuroraCurtainSegments),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.CurtainParams{
				Index:     i,
				Width:     80,
				Height:    40,
				Segments:  g.Segments,
				BaseY:     10,
				Z:         -10 - float64(i)*5,
				Tilt:      -0.3,
				SwaySpeed: g.Rand.Range(0.5, 1),
				Opacity:   vmath.Clamp01(0.3 + float64(i)*0.1),
			}
		},
	}
}

// AuroraStarGroup twinkles with opacity 0.5 + sin(2t + i) * 0.5
func AuroraStarGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  AuroraStars,
		Kind:  scene.KindStar,
		Count: scene.TierCounts(parameter.AuroraStars),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.StarParams{
				Position: vmath.Vec3F{
					X: g.Rand.Spread(200),
					Y: g.Rand.Range(-20, 80),
					Z: g.Rand.Range(-100, -50),
				},
				Phase: float64(i),
				Rate:  2,
				Size:  g.Rand.Range(0, 2),
				Tint:  colorful.Hsl(216, 0.2, g.Rand.Range(0.8, 1)),
			}
		},
	}
}

func AuroraRayGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     AuroraRays,
		Kind:     scene.KindRay,
		Count:    scene.TierCounts(parameter.AuroraRays),
		Segments: scene.TierCounts(parameter.AuroraRaySegments),
		New: func(g *scene.Gen, i int) scene.Params {
			slot := theme.SlotPrimary
			if i%2 == 1 {
				slot = theme.SlotSecondary
			}
			return &scene.RayParams{
				Index:       i,
				Base:        vmath.Vec3F{X: g.Rand.Spread(100), Y: 30, Z: g.Rand.Range(-50, -20)},
				Roll:        g.Rand.Spread(0.5),
				Length:      60,
				Segments:    g.Segments,
				PulseSpeed:  g.Rand.Range(1, 3),
				SwayRate:    g.Rand.Range(0.001, 0.003) * parameter.ReferenceFPS,
				Drift:       6,
				BaseOpacity: 0.1,
				Slot:        slot,
			}
		},
	}
}

func AuroraFogGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:     AuroraFog,
		Kind:     scene.KindFog,
		Count:    scene.TierCounts(parameter.AuroraFog),
		Segments: scene.TierCounts(parameter.AuroraFogSegments),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.FogParams{
				Width:    200,
				Depth:    100,
				Segments: g.Segments,
				Y:        -20,
			}
		},
	}
}
