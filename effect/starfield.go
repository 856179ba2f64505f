package effect

import (
	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/vmath"
)

// StarfieldStars is the starfield group name
const StarfieldStars = "stars"

// Starfield turns a uniform star cube about X and Y around a camera sitting at its centre
func Starfield() scene.Blueprint {
	return scene.Blueprint{
		Name:   "starfield",
		Groups: []scene.GroupSpec{StarfieldGroup()},
		Camera: scene.CameraPath{
			Base:   vmath.Vec3F{Z: 1},
			Target: vmath.Vec3F{Z: -1},
			FOV:    parameter.CameraFOV,
		},
	}
}

func StarfieldGroup() scene.GroupSpec {
	return scene.GroupSpec{
		Name:  StarfieldStars,
		Kind:  scene.KindSpinner,
		Count: scene.TierCounts(parameter.StarfieldStars),
		New: func(g *scene.Gen, i int) scene.Params {
			return &scene.SpinnerParams{
				Position: vmath.Vec3F{
					X: g.Rand.Spread(600),
					Y: g.Rand.Spread(600),
					Z: g.Rand.Spread(600),
				},
				Rate:    g.Physics.SpinRate,
				Opacity: 0.8,
			}
		},
	}
}
