package scene

import (
	"math"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Curtain vertex wave coefficients
const (
	curtainWave1Freq = 0.1
	curtainWave1Amp  = 2.0
	curtainWave2Freq = 0.15
	curtainWave2Rate = 1.5
	curtainWave2Amp  = 1.5
	curtainLiftFreq  = 0.1
	curtainLiftRate  = 0.5
	curtainSwayAmp   = 3.0
	curtainTwistRate = 0.2
	curtainTwistAmp  = 0.1
)

// Advance moves the scene clock to elapsed and recomputes every entity
// The palette is read once per call; elapsed below the previous value is clamped to it
func (s *Scene) Advance(elapsed float64) {
	if s.tornDown {
		panic(ErrTornDown)
	}
	if elapsed < s.clock || math.IsNaN(elapsed) {
		elapsed = s.clock
	}
	s.clock = elapsed
	s.palette = s.theme.Palette()
	s.gen.Palette = s.palette
	s.Camera.moveTo(s.path.At(elapsed), s.path.Target)

	for gi := range s.Groups {
		g := &s.Groups[gi]
		recyclable := g.Kind.Recyclable()
		hoverable := s.pointer.active && g.Kind.Hoverable()
		for i := range g.Entities {
			e := &g.Entities[i]
			step(e, elapsed, &s.palette)
			if recyclable && g.Boundary.Exceeded(e.State.Position) {
				s.recycle(g, e, elapsed)
			}
			if hoverable && s.hovered(e) {
				highlight(&e.State)
			}
		}
	}

	s.frames++
}

// hovered reports whether the pointer lies within the pick radius of e's projected position
func (s *Scene) hovered(e *Entity) bool {
	x, y, _, ok := s.Camera.NDC(e.State.Position)
	if !ok {
		return false
	}
	dx := (x - s.pointer.x) * s.Camera.Aspect
	dy := y - s.pointer.y
	return dx*dx+dy*dy <= parameter.HoverRadius*parameter.HoverRadius
}

// highlight enlarges st about its position and brightens it
func highlight(st *State) {
	st.Scale *= parameter.HoverScale
	st.Opacity = vmath.Clamp01(st.Opacity * parameter.HoverGain)
	for k, v := range st.Vertices {
		st.Vertices[k] = vmath.V3FAdd(st.Position, vmath.V3FScale(vmath.V3FSub(v, st.Position), parameter.HoverScale))
	}
}

// recycle resamples the spawn of e in place and recomputes its state at now
// Identity and group membership are kept, at now the position equals the fresh spawn position
func (s *Scene) recycle(g *Group, e *Entity, now float64) {
	sp, ok := spawnOf(e.Params)
	if !ok {
		return
	}
	s.gen.Count, s.gen.Segments = len(g.Entities), g.segments
	*sp = g.respawn(s.gen, e.Index, now)
	sp.Time = now
	step(e, now, &s.palette)
	s.recycled++
}

// step is the single dispatch over the params union
func step(e *Entity, t float64, pal *theme.Palette) {
	st := &e.State
	switch p := e.Params.(type) {
	case *StarParams:
		st.Position = p.Position
		st.Opacity = vmath.Pulse(t, p.Rate, p.Phase)
		st.Scale = p.Size
		st.Color = p.Tint

	case *CurtainParams:
		stepCurtain(st, p, t, pal)

	case *RayParams:
		stepRay(st, p, t, pal)

	case *FogParams:
		stepFog(st, p, t, pal)

	case *SwirlParams:
		tau := t - p.Spawn.Time
		decay := vmath.ExpDecay(p.Pull, tau)
		st.Position = vmath.V3FScale(vmath.RotateY(p.Spawn.Position, p.Spin*tau), decay)
		ratio := 1.0
		if p.SpawnMax > 0 {
			ratio = vmath.Clamp01(vmath.V3FMag(st.Position) / p.SpawnMax)
		}
		st.Opacity = p.BaseAlpha * (0.3 + 0.7*ratio)
		st.Scale = 1
		st.Color = pal.Mix(p.Slot, p.ToSlot, 1-ratio)

	case *DrifterParams:
		tau := t - p.Spawn.Time
		damp := vmath.ExpDamp(1, p.Damping, tau)
		wobble := (math.Sin(p.WobbleFreq*tau+p.Spawn.Phase) - math.Sin(p.Spawn.Phase)) * p.WobbleAmp
		st.Position = vmath.V3FAdd(
			vmath.V3FAdd(p.Spawn.Position, vmath.V3FScale(p.Spawn.Velocity, damp)),
			vmath.Vec3F{X: wobble, Y: p.Buoyancy * tau},
		)
		fade := 1.0
		if p.FadeIn > 0 {
			fade = vmath.Clamp01(tau / p.FadeIn)
		}
		st.Opacity = p.Opacity * fade
		st.Scale = 1
		st.Color = pal.Slot(p.Slot)

	case *OrbiterParams:
		angle := p.Angle + p.AngularSpeed*t
		r := p.Radius + math.Sin(t+p.Phase)*p.Breath
		x, y := vmath.Orbit(angle, r)
		st.Position = vmath.Vec3F{X: x, Y: y, Z: p.Z + math.Sin(2*t+p.Phase)*p.Bob}
		st.Opacity = p.Opacity
		st.Scale = 1
		st.Color = pal.Mix(theme.SlotPrimary, theme.SlotSecondary, vmath.Pulse(t, 1, p.Phase))

	case *SpinnerParams:
		a := p.Rate * t
		st.Rotation = vmath.Vec3F{X: a, Y: a}
		st.Position = vmath.RotateXYZ(p.Position, st.Rotation)
		st.Opacity = p.Opacity
		st.Scale = 1
		st.Color = pal.Tertiary

	case *CrystalParams:
		stepCrystal(st, p, t, pal)

	case *RingParams:
		stepRing(st, p, t, pal)

	default:
		panic("scene: unhandled params type")
	}
}

func stepCurtain(st *State, p *CurtainParams, t float64, pal *theme.Palette) {
	st.Position = vmath.Vec3F{Y: p.BaseY + math.Sin(t*p.SwaySpeed)*curtainSwayAmp, Z: p.Z}
	st.Rotation = vmath.Vec3F{X: p.Tilt, Y: math.Sin(t*curtainTwistRate+float64(p.Index)) * curtainTwistAmp}
	st.Opacity = p.Opacity
	st.Scale = 1
	st.Color = pal.Primary

	seg := p.Segments
	inv := 1 / float64(seg)
	k := 0
	for row := 0; row <= seg; row++ {
		v := float64(row) * inv
		y := -p.Height/2 + p.Height*v
		lift := math.Sin(y*curtainLiftFreq+t*curtainLiftRate)
		for col := 0; col <= seg; col++ {
			u := float64(col) * inv
			x := -p.Width/2 + p.Width*u
			z := math.Sin(x*curtainWave1Freq+t)*curtainWave1Amp +
				math.Cos(x*curtainWave2Freq+t*curtainWave2Rate)*curtainWave2Amp

			local := vmath.Vec3F{X: x, Y: y + lift, Z: z}
			st.Vertices[k] = vmath.V3FAdd(st.Position, vmath.RotateXYZ(local, st.Rotation))

			mix := vmath.Clamp01(v + math.Sin(u*10+t)*0.1)
			st.Colors[k] = pal.Mix(theme.SlotPrimary, theme.SlotSecondary, mix)
			st.Alpha[k] = p.Opacity * (1 - v) * vmath.Pulse(t, 1, u*5)
			k++
		}
	}
}

func stepRay(st *State, p *RayParams, t float64, pal *theme.Palette) {
	idx := float64(p.Index)
	st.Rotation = vmath.Vec3F{Z: p.Roll + p.SwayRate*t}
	st.Position = vmath.V3FAdd(p.Base, vmath.Vec3F{X: p.Drift * (math.Cos(idx) - math.Cos(t+idx))})
	st.Opacity = vmath.Clamp01(p.BaseOpacity + math.Sin(t*p.PulseSpeed)*0.05)
	st.Scale = 1
	st.Color = pal.Slot(p.Slot)

	seg := p.Segments
	for k := 0; k <= seg; k++ {
		f := float64(k) / float64(seg)
		local := vmath.Vec3F{Y: -p.Length * f}
		st.Vertices[k] = vmath.V3FAdd(st.Position, vmath.RotateZ(local, st.Rotation.Z))
		st.Alpha[k] = st.Opacity * (1 - 0.7*f)
	}
}

func stepFog(st *State, p *FogParams, t float64, pal *theme.Palette) {
	st.Position = vmath.Vec3F{Y: p.Y}
	st.Opacity = 0.05 + math.Sin(t*0.5)*0.05
	st.Scale = 1
	st.Color = pal.Secondary

	seg := p.Segments
	inv := 1 / float64(seg)
	k := 0
	for row := 0; row <= seg; row++ {
		z := -p.Depth/2 + p.Depth*float64(row)*inv
		for col := 0; col <= seg; col++ {
			x := -p.Width/2 + p.Width*float64(col)*inv
			st.Vertices[k] = vmath.Vec3F{X: x, Y: p.Y + math.Sin(t+x*0.05)*2, Z: z}
			k++
		}
	}
}

func stepCrystal(st *State, p *CrystalParams, t float64, pal *theme.Palette) {
	scale := p.StartScale + p.GrowthRate*t
	if scale > 1 {
		scale = 1
	}
	st.Scale = scale
	st.Rotation = vmath.Vec3F{X: p.Tilt.X, Y: p.Tilt.Y + p.SpinRate*t, Z: p.Tilt.Z}
	st.Position = vmath.V3FAdd(p.Base, vmath.Vec3F{Y: math.Sin(t*p.BobSpeed) * p.BobAmp})
	st.Opacity = vmath.Clamp01(0.5 + math.Sin(t*p.PulseSpeed)*0.2*p.Glow)
	st.Color = pal.Slot(p.Slot)

	n := p.Sides
	for k := 0; k < n; k++ {
		x, z := vmath.Orbit(vmath.TwoPi*float64(k)/float64(n), p.Radius*scale)
		st.Vertices[k] = vmath.V3FAdd(st.Position, vmath.RotateXYZ(vmath.Vec3F{X: x, Z: z}, st.Rotation))
	}
	apex := vmath.Vec3F{Y: p.Height * scale}
	st.Vertices[n] = vmath.V3FAdd(st.Position, vmath.RotateXYZ(apex, st.Rotation))
}

func stepRing(st *State, p *RingParams, t float64, pal *theme.Palette) {
	spin := p.SpinRate*t + p.Phase
	st.Position = p.Center
	st.Rotation = vmath.Vec3F{X: p.Tilt.X, Y: p.Tilt.Y, Z: p.Tilt.Z + spin}
	st.Opacity = p.Opacity * (0.7 + 0.3*vmath.Pulse(t, p.PulseSpeed, p.Phase))
	st.Scale = 1
	st.Color = pal.Slot(p.Slot)

	n := p.Sides
	for k := 0; k < n; k++ {
		x, y := vmath.Orbit(vmath.TwoPi*float64(k)/float64(n)+spin, p.Radius)
		st.Vertices[k] = vmath.V3FAdd(p.Center, vmath.RotateXYZ(vmath.Vec3F{X: x, Y: y}, p.Tilt))
	}
}
