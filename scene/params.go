package scene

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// Params is the closed set of per-kind origin parameters
// Each implementation carries the constants its formula reads; Advance dispatches on the concrete type
type Params interface {
	Kind() Kind
	sealed()
}

// Spawn is the resampleable origin of a recyclable entity
type Spawn struct {
	Position vmath.Vec3F
	Velocity vmath.Vec3F
	Time     float64 // scene clock at spawn
	Phase    float64
}

// StarParams: fixed point twinkling as 0.5 + sin(t*Rate + Phase)*0.5
type StarParams struct {
	Position vmath.Vec3F
	Phase    float64
	Rate     float64
	Size     float64
	Tint     colorful.Color
}

// CurtainParams: wave-displaced vertical sheet swaying on Y
type CurtainParams struct {
	Index     int
	Width     float64
	Height    float64
	Segments  int
	BaseY     float64
	Z         float64
	Tilt      float64 // rotation about X
	SwaySpeed float64
	Opacity   float64
}

// RayParams: pulsing light shaft rolling slowly about Z
type RayParams struct {
	Index       int
	Base        vmath.Vec3F
	Roll        float64
	Length      float64
	Segments    int
	PulseSpeed  float64
	SwayRate    float64 // roll radians per second
	Drift       float64 // horizontal drift amplitude
	BaseOpacity float64
	Slot        theme.Slot
}

// FogParams: horizontal grid undulating on Y
type FogParams struct {
	Width    float64
	Depth    float64
	Segments int
	Y        float64
}

// SwirlParams: particle spiralling inward, recycled onto the spawn ring
type SwirlParams struct {
	Spawn     Spawn
	Pull      float64 // radial decay rate per second
	Spin      float64 // radians per second about Y
	SpawnMax  float64 // ring radius used for opacity and colour falloff
	Slot      theme.Slot
	ToSlot    theme.Slot
	BaseAlpha float64
}

// DrifterParams: damped velocity plus buoyancy and sideways wobble, recycled at the outer boundary
type DrifterParams struct {
	Spawn      Spawn
	Damping    float64 // continuous rate, see vmath.DampingRate
	Buoyancy   float64 // constant upward speed
	WobbleAmp  float64
	WobbleFreq float64
	FadeIn     float64 // seconds to reach full opacity
	Opacity    float64
	Slot       theme.Slot
}

// OrbiterParams: circular orbit with breathing radius, vertical bob and colour lerp
type OrbiterParams struct {
	Radius       float64
	Angle        float64
	AngularSpeed float64
	Breath       float64
	Z            float64
	Bob          float64
	Phase        float64
	Opacity      float64
}

// SpinnerParams: point rotated about X and Y at a constant rate
type SpinnerParams struct {
	Position vmath.Vec3F
	Rate     float64
	Opacity  float64
}

// CrystalParams: cone wireframe that grows to full size, spins and pulses
type CrystalParams struct {
	Base       vmath.Vec3F
	Tilt       vmath.Vec3F
	Radius     float64
	Height     float64
	Sides      int
	StartScale float64
	GrowthRate float64 // scale per second until 1
	SpinRate   float64
	PulseSpeed float64
	Glow       float64
	BobAmp     float64
	BobSpeed   float64
	Slot       theme.Slot
}

// RingParams: polygon loop spinning about its normal
type RingParams struct {
	Center     vmath.Vec3F
	Radius     float64
	Sides      int
	Tilt       vmath.Vec3F
	SpinRate   float64
	PulseSpeed float64
	Phase      float64
	Opacity    float64
	Slot       theme.Slot
}

func (*StarParams) Kind() Kind    { return KindStar }
func (*CurtainParams) Kind() Kind { return KindCurtain }
func (*RayParams) Kind() Kind     { return KindRay }
func (*FogParams) Kind() Kind     { return KindFog }
func (*SwirlParams) Kind() Kind   { return KindSwirl }
func (*DrifterParams) Kind() Kind { return KindDrifter }
func (*OrbiterParams) Kind() Kind { return KindOrbiter }
func (*SpinnerParams) Kind() Kind { return KindSpinner }
func (*CrystalParams) Kind() Kind { return KindCrystal }
func (*RingParams) Kind() Kind    { return KindRing }

func (*StarParams) sealed()    {}
func (*CurtainParams) sealed() {}
func (*RayParams) sealed()     {}
func (*FogParams) sealed()     {}
func (*SwirlParams) sealed()   {}
func (*DrifterParams) sealed() {}
func (*OrbiterParams) sealed() {}
func (*SpinnerParams) sealed() {}
func (*CrystalParams) sealed() {}
func (*RingParams) sealed()    {}

// spawnOf returns the spawn record of a recyclable params value
func spawnOf(p Params) (*Spawn, bool) {
	switch p := p.(type) {
	case *SwirlParams:
		return &p.Spawn, true
	case *DrifterParams:
		return &p.Spawn, true
	default:
		return nil, false
	}
}
