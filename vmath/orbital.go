package vmath

import "math"

// Orbit returns the point on a circle of radius in the XY plane
func Orbit(angle, radius float64) (x, y float64) {
	s, c := math.Sincos(angle)
	return c * radius, s * radius
}

// OrbitXZ returns the point on a horizontal circle, Y left at zero
func OrbitXZ(angle, radius float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{c * radius, 0, s * radius}
}

// PolarXY decomposes the XY projection of p into angle and radius
func PolarXY(p Vec3F) (angle, radius float64) {
	return math.Atan2(p.Y, p.X), math.Hypot(p.X, p.Y)
}

// ExpDamp integrates a velocity v0 damped at rate k over tau seconds
// Closed form of x' = v0*e^(-k*t): v0*(1-e^(-k*tau))/k, k<=0 degrades to v0*tau
func ExpDamp(v0, k, tau float64) float64 {
	if k <= 0 {
		return v0 * tau
	}
	return v0 * (1 - math.Exp(-k*tau)) / k
}

// ExpDecay returns e^(-k*tau)
func ExpDecay(k, tau float64) float64 {
	if k <= 0 {
		return 1
	}
	return math.Exp(-k * tau)
}

// DampingRate converts a per-frame multiplier at fps into a continuous rate
// A multiplier of 0.98 at 60 fps becomes -ln(0.98)*60 per second
func DampingRate(perFrame, fps float64) float64 {
	if perFrame <= 0 || perFrame >= 1 || fps <= 0 {
		return 0
	}
	return -math.Log(perFrame) * fps
}
