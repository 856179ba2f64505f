package vmath

import "math"

// TwoPi is one full turn in radians
const TwoPi = 2 * math.Pi

// --- Waves ---

// Wave returns amp*sin(t*freq + phase)
func Wave(t, freq, phase, amp float64) float64 {
	return math.Sin(t*freq+phase) * amp
}

// Pulse returns 0.5 + sin(t*k + phase)*0.5, range [0,1], period 2pi/k
func Pulse(t, k, phase float64) float64 {
	return 0.5 + math.Sin(t*k+phase)*0.5
}

// Period returns the period in seconds of sin(t*k)
func Period(k float64) float64 {
	if k == 0 {
		return math.Inf(1)
	}
	return TwoPi / math.Abs(k)
}

// --- Scalars ---

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 clamps to [0,1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Spread returns a value in [-span/2, span/2)
func (r *FastRand) Spread(span float64) float64 {
	return (r.Float64() - 0.5) * span
}

// InSphere samples a point uniformly inside a sphere of radius
func (r *FastRand) InSphere(radius float64) Vec3F {
	for {
		p := Vec3F{r.Spread(2), r.Spread(2), r.Spread(2)}
		if V3FMagSq(p) <= 1 {
			return V3FScale(p, radius)
		}
	}
}
