package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestPulseRangeAndPeriod(t *testing.T) {
	k := 2.0
	p := Period(k)
	for _, tt := range []float64{0, 0.3, 1.7, 12.5} {
		v := Pulse(tt, k, 1)
		if v < 0 || v > 1 {
			t.Errorf("Pulse(%v) = %v out of [0,1]", tt, v)
		}
		if !near(v, Pulse(tt+p, k, 1)) {
			t.Errorf("Pulse not periodic at %v", tt)
		}
	}
	if !math.IsInf(Period(0), 1) {
		t.Error("Period(0) should be +Inf")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("diverged at %d", i)
		}
	}
	zero := NewFastRand(0)
	if zero.Next() == 0 {
		t.Error("zero seed must not stick at zero")
	}
}

func TestFastRandBounds(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(3, 5); v < 3 || v >= 5 {
			t.Fatalf("Range = %v", v)
		}
		if v := r.Spread(4); v < -2 || v >= 2 {
			t.Fatalf("Spread = %v", v)
		}
		if p := r.InSphere(2); V3FMag(p) > 2+eps {
			t.Fatalf("InSphere = %+v", p)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := Vec3F{1, 2, 3}
	r := RotateXYZ(v, Vec3F{0.3, -1.1, 2.4})
	if !near(V3FMag(v), V3FMag(r)) {
		t.Errorf("length %v became %v", V3FMag(v), V3FMag(r))
	}
	q := RotateZ(Vec3F{1, 0, 0}, math.Pi/2)
	if !near(q.X, 0) || !near(q.Y, 1) {
		t.Errorf("RotateZ(x, pi/2) = %+v", q)
	}
}

func TestDampingRateMatchesPerFrame(t *testing.T) {
	k := DampingRate(0.98, 60)
	if !near(ExpDecay(k, 1.0/60), 0.98) {
		t.Errorf("one frame decay = %v, want 0.98", ExpDecay(k, 1.0/60))
	}
	if DampingRate(1, 60) != 0 || DampingRate(0, 60) != 0 {
		t.Error("degenerate multipliers should give zero rate")
	}
	// Undamped integration is linear
	if ExpDamp(3, 0, 2) != 6 {
		t.Error("ExpDamp with k=0")
	}
	// Damped displacement approaches v0/k
	if !near(ExpDamp(3, k, 1e6), 3/k) {
		t.Error("ExpDamp limit")
	}
}

func TestOrbitXZ(t *testing.T) {
	p := OrbitXZ(math.Pi/2, 5)
	if !near(p.X, 0) || p.Y != 0 || !near(p.Z, 5) {
		t.Errorf("OrbitXZ = %+v", p)
	}
	x, y := Orbit(0, 2)
	if x != 2 || y != 0 {
		t.Errorf("Orbit = %v,%v", x, y)
	}
}
