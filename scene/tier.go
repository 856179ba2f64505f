package scene

import "strings"

// Tier is the performance tier controlling entity counts and geometry subdivision
type Tier uint8

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
	TierUltra
)

// tierCount is the number of defined tiers
const tierCount = 4

// ParseTier maps a name to a Tier, unknown names fail closed to TierLow
func ParseTier(s string) Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium", "med":
		return TierMedium
	case "high":
		return TierHigh
	case "ultra":
		return TierUltra
	default:
		return TierLow
	}
}

// Valid reports whether t is one of the defined tiers
func (t Tier) Valid() bool {
	return t < tierCount
}

// Normalize returns t, or TierLow when t is out of range
func (t Tier) Normalize() Tier {
	if !t.Valid() {
		return TierLow
	}
	return t
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	case TierUltra:
		return "ultra"
	default:
		return "unknown"
	}
}

// Tiers returns all tiers in ascending cost order
func Tiers() []Tier {
	return []Tier{TierLow, TierMedium, TierHigh, TierUltra}
}

// TierCounts is a per-tier table indexed low, medium, high, ultra
type TierCounts [tierCount]int

// For returns the value for t, out-of-range tiers read the low column
func (c TierCounts) For(t Tier) int {
	return c[t.Normalize()]
}

// Monotonic reports whether the table never decreases with tier
func (c TierCounts) Monotonic() bool {
	for i := 1; i < tierCount; i++ {
		if c[i] < c[i-1] {
			return false
		}
	}
	return true
}

// IsZero reports an unset table
func (c TierCounts) IsZero() bool {
	return c == TierCounts{}
}
