package scene

import "testing"

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"low", TierLow},
		{"medium", TierMedium},
		{"MED", TierMedium},
		{" High ", TierHigh},
		{"ultra", TierUltra},
		{"", TierLow},
		{"extreme", TierLow},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseTier(tt.in); got != tt.want {
				t.Errorf("ParseTier(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTierString(t *testing.T) {
	for _, tier := range Tiers() {
		if ParseTier(tier.String()) != tier {
			t.Errorf("tier %v does not round-trip through its name", tier)
		}
	}
	if Tier(7).String() != "unknown" {
		t.Errorf("Tier(7).String() = %q", Tier(7).String())
	}
}

func TestTierCountsForInvalidReadsLow(t *testing.T) {
	c := TierCounts{3, 4, 5, 6}
	if got := c.For(Tier(200)); got != 3 {
		t.Errorf("For(invalid) = %d, want 3", got)
	}
	if got := c.For(TierUltra); got != 6 {
		t.Errorf("For(ultra) = %d, want 6", got)
	}
}

func TestTierCountsMonotonic(t *testing.T) {
	if !(TierCounts{1, 1, 2, 3}).Monotonic() {
		t.Error("non-decreasing table reported non-monotonic")
	}
	if (TierCounts{1, 3, 2, 4}).Monotonic() {
		t.Error("decreasing table reported monotonic")
	}
}
