package render

// Ramp maps light intensity to glyph density, darkest first
type Ramp []rune

// DefaultRamp is the ASCII density ramp used when none is configured
var DefaultRamp = Ramp(" .:-=+*#%@")

// Glyph returns the ramp glyph for intensity, clamped to [0,1]
func (r Ramp) Glyph(intensity float64) rune {
	if len(r) == 0 {
		return ' '
	}
	if intensity <= 0 {
		return r[0]
	}
	if intensity >= 1 {
		return r[len(r)-1]
	}
	return r[int(intensity*float64(len(r)-1)+0.5)]
}
