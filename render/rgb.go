package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit per channel terminal colour
type RGB struct {
	R, G, B uint8
}

// Predefined colours
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v)
}

// FromColor quantises a palette colour, out-of-gamut channels are clamped
func FromColor(c colorful.Color) RGB {
	return RGB{
		R: clamp(c.R*255 + 0.5),
		G: clamp(c.G*255 + 0.5),
		B: clamp(c.B*255 + 0.5),
	}
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha

	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max keeps the brighter of each channel after dimming src by alpha
// Overlapping samples of one light never brighten a cell past the brightest of them
func Max(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha < 1.0 {
		src = Scale(src, alpha)
	}
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add is the additive light blend: src is scaled by alpha then summed with clamping
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha < 1.0 {
		src = Scale(src, alpha)
	}
	return RGB{
		R: add(c.R, src.R),
		G: add(c.G, src.G),
		B: add(c.B, src.B),
	}
}

// screen is 255 - (255-a)(255-b)/255, rounded
func screen(a, b uint8) uint8 {
	return uint8(255 - ((255-int(a))*(255-int(b))+127)/255)
}

// Screen lightens c by src dimmed by alpha; the result is never darker than c
// Stacked translucent layers approach white without the hard clip of Add
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha < 1.0 {
		src = Scale(src, alpha)
	}
	return RGB{
		R: screen(c.R, src.R),
		G: screen(c.G, src.G),
		B: screen(c.B, src.B),
	}
}

// Scale multiplies all channels by factor, clamped
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Luma returns Rec. 601 luma in [0,1]
func Luma(c RGB) float64 {
	return float64(int(c.R)*299+int(c.G)*587+int(c.B)*114) / (1000 * 255)
}
