// Package theme supplies the accent colours a scene reads every frame.
package theme

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrBadColor is returned for colour strings that are not #rgb or #rrggbb
	ErrBadColor = errors.New("theme: bad colour")
	// ErrUnknownTheme is returned when a named palette does not exist
	ErrUnknownTheme = errors.New("theme: unknown theme")
)

// Slot selects one accent of a palette
type Slot uint8

const (
	SlotPrimary Slot = iota
	SlotSecondary
	SlotTertiary
	SlotBackground
)

// Palette is the set of accent colours consumed by scene formulas
// Read-only once handed to a scene
type Palette struct {
	Name       string
	Primary    colorful.Color
	Secondary  colorful.Color
	Tertiary   colorful.Color
	Background colorful.Color
}

// NewPalette builds a palette from two to four hex colours
// A missing tertiary is the midpoint of primary and secondary, a missing background is black
func NewPalette(name string, hex ...string) (Palette, error) {
	if len(hex) < 2 || len(hex) > 4 {
		return Palette{}, fmt.Errorf("%w: palette %q needs 2-4 colours, got %d", ErrBadColor, name, len(hex))
	}

	cols := make([]colorful.Color, len(hex))
	for i, h := range hex {
		c, err := ParseColor(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %q: %w", name, err)
		}
		cols[i] = c
	}

	p := Palette{Name: name, Primary: cols[0], Secondary: cols[1]}
	if len(cols) > 2 {
		p.Tertiary = cols[2]
	} else {
		p.Tertiary = cols[0].BlendRgb(cols[1], 0.5)
	}
	if len(cols) > 3 {
		p.Background = cols[3]
	}
	return p, nil
}

// MustPalette is NewPalette for compile-time palettes
func MustPalette(name string, hex ...string) Palette {
	p, err := NewPalette(name, hex...)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseColor parses #rgb or #rrggbb
func ParseColor(s string) (colorful.Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	return c, nil
}

// Slot returns the colour for slot, unknown slots map to primary
func (p Palette) Slot(s Slot) colorful.Color {
	switch s {
	case SlotSecondary:
		return p.Secondary
	case SlotTertiary:
		return p.Tertiary
	case SlotBackground:
		return p.Background
	default:
		return p.Primary
	}
}

// Mix blends slot a toward slot b in RGB space, t clamped to [0,1]
func (p Palette) Mix(a, b Slot, t float64) colorful.Color {
	if t <= 0 {
		return p.Slot(a)
	}
	if t >= 1 {
		return p.Slot(b)
	}
	return p.Slot(a).BlendRgb(p.Slot(b), t)
}
