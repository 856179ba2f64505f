package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Buffer is a compositor over a cell array with light accumulation and dirty tracking
// Light is summed per cell across a frame and turned into a glyph on Resolve
type Buffer struct {
	cells   []Cell
	light   []float64
	touched []bool
	width   int
	height  int
	bg      RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.light = make([]float64, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.light = b.light[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear(b.bg)
}

// Clear resets all cells to empty over bg using exponential copy
func (b *Buffer) Clear(bg RGB) {
	b.bg = bg
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Bg: bg}
	b.light[0] = 0
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
		copy(b.light[filled:], b.light[:filled])
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, zero outside bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Light returns the accumulated light at x,y
func (b *Buffer) Light(x, y int) float64 {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.light[y*b.width+x]
}

// Set composites a cell with specified blend mode
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if r != 0 {
		dst.Rune = r
	}
	if uint8(mode)&flagBg != 0 {
		dst.Bg = mode.apply(dst.Bg, bg, alpha)
		b.touched[idx] = true
	}
	if uint8(mode)&flagFg != 0 {
		dst.Fg = mode.apply(dst.Fg, fg, alpha)
	}
}

// AddLight accumulates an additive light sample; the glyph is chosen later from the summed intensity
func (b *Buffer) AddLight(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Fg = Add(b.cells[idx].Fg, c, alpha)
	b.light[idx] += alpha
}

// MaxLight records a light sample that overlapping samples do not sum with
// Glyph colour and intensity keep the brightest sample seen in the cell
func (b *Buffer) MaxLight(x, y int, c RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Fg = Max(b.cells[idx].Fg, c, alpha)
	b.light[idx] = max(b.light[idx], alpha)
}

// SetText writes s left to right from x,y, replacing glyph and foreground and keeping background
func (b *Buffer) SetText(x, y int, s string, fg RGB) {
	for _, r := range s {
		if b.inBounds(x, y) {
			idx := y*b.width + x
			b.cells[idx].Rune = r
			b.cells[idx].Fg = fg
			b.light[idx] = 0
		}
		x++
	}
}

// Resolve assigns ramp glyphs to lit cells that carry no explicit rune
func (b *Buffer) Resolve(ramp Ramp) {
	for i := range b.cells {
		if b.cells[i].Rune == 0 && b.light[i] > 0 {
			b.cells[i].Rune = ramp.Glyph(b.light[i])
		}
	}
}

// Flush writes every cell to screen; untouched cells get the clear background
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			if !b.touched[row+x] {
				c.Bg = b.bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
