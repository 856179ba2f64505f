package theme

import (
	"fmt"
	"sync"
)

// Source supplies the current palette, scenes call it once per frame
type Source interface {
	Palette() Palette
}

// Static is a Source that never changes
type Static Palette

// Palette returns the fixed palette
func (s Static) Palette() Palette {
	return Palette(s)
}

// Cycle is a Source rotating through palettes on demand
// Next may be called from any goroutine; the change is visible on the next frame
type Cycle struct {
	mu       sync.RWMutex
	palettes []Palette
	index    int
}

// NewCycle creates a cycle starting at the first palette
func NewCycle(palettes ...Palette) (*Cycle, error) {
	if len(palettes) == 0 {
		return nil, fmt.Errorf("%w: empty cycle", ErrUnknownTheme)
	}
	return &Cycle{palettes: palettes}, nil
}

// NewBuiltinCycle cycles all built-in palettes starting at start
func NewBuiltinCycle(start string) (*Cycle, error) {
	names := BuiltinNames()
	palettes := make([]Palette, 0, len(names))
	startIdx := -1
	for i, name := range names {
		palettes = append(palettes, builtin[name])
		if name == start {
			startIdx = i
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, start)
	}
	c, err := NewCycle(palettes...)
	if err != nil {
		return nil, err
	}
	c.index = startIdx
	return c, nil
}

// Palette returns the current palette
func (c *Cycle) Palette() Palette {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.palettes[c.index]
}

// Next advances to the following palette and returns it
func (c *Cycle) Next() Palette {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % len(c.palettes)
	return c.palettes[c.index]
}

// Select switches to the named palette
func (c *Cycle) Select(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, p := range c.palettes {
		if p.Name == name {
			c.index = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Len returns the number of palettes in the cycle
func (c *Cycle) Len() int {
	return len(c.palettes)
}
