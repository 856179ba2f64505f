package theme

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk layout of a palette file
//
//	themes:
//	  midnight:
//	    primary: "#4F8FFF"
//	    secondary: "#00F0FF"
//	    tertiary: "#B0B0C0"   # optional
//	    background: "#121225" # optional
type paletteFile struct {
	Themes map[string]paletteEntry `yaml:"themes"`
}

type paletteEntry struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Tertiary   string `yaml:"tertiary"`
	Background string `yaml:"background"`
}

// Load reads a YAML palette file and returns its palettes sorted by name
func Load(path string) ([]Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palettes %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML palette data
func Parse(data []byte) ([]Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse palettes: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("%w: no themes defined", ErrUnknownTheme)
	}

	names := make([]string, 0, len(f.Themes))
	for name := range f.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	palettes := make([]Palette, 0, len(names))
	for _, name := range names {
		e := f.Themes[name]
		hex := []string{e.Primary, e.Secondary}
		if e.Tertiary != "" {
			hex = append(hex, e.Tertiary)
		}
		if e.Background != "" {
			if e.Tertiary == "" {
				// Background needs a tertiary in position 3
				p, err := NewPalette(name, e.Primary, e.Secondary)
				if err != nil {
					return nil, err
				}
				bg, err := ParseColor(e.Background)
				if err != nil {
					return nil, fmt.Errorf("palette %q: %w", name, err)
				}
				p.Background = bg
				palettes = append(palettes, p)
				continue
			}
			hex = append(hex, e.Background)
		}
		p, err := NewPalette(name, hex...)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	return palettes, nil
}
