package theme

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultName is the palette used when none is configured
const DefaultName = "kaspa-green"

// Built-in palettes: accent primary, accent secondary, secondary text, page background
var builtin = map[string]Palette{
	"neon-blue":     MustPalette("neon-blue", "#4F8FFF", "#00F0FF", "#B0B0C0", "#121225"),
	"cosmic-orange": MustPalette("cosmic-orange", "#FF6F61", "#FFB74D", "#FFA07A", "#1F120A"),
	"kaspa-green":   MustPalette("kaspa-green", "#6EC7BB", "#3DBBA9", "#87C7B6", "#0A1F1A"),
	"clean-white":   MustPalette("clean-white", "#3B82F6", "#2563EB", "#555560", "#F0F2F5"),
	"holo-green":    MustPalette("holo-green", "#00D632", "#009986"),
}

// Builtin returns a named built-in palette
func Builtin(name string) (Palette, error) {
	p, ok := builtin[strings.ToLower(name)]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return p, nil
}

// BuiltinNames returns built-in palette names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
