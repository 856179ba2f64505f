package theme

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaletteFallbacks(t *testing.T) {
	p, err := NewPalette("pair", "#ff0000", "#0000ff")
	require.NoError(t, err)

	r, g, b := p.Tertiary.RGB255()
	assert.Equal(t, uint8(128), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(128), b)

	br, bg, bb := p.Background.RGB255()
	assert.Zero(t, br)
	assert.Zero(t, bg)
	assert.Zero(t, bb)
}

func TestNewPaletteRejects(t *testing.T) {
	tests := []struct {
		name string
		hex  []string
	}{
		{"one colour", []string{"#ffffff"}},
		{"five colours", []string{"#111", "#222", "#333", "#444", "#555"}},
		{"not hex", []string{"#ffffff", "teal"}},
		{"short", []string{"#ffffff", "#ff"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPalette(tt.name, tt.hex...)
			assert.ErrorIs(t, err, ErrBadColor)
		})
	}
}

func TestParseColorShortForm(t *testing.T) {
	c, err := ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.Hex())
}

func TestPaletteMixEndpoints(t *testing.T) {
	p := MustPalette("x", "#ff0000", "#0000ff")
	assert.Equal(t, p.Primary, p.Mix(SlotPrimary, SlotSecondary, -1))
	assert.Equal(t, p.Secondary, p.Mix(SlotPrimary, SlotSecondary, 2))
	assert.Equal(t, p.Primary, p.Slot(Slot(99)))
}

func TestBuiltinLookup(t *testing.T) {
	p, err := Builtin("Kaspa-Green")
	require.NoError(t, err)
	assert.Equal(t, "#6ec7bb", p.Primary.Hex())

	_, err = Builtin("nope")
	assert.ErrorIs(t, err, ErrUnknownTheme)

	assert.Contains(t, BuiltinNames(), DefaultName)
}

func TestCycleWrapsAndSelects(t *testing.T) {
	c, err := NewBuiltinCycle(DefaultName)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, c.Palette().Name)

	seen := map[string]bool{}
	for i := 0; i < c.Len(); i++ {
		seen[c.Next().Name] = true
	}
	assert.Len(t, seen, c.Len())
	assert.Equal(t, DefaultName, c.Palette().Name, "full cycle returns to start")

	require.NoError(t, c.Select("neon-blue"))
	assert.Equal(t, "neon-blue", c.Palette().Name)
	assert.ErrorIs(t, c.Select("missing"), ErrUnknownTheme)

	_, err = NewBuiltinCycle("missing")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestCycleConcurrentNext(t *testing.T) {
	c, err := NewCycle(MustPalette("a", "#000", "#fff"), MustPalette("b", "#fff", "#000"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Next()
				_ = c.Palette()
			}
		}()
	}
	wg.Wait()
	// 800 steps over 2 palettes lands back on the first
	assert.Equal(t, "a", c.Palette().Name)
}

func TestLoadPaletteFile(t *testing.T) {
	data := []byte(`
themes:
  midnight:
    primary: "#4F8FFF"
    secondary: "#00F0FF"
    background: "#121225"
  ember:
    primary: "#FF6F61"
    secondary: "#FFB74D"
    tertiary: "#FFA07A"
`)
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	palettes, err := Load(path)
	require.NoError(t, err)
	require.Len(t, palettes, 2)

	assert.Equal(t, "ember", palettes[0].Name)
	assert.Equal(t, "#ffa07a", palettes[0].Tertiary.Hex())
	assert.Equal(t, "midnight", palettes[1].Name)
	assert.Equal(t, "#121225", palettes[1].Background.Hex())
}

func TestParsePaletteErrors(t *testing.T) {
	_, err := Parse([]byte("themes: {}"))
	assert.ErrorIs(t, err, ErrUnknownTheme)

	_, err = Parse([]byte("themes:\n  bad:\n    primary: red\n    secondary: \"#000\"\n"))
	assert.ErrorIs(t, err, ErrBadColor)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
