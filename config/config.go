// Package config loads the backdrop TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/backdrop/parameter"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/theme"
	"github.com/lixenwraith/backdrop/vmath"
)

// DefaultPath is the implicit config file; a missing file at this path is not an error
const DefaultPath = "backdrop.toml"

var (
	// ErrUnknownFormat is returned for a logging format other than console or json
	ErrUnknownFormat = errors.New("unknown log format")

	// ErrInvalid wraps every other Validate failure
	ErrInvalid = errors.New("invalid config")
)

type Config struct {
	Scene   SceneConfig   `toml:"scene"`
	Loop    LoopConfig    `toml:"loop"`
	Physics PhysicsConfig `toml:"physics"`
	Logging LoggingConfig `toml:"logging"`
	Render  RenderConfig  `toml:"render"`
}

type SceneConfig struct {
	Effect    string `toml:"effect"`
	Tier      string `toml:"tier"` // low, medium, high, ultra; anything else runs low
	Seed      uint64 `toml:"seed"`
	Theme     string `toml:"theme"`
	ThemeFile string `toml:"theme_file"` // optional YAML palettes added to the built-ins
}

type LoopConfig struct {
	FPS int `toml:"fps"`
}

// PhysicsConfig holds per-frame multipliers at the 60 fps reference rate
type PhysicsConfig struct {
	DriftDamping float64 `toml:"drift_damping"`
	SwirlPull    float64 `toml:"swirl_pull"`
}

type LoggingConfig struct {
	Level     string `toml:"level"`
	Format    string `toml:"format"` // "json" or "console"
	File      string `toml:"file"`   // empty logs to the platform cache dir
	MaxSizeMB int    `toml:"max_size_mb"`
}

type RenderConfig struct {
	CellAspect float64 `toml:"cell_aspect"`
	HUD        bool    `toml:"hud"`
	Ramp       string  `toml:"ramp"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields defaults when implicit is set
func LoadOrDefault(path string, implicit bool) (*Config, error) {
	cfg, err := Load(path)
	if err != nil && implicit && errors.Is(err, fs.ErrNotExist) {
		return defaults(), nil
	}
	return cfg, err
}

// Default returns the built-in configuration
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Scene: SceneConfig{
			Effect: "aurora",
			Tier:   scene.TierMedium.String(),
			Seed:   parameter.DefaultSeed,
			Theme:  theme.DefaultName,
		},
		Loop: LoopConfig{
			FPS: parameter.DefaultFPS,
		},
		Physics: PhysicsConfig{
			DriftDamping: parameter.DrifterDampingPerFrame,
			SwirlPull:    parameter.SwirlPullPerFrame,
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "console",
			MaxSizeMB: 10,
		},
		Render: RenderConfig{
			CellAspect: parameter.CellAspect,
			HUD:        true,
		},
	}
}

// Validate clamps the frame rate, normalises the tier and rejects values no component can run with
func (c *Config) Validate() error {
	c.Loop.FPS = min(max(c.Loop.FPS, parameter.MinFPS), parameter.MaxFPS)
	c.Scene.Tier = scene.ParseTier(c.Scene.Tier).String()

	switch c.Logging.Format {
	case "console", "json":
	case "":
		c.Logging.Format = "console"
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Logging.Format)
	}
	if c.Logging.MaxSizeMB <= 0 {
		return fmt.Errorf("%w: logging.max_size_mb must be positive, got %d", ErrInvalid, c.Logging.MaxSizeMB)
	}
	if c.Scene.Effect == "" {
		return fmt.Errorf("%w: scene.effect is empty", ErrInvalid)
	}
	if c.Render.CellAspect <= 0 {
		return fmt.Errorf("%w: render.cell_aspect must be positive, got %v", ErrInvalid, c.Render.CellAspect)
	}
	for name, v := range map[string]float64{
		"physics.drift_damping": c.Physics.DriftDamping,
		"physics.swirl_pull":    c.Physics.SwirlPull,
	} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%w: %s must be in (0,1], got %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// SceneTier returns the parsed tier
func (c *Config) SceneTier() scene.Tier {
	return scene.ParseTier(c.Scene.Tier)
}

// ScenePhysics converts the per-frame multipliers to continuous rates
func (c *Config) ScenePhysics() scene.Physics {
	p := scene.DefaultPhysics()
	p.DrifterDamping = vmath.DampingRate(c.Physics.DriftDamping, parameter.ReferenceFPS)
	p.SwirlPull = vmath.DampingRate(c.Physics.SwirlPull, parameter.ReferenceFPS)
	return p
}
