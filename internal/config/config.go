// Package config loads cavegen settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavegen/internal/atlas"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/world"
)

// Environment variable names.
const (
	EnvPreset          = "CAVEGEN_PRESET"
	EnvWidth           = "CAVEGEN_WIDTH"
	EnvHeight          = "CAVEGEN_HEIGHT"
	EnvLevels          = "CAVEGEN_LEVELS"
	EnvWallProbability = "CAVEGEN_WALL_PROBABILITY"
	EnvSeed            = "CAVEGEN_SEED"
	EnvMaxAttempts     = "CAVEGEN_MAX_ATTEMPTS"
	EnvLayout          = "CAVEGEN_LAYOUT"
	EnvOutputDir       = "CAVEGEN_OUTPUT_DIR"
	EnvColor           = "CAVEGEN_COLOR"
	EnvHoneycombKey    = "CAVEGEN_HONEYCOMB_API_KEY"
	EnvHoneycombSet    = "CAVEGEN_HONEYCOMB_DATASET"
)

// ColorMode controls ANSI coloring of console output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds cavegen configuration options.
type Config struct {
	Preset          string
	Width           int
	Height          int
	Levels          int
	WallProbability float64
	MaxAttempts     int // 0 = retry until accepted

	// Seed for random number generation. Used for reproducible maps.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Layout    atlas.Layout
	OutputDir string // empty disables the file output
	Color     ColorMode
	Palette   presets.Palette

	HoneycombAPIKey  string
	HoneycombDataset string
}

// Options returns generator options for one level of the map.
func (c Config) Options() world.Options {
	return world.Options{
		Width:           c.Width,
		Height:          c.Height,
		WallProbability: c.WallProbability,
		MaxAttempts:     c.MaxAttempts,
		Seed:            c.Seed,
	}
}

// Lookup returns the value of a configuration variable and whether it is set.
type Lookup func(key string) (string, bool)

// MapLookup serves variables from a map.
func MapLookup(vars map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// Layered consults each lookup in order; the first one that sets a key wins.
func Layered(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// ReadFile parses a dotenv file without touching the process environment.
func ReadFile(path string) (Lookup, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return MapLookup(vars), nil
}

// FromEnv builds the configuration from a lookup function, layering the
// variables over the selected preset. The preset is chosen first, so
// explicit dimension variables always override it.
func FromEnv(lookup Lookup, registry *presets.Registry) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	id := get(EnvPreset)
	if id == "" {
		id = presets.DefaultID
	}
	preset := registry.GetByID(id)
	if preset == nil {
		return Config{}, fmt.Errorf("unknown preset %q (have %s)", id, strings.Join(registry.IDs(), ", "))
	}

	cfg := Config{
		Preset:           preset.ID,
		Width:            preset.Width,
		Height:           preset.Height,
		Levels:           preset.Levels,
		WallProbability:  preset.WallProbability,
		MaxAttempts:      preset.MaxAttempts,
		OutputDir:        ".",
		Color:            ColorAuto,
		Palette:          preset.Palette(),
		HoneycombAPIKey:  get(EnvHoneycombKey),
		HoneycombDataset: get(EnvHoneycombSet),
	}
	if cfg.HoneycombDataset == "" {
		cfg.HoneycombDataset = "cavegen"
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvLevels, &cfg.Levels},
		{EnvMaxAttempts, &cfg.MaxAttempts},
	}
	for _, f := range ints {
		if v := get(f.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s: %w", f.key, err)
			}
			*f.dst = n
		}
	}

	if v := get(EnvWallProbability); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvWallProbability, err)
		}
		cfg.WallProbability = p
	}
	if v := get(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = strings.TrimSpace(v)
	}

	layout, err := atlas.ParseLayout(get(EnvLayout))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLayout, err)
	}
	cfg.Layout = layout

	if v := get(EnvColor); v != "" {
		cfg.Color = ColorMode(strings.ToLower(v))
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values generation cannot use.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("dimensions %dx%d must be positive", c.Width, c.Height)
	case c.Levels <= 0:
		return fmt.Errorf("level count %d must be positive", c.Levels)
	case c.WallProbability <= 0 || c.WallProbability > 1:
		return fmt.Errorf("wall probability %v out of (0, 1]", c.WallProbability)
	case c.MaxAttempts < 0:
		return fmt.Errorf("max attempts %d is negative", c.MaxAttempts)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	return nil
}
