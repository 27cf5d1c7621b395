// Package main is the entry point for cavegen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/samdwyer/cavegen/internal/atlas"
	"github.com/samdwyer/cavegen/internal/config"
	"github.com/samdwyer/cavegen/internal/export"
	"github.com/samdwyer/cavegen/internal/presets"
	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/ui"
	"github.com/samdwyer/cavegen/internal/world"
)

func main() {
	if err := realMain(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("cavegen: %v", err)
	}
}

// realMain holds everything main does so deferred cleanup runs before exit.
func realMain(args []string, out io.Writer) error {
	registry, err := presets.LoadRegistry()
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}

	cfg, view, err := loadConfig(registry, args, os.LookupEnv)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx := context.Background()

	if cfg.HoneycombAPIKey != "" {
		setupOTelEnv(cfg)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	return run(ctx, cfg, view, out)
}

// flagEnv maps command line flags to the variables they override.
var flagEnv = map[string]string{
	"preset":       config.EnvPreset,
	"width":        config.EnvWidth,
	"height":       config.EnvHeight,
	"levels":       config.EnvLevels,
	"seed":         config.EnvSeed,
	"max-attempts": config.EnvMaxAttempts,
	"layout":       config.EnvLayout,
	"out":          config.EnvOutputDir,
	"color":        config.EnvColor,
}

// loadConfig resolves the configuration from flags, the environment and a
// dotenv file, in that order of precedence, layered over the chosen preset.
// It returns whether the interactive viewer was requested.
func loadConfig(registry *presets.Registry, args []string, env config.Lookup) (config.Config, bool, error) {
	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.String("preset", presets.DefaultID, "generation preset")
	fs.Int("width", 0, "level width (overrides preset)")
	fs.Int("height", 0, "level height (overrides preset)")
	fs.Int("levels", 0, "number of levels (overrides preset)")
	fs.Int64("seed", 0, "random seed, 0 for time-based")
	fs.Int("max-attempts", 0, "attempt cap per level, 0 for unbounded (overrides preset)")
	fs.String("layout", atlas.LayoutStacked.String(), "stacked or side-by-side")
	fs.String("out", ".", "output directory, empty to skip the file")
	fs.String("color", string(config.ColorAuto), "auto, always or never")
	envFile := fs.String("env", ".env", "dotenv file with CAVEGEN_* settings")
	view := fs.Bool("view", false, "open the interactive viewer")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	overrides := make(map[string]string)
	explicitEnvFile := false
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagEnv[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
		if f.Name == "env" {
			explicitEnvFile = true
		}
	})

	file, err := config.ReadFile(*envFile)
	if err != nil {
		// The default .env is optional; a named one must exist.
		if explicitEnvFile || !errors.Is(err, os.ErrNotExist) {
			return config.Config{}, false, err
		}
		file = config.MapLookup(nil)
	}

	cfg, err := config.FromEnv(config.Layered(config.MapLookup(overrides), env, file), registry)
	if err != nil {
		return config.Config{}, false, err
	}
	return cfg, *view, nil
}

// run generates the map, prints it to out, writes it to disk and optionally opens the viewer.
func run(ctx context.Context, cfg config.Config, view bool, out io.Writer) error {
	console := ui.NewConsole(out, ui.ShouldColor(cfg.Color, out))

	build := func(ctx context.Context) (*atlas.Atlas, error) {
		return atlas.Build(ctx, cfg.Levels, cfg.Options())
	}

	a, err := build(ctx)
	if err != nil {
		var genErr *world.GenerationError
		if errors.As(err, &genErr) && genErr.Partial != nil {
			err = errors.Join(err,
				console.PrintLines(world.Render(genErr.Partial)),
				console.PrintError("Error: "+genErr.Err.Error()))
		}
		return err
	}

	// Regenerated maps use a fresh seed
	cfg.Seed = 0

	if view {
		screen, err := ui.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		viewer := ui.NewViewer(screen, a, cfg.Layout, cfg.Palette, build)
		if err := viewer.Run(ctx); err != nil {
			return err
		}
		a = viewer.Atlas()
	}

	lines := a.Lines(cfg.Layout)
	if err := console.PrintLines(lines); err != nil {
		return fmt.Errorf("print map: %w", err)
	}

	if cfg.OutputDir != "" {
		path, err := export.WriteMap(cfg.OutputDir, lines)
		if err != nil {
			return err
		}
		log.Printf("Map written to %s", path)
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv(cfg config.Config) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
}
