package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavegen/internal/telemetry"
)

const (
	// Default level dimensions
	DefaultWidth  = 79
	DefaultHeight = 30

	// DefaultWallProbability is the chance that an initial cell is wall.
	DefaultWallProbability = 0.45

	shapingARounds = 4
	shapingBRounds = 2

	// A level is accepted when walls make up less than maxWallNum/maxWallDen of it.
	maxWallNum = 2
	maxWallDen = 5
)

// ErrExhaustedRetries is returned when every allowed attempt was rejected by
// the openness check.
var ErrExhaustedRetries = errors.New("exhausted generation attempts")

// Options configures a Generator. Zero values select the defaults.
type Options struct {
	Width  int
	Height int

	// WallProbability is the per-cell wall chance during initialization.
	WallProbability float64

	// MaxAttempts caps the number of full regenerations.
	// Zero means retry until a level is accepted.
	MaxAttempts int

	// Seed for the default random source. Ignored when Rand is set.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	Rand Rand

	// Verify overrides the openness check.
	Verify func(*Grid) bool

	// OnPhase is called on every state transition.
	OnPhase func(phase Phase, attempt int)
}

// GenerationError reports a fatal generation failure together with the grid
// as it stood when the failure occurred.
type GenerationError struct {
	Phase   Phase
	Attempt int
	Partial *Grid
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate level: %s (attempt %d): %v", e.Phase, e.Attempt, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Generator runs the cave generation state machine.
type Generator struct {
	opts Options
	rng  Rand
}

// NewGenerator creates a generator, filling unset options with defaults.
func NewGenerator(opts Options) *Generator {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.WallProbability <= 0 {
		opts.WallProbability = DefaultWallProbability
	}
	if opts.Verify == nil {
		opts.Verify = IsOpen
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Generator{opts: opts, rng: rng}
}

// IsOpen reports whether fewer than 40% of the grid's cells are wall.
func IsOpen(g *Grid) bool {
	return g.WallCount()*maxWallDen < g.width*g.height*maxWallNum
}

// Generate produces a finished level, regenerating from scratch until the
// result passes verification. Fatal errors are returned as *GenerationError.
func (gen *Generator) Generate(ctx context.Context) (*Level, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()
	span.SetAttributes(
		attribute.Int("level.width", gen.opts.Width),
		attribute.Int("level.height", gen.opts.Height),
		attribute.Int("level.max_attempts", gen.opts.MaxAttempts),
	)

	var last *Grid
	attempt := 1
	for ; gen.opts.MaxAttempts <= 0 || attempt <= gen.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fail(span, &GenerationError{Phase: PhaseInitializing, Attempt: attempt, Partial: last, Err: err})
		}

		grid, err := gen.attempt(ctx, attempt)
		if err != nil {
			return nil, fail(span, err)
		}
		last = grid

		gen.enter(PhaseVerifying, attempt)
		if gen.opts.Verify(grid) {
			gen.enter(PhaseDone, attempt)
			span.SetAttributes(
				attribute.Int("level.attempts", attempt),
				attribute.Float64("level.wall_fraction", grid.WallFraction()),
				attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
			)
			return &Level{grid: grid, attempts: attempt}, nil
		}
		gen.enter(PhaseRetrying, attempt)
	}

	return nil, fail(span, &GenerationError{
		Phase:   PhaseVerifying,
		Attempt: attempt - 1,
		Partial: last,
		Err:     ErrExhaustedRetries,
	})
}

// attempt runs one pass from initialization through finishing.
func (gen *Generator) attempt(ctx context.Context, attempt int) (*Grid, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "level.attempt",
		trace.WithAttributes(attribute.Int("level.attempt", attempt)))
	defer span.End()

	gen.enter(PhaseInitializing, attempt)
	grid := gen.initialize()

	steps := []struct {
		phase    Phase
		pipeline Pipeline
	}{
		{PhaseShapingA, Pipeline{Rounds: shapingARounds, Stages: []Stage{Pure(KernelA), Pure(EnforceBoundary)}}},
		{PhaseShapingB, Pipeline{Rounds: shapingBRounds, Stages: []Stage{Pure(KernelB), Pure(EnforceBoundary)}}},
		{PhaseFinishing, Pipeline{Rounds: 1, Stages: []Stage{gen.removeOrphans, Pure(CarveEntrances), Pure(KernelB)}}},
	}

	for _, step := range steps {
		gen.enter(step.phase, attempt)
		next, err := step.pipeline.Apply(grid)
		if err != nil {
			span.RecordError(err)
			return nil, &GenerationError{Phase: step.phase, Attempt: attempt, Partial: next, Err: err}
		}
		grid = next
	}

	span.SetAttributes(attribute.Float64("level.wall_fraction", grid.WallFraction()))
	return grid, nil
}

// initialize fills a fresh grid, marking each cell wall with WallProbability.
func (gen *Generator) initialize() *Grid {
	g := NewGrid(gen.opts.Width, gen.opts.Height, false)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			g.cells[row][col] = gen.rng.Float64() < gen.opts.WallProbability
		}
	}
	return g
}

func (gen *Generator) removeOrphans(g *Grid) (*Grid, error) {
	return RemoveOrphans(g, gen.rng)
}

func (gen *Generator) enter(phase Phase, attempt int) {
	if gen.opts.OnPhase != nil {
		gen.opts.OnPhase(phase, attempt)
	}
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
