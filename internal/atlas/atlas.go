// Package atlas composes several generated levels into one map.
package atlas

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cavegen/internal/telemetry"
	"github.com/samdwyer/cavegen/internal/world"
)

// Layout selects how levels are arranged when rendered.
type Layout int

const (
	// LayoutStacked prints levels one above the other, last level first.
	LayoutStacked Layout = iota
	// LayoutSideBySide merges levels row for row into one wide world.
	LayoutSideBySide
)

// String returns the layout's config name.
func (l Layout) String() string {
	switch l {
	case LayoutStacked:
		return "stacked"
	case LayoutSideBySide:
		return "side-by-side"
	default:
		return "unknown"
	}
}

// ParseLayout converts a config name into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stacked", "stack":
		return LayoutStacked, nil
	case "side-by-side", "side", "wide":
		return LayoutSideBySide, nil
	default:
		return LayoutStacked, fmt.Errorf("unknown layout %q", s)
	}
}

// Atlas holds equally sized levels. In the side-by-side coordinate space
// the combined width is split into one band of LevelWidth columns per level.
type Atlas struct {
	levels []*world.Level
	width  int
	height int
}

// New builds an atlas from existing levels. All levels must share a size.
func New(levels ...*world.Level) (*Atlas, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("atlas needs at least one level")
	}
	width, height := levels[0].Width(), levels[0].Height()
	for i, l := range levels[1:] {
		if l.Width() != width || l.Height() != height {
			return nil, fmt.Errorf("level %d is %dx%d, want %dx%d", i+1, l.Width(), l.Height(), width, height)
		}
	}
	return &Atlas{levels: levels, width: width, height: height}, nil
}

// Build generates count levels in sequence from one generator.
func Build(ctx context.Context, count int, opts world.Options) (*Atlas, error) {
	tracer := telemetry.Tracer("atlas")
	ctx, span := tracer.Start(ctx, "atlas.build")
	defer span.End()

	if count <= 0 {
		return nil, fmt.Errorf("level count must be positive, got %d", count)
	}

	gen := world.NewGenerator(opts)
	levels := make([]*world.Level, 0, count)
	attempts := 0
	for i := 0; i < count; i++ {
		level, err := gen.Generate(ctx)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		attempts += level.Attempts()
		levels = append(levels, level)
	}

	span.SetAttributes(
		attribute.Int("atlas.levels", count),
		attribute.Int("atlas.total_attempts", attempts),
	)
	return New(levels...)
}

// Levels returns the levels in generation order.
func (a *Atlas) Levels() []*world.Level {
	return append([]*world.Level(nil), a.levels...)
}

// LevelWidth returns the width of a single level.
func (a *Atlas) LevelWidth() int { return a.width }

// Width returns the combined side-by-side width.
func (a *Atlas) Width() int { return a.width * len(a.levels) }

// Height returns the shared level height.
func (a *Atlas) Height() int { return a.height }

// locate maps a combined column to a level and a column within it.
// Columns outside the combined width land in the first or last band.
func (a *Atlas) locate(col int) (*world.Level, int) {
	band := 0
	if col >= 0 {
		band = min(col/a.width, len(a.levels)-1)
	}
	return a.levels[band], col - band*a.width
}

// At reads a cell in the combined coordinate space.
func (a *Atlas) At(row, col int) bool {
	level, local := a.locate(col)
	return level.At(row, local)
}

// Set writes a cell in the combined coordinate space.
func (a *Atlas) Set(row, col int, wall bool) {
	level, local := a.locate(col)
	level.Set(row, local, wall)
}

// Lines renders the atlas in the given layout.
func (a *Atlas) Lines(layout Layout) []string {
	if layout == LayoutSideBySide {
		return a.sideBySide()
	}
	return a.stacked()
}

// Render joins Lines with newlines.
func (a *Atlas) Render(layout Layout) string {
	return strings.Join(a.Lines(layout), "\n")
}

func (a *Atlas) stacked() []string {
	lines := make([]string, 0, a.height*len(a.levels))
	for i := len(a.levels) - 1; i >= 0; i-- {
		lines = append(lines, a.levels[i].Lines()...)
	}
	return lines
}

func (a *Atlas) sideBySide() []string {
	rendered := make([][]string, len(a.levels))
	for i, l := range a.levels {
		rendered[i] = l.Lines()
	}

	lines := make([]string, a.height)
	var sb strings.Builder
	for row := range lines {
		sb.Reset()
		for _, level := range rendered {
			sb.WriteString(level[row])
		}
		lines[row] = sb.String()
	}
	return lines
}
