package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/cavegen/internal/config"
	"github.com/samdwyer/cavegen/internal/world"
)

// Console prints rendered maps to a writer, optionally with ANSI colors.
type Console struct {
	out      io.Writer
	colorize bool
	wall     color.Style
	floor    color.Style
	errStyle color.Style
}

// NewConsole creates a console printer.
func NewConsole(out io.Writer, colorize bool) *Console {
	if colorize {
		color.ForceOpenColor()
	}
	return &Console{
		out:      out,
		colorize: colorize,
		wall:     color.Style{color.FgGray},
		floor:    color.Style{color.FgYellow},
		errStyle: color.Style{color.FgRed, color.OpBold},
	}
}

// ShouldColor decides whether output to out gets colored for the given mode.
// In auto mode only terminals are colored.
func ShouldColor(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := out.(*os.File)
		return ok && f != nil && term.IsTerminal(int(f.Fd()))
	}
}

// PrintLines writes each line followed by a newline.
func (c *Console) PrintLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.out, c.paint(line)); err != nil {
			return err
		}
	}
	return nil
}

// PrintError writes a highlighted error message.
func (c *Console) PrintError(msg string) error {
	if c.colorize {
		msg = c.errStyle.Sprint(msg)
	}
	_, err := fmt.Fprintln(c.out, msg)
	return err
}

// paint colors runs of identical tiles.
func (c *Console) paint(line string) string {
	if !c.colorize || line == "" {
		return line
	}

	var sb strings.Builder
	runes := []rune(line)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && runes[i] == runes[start] {
			continue
		}
		run := string(runes[start:i])
		switch world.Tile(runes[start]) {
		case world.TileWall:
			sb.WriteString(c.wall.Sprint(run))
		case world.TileFloor:
			sb.WriteString(c.floor.Sprint(run))
		default:
			sb.WriteString(run)
		}
		start = i
	}
	return sb.String()
}
