package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/atlas"
	"github.com/samdwyer/cavegen/internal/presets"
)

// RegenerateFunc builds a fresh atlas for the viewer's 'r' key.
type RegenerateFunc func(ctx context.Context) (*atlas.Atlas, error)

// Viewer is an interactive, scrollable terminal view of an atlas.
type Viewer struct {
	screen     *Screen
	renderer   *Renderer
	atlas      *atlas.Atlas
	layout     atlas.Layout
	regenerate RegenerateFunc
	offsetX    int
	offsetY    int
	message    string
	running    bool
}

// NewViewer creates a viewer. regenerate may be nil.
func NewViewer(screen *Screen, a *atlas.Atlas, layout atlas.Layout, palette presets.Palette, regenerate RegenerateFunc) *Viewer {
	return &Viewer{
		screen:     screen,
		renderer:   NewRenderer(screen, palette),
		atlas:      a,
		layout:     layout,
		regenerate: regenerate,
		running:    true,
	}
}

// Run executes the input loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	for v.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.Draw()
		v.handleInput(ctx)
	}
	return nil
}

// Atlas returns the atlas currently shown, which changes on regeneration.
func (v *Viewer) Atlas() *atlas.Atlas {
	return v.atlas
}

// Draw renders the current view.
func (v *Viewer) Draw() {
	v.renderer.Render(v.lines(), v.offsetX, v.offsetY, v.status())
}

func (v *Viewer) lines() []string {
	return v.atlas.Lines(v.layout)
}

func (v *Viewer) status() string {
	if v.message != "" {
		return v.message
	}
	return fmt.Sprintf(" %d levels %s | arrows scroll, tab layout, r regenerate, q quit ",
		len(v.atlas.Levels()), v.layout)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
		v.scroll(0, 0)
	case nil:
		v.running = false
	}
}

// handleKey processes keyboard input.
func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, ch rune) {
	v.message = ""
	_, height := v.screen.Size()
	page := max(height-1, 1)

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyPgUp:
		v.scroll(0, -page)
	case tcell.KeyPgDn:
		v.scroll(0, page)
	case tcell.KeyHome:
		v.offsetX, v.offsetY = 0, 0
	case tcell.KeyTab:
		v.toggleLayout()
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerateAtlas(ctx)
		}
	}
}

func (v *Viewer) toggleLayout() {
	if v.layout == atlas.LayoutStacked {
		v.layout = atlas.LayoutSideBySide
	} else {
		v.layout = atlas.LayoutStacked
	}
	v.scroll(0, 0)
}

func (v *Viewer) regenerateAtlas(ctx context.Context) {
	if v.regenerate == nil {
		return
	}
	a, err := v.regenerate(ctx)
	if err != nil {
		v.message = " regenerate failed: " + err.Error()
		return
	}
	v.atlas = a
	v.offsetX, v.offsetY = 0, 0
}

// scroll moves the view, keeping it inside the map.
func (v *Viewer) scroll(dx, dy int) {
	lines := v.lines()
	width, height := v.screen.Size()

	mapWidth := 0
	if len(lines) > 0 {
		mapWidth = len(lines[0])
	}
	maxX := max(mapWidth-width, 0)
	maxY := max(len(lines)-(height-1), 0)

	v.offsetX = min(max(v.offsetX+dx, 0), maxX)
	v.offsetY = min(max(v.offsetY+dy, 0), maxY)
}
