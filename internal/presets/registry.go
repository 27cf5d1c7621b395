package presets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samdwyer/cavegen/internal/world"
)

// DefaultID is the preset used when none is configured.
const DefaultID = "classic"

// Preset is a named set of generation parameters.
type Preset struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Levels          int     `json:"levels"`
	WallProbability float64 `json:"wallProbability"`
	MaxAttempts     int     `json:"maxAttempts"` // 0 = retry forever
	WallColor       string  `json:"wallColor,omitempty"`
	FloorColor      string  `json:"floorColor,omitempty"`
}

// Validate checks that the preset describes a usable generation.
func (p Preset) Validate() error {
	switch {
	case p.ID == "":
		return errors.New("preset has no id")
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("preset %s: dimensions %dx%d must be positive", p.ID, p.Width, p.Height)
	case p.Levels <= 0:
		return fmt.Errorf("preset %s: level count %d must be positive", p.ID, p.Levels)
	case p.WallProbability <= 0 || p.WallProbability > 1:
		return fmt.Errorf("preset %s: wall probability %v out of (0, 1]", p.ID, p.WallProbability)
	case p.MaxAttempts < 0:
		return fmt.Errorf("preset %s: max attempts %d is negative", p.ID, p.MaxAttempts)
	}
	for _, hex := range []string{p.WallColor, p.FloorColor} {
		if hex == "" {
			continue
		}
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("preset %s: %w", p.ID, err)
		}
	}
	return nil
}

// Options converts the preset into generator options.
func (p Preset) Options() world.Options {
	return world.Options{
		Width:           p.Width,
		Height:          p.Height,
		WallProbability: p.WallProbability,
		MaxAttempts:     p.MaxAttempts,
	}
}

// Registry holds loaded presets keyed by id.
type Registry struct {
	presets map[string]*Preset
	all     []Preset
}

// LoadPresets loads all presets from the embedded presets.json.
func LoadPresets() ([]Preset, error) {
	return Load[[]Preset]("presets.json")
}

// NewRegistry creates a registry, rejecting invalid or duplicate presets.
func NewRegistry(presets []Preset) (*Registry, error) {
	r := &Registry{
		presets: make(map[string]*Preset),
		all:     presets,
	}
	for i := range presets {
		if err := presets[i].Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.presets[presets[i].ID]; dup {
			return nil, fmt.Errorf("duplicate preset id %q", presets[i].ID)
		}
		r.presets[presets[i].ID] = &presets[i]
	}
	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded presets.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets)
}

// GetByID returns the preset with the given id, or nil if not found.
func (r *Registry) GetByID(id string) *Preset {
	return r.presets[id]
}

// IDs returns all preset ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.presets))
	for id := range r.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
