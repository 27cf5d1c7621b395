package presets

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavegen/internal/world"
)

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 4 {
		t.Errorf("Expected 4 presets, got %d", registry.Count())
	}

	classic := registry.GetByID(DefaultID)
	if classic == nil {
		t.Fatal("Default preset not found")
	}
	if classic.Width != 79 || classic.Height != 30 || classic.Levels != 4 {
		t.Errorf("Classic preset = %dx%d x%d, want 79x30 x4", classic.Width, classic.Height, classic.Levels)
	}

	if registry.GetByID("missing") != nil {
		t.Error("Expected nil for unknown preset")
	}

	ids := registry.IDs()
	want := []string{"classic", "legacy", "small", "wide"}
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLegacyPresetIsUnbounded(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	legacy := registry.GetByID("legacy")
	if legacy == nil {
		t.Fatal("legacy preset not found")
	}
	if legacy.Options().MaxAttempts != 0 {
		t.Errorf("legacy MaxAttempts = %d, want 0", legacy.Options().MaxAttempts)
	}
}

func TestPresetOptions(t *testing.T) {
	p := Preset{ID: "x", Width: 12, Height: 8, Levels: 1, WallProbability: 0.5, MaxAttempts: 3}
	want := world.Options{Width: 12, Height: 8, WallProbability: 0.5, MaxAttempts: 3}
	got := p.Options()
	if got.Width != want.Width || got.Height != want.Height ||
		got.WallProbability != want.WallProbability || got.MaxAttempts != want.MaxAttempts {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}
}

func TestNewRegistryRejectsBadPresets(t *testing.T) {
	bad := [][]Preset{
		{{ID: "", Width: 1, Height: 1, Levels: 1, WallProbability: 0.4}},
		{{ID: "a", Width: 0, Height: 1, Levels: 1, WallProbability: 0.4}},
		{{ID: "a", Width: 1, Height: 1, Levels: 0, WallProbability: 0.4}},
		{{ID: "a", Width: 1, Height: 1, Levels: 1, WallProbability: 1.5}},
		{{ID: "a", Width: 1, Height: 1, Levels: 1, WallProbability: 0.4, MaxAttempts: -1}},
		{
			{ID: "a", Width: 1, Height: 1, Levels: 1, WallProbability: 0.4},
			{ID: "a", Width: 2, Height: 2, Levels: 1, WallProbability: 0.4},
		},
	}
	for i, presets := range bad {
		if _, err := NewRegistry(presets); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[[]Preset]("nope.json"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input    string
		expected tcell.Color
		wantErr  bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), false},
		{"00ff7f", tcell.NewRGBColor(0, 255, 127), false},
		{"#FFF", tcell.ColorDefault, true},
		{"#GG0000", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestPresetPalette(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	classic := registry.GetByID("classic").Palette()
	if classic.Wall != tcell.NewRGBColor(0x5A, 0x5A, 0x5A) {
		t.Errorf("classic wall color = %v", classic.Wall)
	}

	if got := registry.GetByID("small").Palette(); got != DefaultPalette {
		t.Errorf("small palette = %+v, want default", got)
	}
}

func TestValidateRejectsBadColor(t *testing.T) {
	p := Preset{ID: "a", Width: 1, Height: 1, Levels: 1, WallProbability: 0.4, WallColor: "red"}
	if err := p.Validate(); err == nil {
		t.Error("Expected error for bad wall color")
	}
}
