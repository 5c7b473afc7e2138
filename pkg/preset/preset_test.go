package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinPresetsValidate(t *testing.T) {
	for _, name := range Names() {
		l, err := Named(name)
		if err != nil {
			t.Fatalf("Named(%q): %v", name, err)
		}
		if err := l.Validate(); err != nil {
			t.Errorf("preset %q does not validate: %v", name, err)
		}
	}
}

func TestNamedReturnsFreshCopies(t *testing.T) {
	a, _ := Named("vermont")
	a.Layers[0].Count = 99
	b, _ := Named("vermont")
	if b.Layers[0].Count == 99 {
		t.Error("changing one copy of a preset changed another")
	}
}

func TestNamedUnknown(t *testing.T) {
	if _, err := Named("mars"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestParseOverridesBase(t *testing.T) {
	l, err := Parse([]byte(`
base: vermont-night
width: 800
stars:
  count: 10
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Width != 800 || l.Height != 600 {
		t.Errorf("canvas %dx%d, want 800x600", l.Width, l.Height)
	}
	if l.TimeOfDay != Night {
		t.Errorf("time of day %q, want night from the base", l.TimeOfDay)
	}
	if l.Stars.Count != 10 || l.Stars.Radius.Max != 1 {
		t.Errorf("stars %+v, want count overridden and radius kept", l.Stars)
	}
	if len(l.Layers) != 4 {
		t.Errorf("got %d layers, want the base's 4", len(l.Layers))
	}
}

func TestParseDefaultsToVermont(t *testing.T) {
	l, err := Parse([]byte("name: mine\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.Name != "mine" || l.Width != 1000 {
		t.Errorf("got %q %d wide", l.Name, l.Width)
	}
}

func TestParseRejectsBadScenes(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
	}{
		{"unknown base", "base: mars\n"},
		{"bad canvas", "width: 0\n"},
		{"bad time", "timeOfDay: dusk\n"},
		{"bad season", "season: monsoon\n"},
		{"bad foliage", "layers:\n- name: x\n  rows: 5\n  foliage: [purple]\n"},
		{"bad rows", "layers:\n- name: x\n  count: 1\n"},
		{"bad forest", "forest:\n  shape: bumpy\n"},
		{"bad stars", "timeOfDay: night\nstars:\n  count: -3\n"},
		{"not yaml", "width: [\n"},
	} {
		if _, err := Parse([]byte(tc.yaml)); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestValidateWrapsCanvasError(t *testing.T) {
	l := Landscape{Width: -1, Height: 10}
	if err := l.Validate(); !errors.Is(err, ErrCanvas) {
		t.Errorf("got %v, want ErrCanvas", err)
	}
}

func TestValidateClamps(t *testing.T) {
	l, _ := Named("vermont")
	l.DayFill.Max = 3
	l.Texture.Strength = -1
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	if l.DayFill.Max != 1 || l.Texture.Strength != 0 {
		t.Errorf("dayFill %v strength %v not clamped", l.DayFill, l.Texture.Strength)
	}
}

func TestWriteThenLoad(t *testing.T) {
	l, _ := Named("forest-concave")
	path := filepath.Join(t.TempDir(), "scenes", "concave.yaml")
	if err := Write(path, l); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Forest == nil || got.Forest.Shape != l.Forest.Shape || got.Forest.Columns != l.Forest.Columns {
		t.Errorf("forest did not survive the round trip: %+v", got.Forest)
	}
	if len(got.Layers) != len(l.Layers) {
		t.Errorf("got %d layers, want %d", len(got.Layers), len(l.Layers))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/scene.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadStreetOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "street.yaml")
	data := "width: 300\nmain: {h: 200, s: 50, l: 50, a: 1}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStreet(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != 300 || s.Main.H != 200 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.Height != 600 || s.Bottom != 25 {
		t.Errorf("defaults lost: height %v bottom %v", s.Height, s.Bottom)
	}

	if _, err := LoadStreet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}
}

func TestLoadFrameDefault(t *testing.T) {
	f, err := LoadFrame("")
	if err != nil {
		t.Fatal(err)
	}
	if f.TrimChance != 0.3 || f.InnerWidth != 600 {
		t.Errorf("default frame %+v", f)
	}
}
