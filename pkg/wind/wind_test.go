package wind

import (
	"github.com/willbeason/vermont/pkg/tree"
	"math"
	"reflect"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Frames = 48
	cfg.WarmupCycles = 2
	cfg.StepsPerFrame = 10
	return cfg
}

func TestSwayIsDeterministic(t *testing.T) {
	a := NewSway(testConfig())
	b := NewSway(testConfig())
	if !reflect.DeepEqual(a.Offsets, b.Offsets) {
		t.Error("same configuration produced different breezes")
	}
}

func TestSwayIsNormalized(t *testing.T) {
	s := NewSway(testConfig())
	if len(s.Offsets) != 48 {
		t.Fatalf("got %d offsets, want 48", len(s.Offsets))
	}
	peak := 0.0
	for i, o := range s.Offsets {
		if math.Abs(o) > 1+1e-9 {
			t.Fatalf("offset %d = %v outside [-1, 1]", i, o)
		}
		peak = math.Max(peak, math.Abs(o))
	}
	if math.Abs(peak-1) > 1e-9 {
		t.Errorf("peak offset %v, want 1", peak)
	}
}

func TestSwayMovesEveryFewFrames(t *testing.T) {
	s := NewSway(testConfig())
	moving := 0
	for _, o := range s.Offsets {
		if math.IsNaN(o) {
			t.Fatal("breeze diverged")
		}
		if o != 0 {
			moving++
		}
	}
	if moving < len(s.Offsets)/2 {
		t.Errorf("only %d of %d frames move", moving, len(s.Offsets))
	}
	if s.Offsets[0] == s.Offsets[1] {
		t.Errorf("consecutive frames share offset %v", s.Offsets[0])
	}
}

func TestSwayDegenerateConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 0
	s := NewSway(cfg)
	if s.Offset(3) != 0 {
		t.Errorf("empty sway moved leaves")
	}
}

func TestApplyLeavesInputAlone(t *testing.T) {
	s := &Sway{Offsets: []float64{1, -1}, Amplitude: 2}
	leaves := []tree.Leaf{
		{X: 10, Y: 10, MovementFactor: 0.5, MovementDirection: 0},
		{X: 20, Y: 20, MovementFactor: 0.8, MovementDirection: math.Pi / 2, Fallen: true},
	}
	before := append([]tree.Leaf(nil), leaves...)

	moved := s.Apply(leaves, 0)
	if !reflect.DeepEqual(before, leaves) {
		t.Fatal("Apply changed its input")
	}
	if moved[0].X != 11 || moved[0].Y != 10 {
		t.Errorf("leaf moved to (%v, %v), want (11, 10)", moved[0].X, moved[0].Y)
	}
	if moved[1] != leaves[1] {
		t.Errorf("fallen leaf moved")
	}

	back := s.Apply(leaves, 3)
	if back[0].X != 9 {
		t.Errorf("frame 3 wraps to offset -1; leaf at x=%v, want 9", back[0].X)
	}
}
