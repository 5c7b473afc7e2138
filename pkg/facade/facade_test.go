package facade

import (
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"gopkg.in/yaml.v3"
	"math"
	"testing"
)

var orange = palette.New(23, 100, 54)

func TestSingleFloorThreeColumns(t *testing.T) {
	src := rng.New(1)
	configs := []FloorConfig{{Proportion: 1, Min: 0, Max: 9999, Columns: []int{3}, Content: []Content{Window}}}

	floors := GenerateFloors(src, 10, 400, 240, 300, configs, orange)
	if len(floors) != 1 {
		t.Fatalf("got %d floors, want 1", len(floors))
	}
	f := floors[0]
	if f.H != 300 || f.Y != 100 {
		t.Errorf("floor spans y=%v h=%v, want y=100 h=300", f.Y, f.H)
	}
	if len(f.Sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(f.Sections))
	}

	sum := 0.0
	for _, s := range f.Sections {
		sum += s.W
	}
	if math.Abs(sum-f.W) > 1e-9 {
		t.Errorf("section widths sum to %v, want %v", sum, f.W)
	}
}

func TestSectionWidthsAlwaysSumToFloor(t *testing.T) {
	src := rng.New(7)
	for i := 0; i < 500; i++ {
		numCols := 1 + i%7
		w := src.Uniform(1, 700)
		sections := GenerateSections(src, 3, 0, w, 50, numCols, []Content{Window, Circle}, orange)
		if len(sections) != numCols {
			t.Fatalf("got %d sections, want %d", len(sections), numCols)
		}

		x := 3.0
		for _, s := range sections {
			if s.W < 0 {
				t.Fatalf("negative section width %v", s.W)
			}
			if math.Abs(s.X-x) > 1e-9 {
				t.Fatalf("section starts at %v, want %v", s.X, x)
			}
			x += s.W
		}
		if math.Abs(x-(3+w)) > 1e-9 {
			t.Fatalf("sections end at %v, want %v", x, 3+w)
		}
	}
}

func TestProportionsSpendTheBudget(t *testing.T) {
	src := rng.New(3)
	for numCols := 1; numCols < 10; numCols++ {
		weights := Proportions(src, numCols)
		sum := 0
		for _, w := range weights {
			if w < 0 {
				t.Fatalf("negative weight in %v", weights)
			}
			sum += w
		}
		if len(weights) != numCols || sum != numCols {
			t.Errorf("Proportions(%d) = %v", numCols, weights)
		}
	}
	if Proportions(src, 0) != nil {
		t.Error("zero columns should have no weights")
	}
}

func TestFloorsClampAndStack(t *testing.T) {
	src := rng.New(1)
	configs := []FloorConfig{
		{Proportion: 1, Min: 0, Max: 50},
		{Proportion: 1, Min: 200, Max: 300},
		{Proportion: 0, Min: 20, Max: 40},
	}
	floors := GenerateFloors(src, 0, 500, 100, 200, configs, orange)
	want := []float64{50, 200, 20}
	y := 500.0
	for i, f := range floors {
		if f.H != want[i] {
			t.Errorf("floor %d has height %v, want %v", i, f.H, want[i])
		}
		y -= want[i]
		if f.Y != y {
			t.Errorf("floor %d starts at %v, want %v", i, f.Y, y)
		}
	}
}

func TestZeroProportionsHaveNoFloors(t *testing.T) {
	floors := GenerateFloors(rng.New(1), 0, 0, 100, 100, []FloorConfig{{Max: 10}}, orange)
	if floors != nil {
		t.Errorf("got %d floors, want none", len(floors))
	}
}

func TestDetailsStayInSection(t *testing.T) {
	src := rng.New(11)
	home := NewRowhome(src, 50, 575, 300, 400, orange, DefaultFloors(src))
	for _, s := range home.Sections() {
		if s.Empty() {
			if !s.Detail.Empty() {
				t.Errorf("empty section %+v has detail %+v", s.Rect, s.Detail)
			}
			continue
		}
		d := s.Detail
		if d.Empty() {
			continue
		}
		if d.X < s.X-1e-9 || d.Y < s.Y-1e-9 || d.X+d.W > s.X+s.W+1e-9 || d.Y+d.H > s.Y+s.H+1e-9 {
			t.Errorf("%v detail %+v escapes section %+v", s.Content, d, s.Rect)
		}
		if s.Content == Door && math.Abs(d.Y+d.H-(s.Y+s.H)) > 1e-9 {
			t.Errorf("door %+v does not stand on the floor of %+v", d, s.Rect)
		}
	}
}

func TestHatchesStayInSection(t *testing.T) {
	src := rng.New(2)
	home := NewRowhome(src, 0, 300, 200, 250, orange, DefaultFloors(src))
	home.Hatch(src, DefaultHatching())

	n := 0
	for _, s := range home.Sections() {
		for _, stroke := range s.Hatches {
			n++
			for _, p := range stroke {
				if p.X < s.X || p.X > s.X+s.W || p.Y < s.Y || p.Y > s.Y+s.H {
					t.Fatalf("hatch point %v outside %+v", p, s.Rect)
				}
			}
		}
	}
	if n == 0 {
		t.Error("no hatching generated")
	}
}

func TestContentYAML(t *testing.T) {
	var cfg FloorConfig
	if err := yaml.Unmarshal([]byte("content: [door, circle]\nmax: 10\n"), &cfg); err != nil {
		t.Fatal(err)
	}
	if len(cfg.Content) != 2 || cfg.Content[0] != Door || cfg.Content[1] != Circle {
		t.Errorf("decoded %v", cfg.Content)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var back FloorConfig
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatal(err)
	}
	if back.Content[1] != Circle {
		t.Errorf("round trip gave %v", back.Content)
	}

	if err := yaml.Unmarshal([]byte("content: [chimney]\n"), &cfg); err == nil {
		t.Error("unknown content accepted")
	}
}

func TestStreetCoversCanvas(t *testing.T) {
	cfg := DefaultStreet()
	s := NewStreet(rng.New(5), cfg)

	if len(s.Homes) < 1 {
		t.Fatal("no homes")
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range s.Homes {
		lo = math.Min(lo, h.X)
		hi = math.Max(hi, h.X+h.W)
		if math.Abs(h.Y+h.H-(cfg.Height-cfg.Bottom)) > 1e-9 {
			t.Errorf("home %+v does not stand on the sidewalk", h.Rect)
		}
	}
	if lo > 0 || hi < cfg.Width {
		t.Errorf("homes span [%v, %v], canvas is [0, %v]", lo, hi, cfg.Width)
	}
	if len(s.Trees) < 1 || len(s.Trees) > 2 {
		t.Errorf("got %d trees, want 1 or 2", len(s.Trees))
	}
	if s.Sidewalk.H != cfg.Bottom {
		t.Errorf("sidewalk %+v", s.Sidewalk)
	}
}
