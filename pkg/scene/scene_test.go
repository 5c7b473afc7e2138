package scene

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/rng"
	"math"
	"reflect"
	"testing"
)

// small is the vermont preset with every layer cut down to a single sparse tree.
func small(t *testing.T, tod preset.TimeOfDay) preset.Landscape {
	t.Helper()
	l, err := preset.Named("vermont")
	if err != nil {
		t.Fatal(err)
	}
	l.TimeOfDay = tod
	for i := range l.Layers {
		l.Layers[i].Count = 1
		l.Layers[i].LeavesPerPoint = geometry.Range{Min: 5, Max: 10}
	}
	l.Stars.Count = 20
	return l
}

func TestBuildNight(t *testing.T) {
	l := small(t, preset.Night)
	s := Build(rng.New(3), l)

	if !s.Night || s.Moon == nil || len(s.Stars) != 20 {
		t.Fatalf("night scene has night=%v moon=%v stars=%d", s.Night, s.Moon, len(s.Stars))
	}
	if s.Sky != l.Sky.Night || s.Lake == nil || s.Lake.Color != l.Lake.Night {
		t.Errorf("night scene uses day colours")
	}
	if s.Horizon != 300 {
		t.Errorf("horizon %v, want 300", s.Horizon)
	}

	wantX := (s.SunAngle - math.Pi) / math.Pi * float64(l.Width)
	if math.Abs(s.Moon.Center.X-wantX) > 1e-9 {
		t.Errorf("moon at x=%v, want %v for sun angle %v", s.Moon.Center.X, wantX, s.SunAngle)
	}
	if !l.Moon.Radius.Contains(s.Moon.Radius) || !l.Moon.Hue.Contains(s.Moon.Color.H) {
		t.Errorf("moon radius %v hue %v out of range", s.Moon.Radius, s.Moon.Color.H)
	}
	if !l.NightFill.Contains(s.SunFill) {
		t.Errorf("sun fill %v outside night range", s.SunFill)
	}
}

func TestBuildNegativeStars(t *testing.T) {
	l := small(t, preset.Night)
	l.Stars.Count = -3
	if s := Build(rng.New(3), l); len(s.Stars) != 0 {
		t.Errorf("got %d stars from a negative count", len(s.Stars))
	}
}

func TestBuildLakeRipples(t *testing.T) {
	l := small(t, preset.Day)
	s := Build(rng.New(5), l)
	if s.Lake == nil {
		t.Fatal("no lake")
	}
	if s.Lake.ShadowHeight != l.Lake.Shadow || s.Lake.Shadow != ShadowDay {
		t.Errorf("shore shadow %v high in %v", s.Lake.ShadowHeight, s.Lake.Shadow)
	}
	if len(s.Lake.Ripples) != l.Lake.Ripples {
		t.Fatalf("got %d ripples, want %d", len(s.Lake.Ripples), l.Lake.Ripples)
	}
	w := float64(s.Width)
	for _, r := range s.Lake.Ripples {
		if r.Center.Y < s.Horizon || r.Center.Y > float64(s.Height) {
			t.Errorf("ripple at y=%v is out of the water", r.Center.Y)
		}
		if r.W < 1.6*w || r.W > 2*w || r.H < 5 || r.H > 80 || r.Blur < 0 || r.Blur > 3 {
			t.Errorf("ripple %+v", r)
		}
	}

	l.Lake.Ripples = -2
	if s := Build(rng.New(5), l); len(s.Lake.Ripples) != 0 {
		t.Errorf("negative ripple count gave %d ripples", len(s.Lake.Ripples))
	}
}

func TestBuildDay(t *testing.T) {
	s := Build(rng.New(3), small(t, preset.Day))
	if s.Night || s.Moon != nil || len(s.Stars) != 0 {
		t.Errorf("day scene has night=%v moon=%v stars=%d", s.Night, s.Moon, len(s.Stars))
	}
	if s.SunAngle < 200*math.Pi/180 || s.SunAngle > 340*math.Pi/180 {
		t.Errorf("sun angle %v out of range", s.SunAngle)
	}
}

func TestBuildLayersBackToFront(t *testing.T) {
	s := Build(rng.New(5), small(t, preset.Day))
	var names []string
	for _, l := range s.Layers {
		names = append(names, l.Name)
		if len(l.Trees) != 1 {
			t.Errorf("layer %s has %d trees", l.Name, len(l.Trees))
		}
	}
	if want := []string{"back", "middle", "front", "lone"}; !reflect.DeepEqual(names, want) {
		t.Errorf("layers %v, want %v", names, want)
	}

	lone := s.Layers[3].Trees[0]
	if lone.Start.X != 500 || lone.Start.Y != s.Horizon {
		t.Errorf("lone tree stands at %v", lone.Start)
	}
	if len(lone.TrunkLines) == 0 {
		t.Error("lone tree has no trunk")
	}
	if len(s.Layers[0].Trees[0].TrunkLines) != 0 {
		t.Error("back tree has a trunk")
	}
	if len(s.Ground) == 0 {
		t.Error("no ground line")
	}
}

func TestBuildForestLayer(t *testing.T) {
	l, _ := preset.Named("forest-convex")
	l.Forest.LeavesPerPoint = geometry.Range{Min: 3, Max: 5}
	l.Forest.Columns = 4
	l.Layers = nil
	s := Build(rng.New(2), l)
	if len(s.Layers) != 1 || s.Layers[0].Name != "forest" || len(s.Layers[0].Trees) == 0 {
		t.Fatalf("forest layer missing: %+v", s.Layers)
	}
	for _, tr := range s.Layers[0].Trees {
		if tr.Start.Y > s.Horizon {
			t.Fatalf("forest tree below the horizon at %v", tr.Start)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	l := small(t, preset.Random)
	a := Build(rng.New(77), l)
	b := Build(rng.New(77), l)
	if a.Night != b.Night || a.Horizon != b.Horizon || a.SunAngle != b.SunAngle {
		t.Fatal("same seed chose different settings")
	}
	if a.LeafCount() != b.LeafCount() {
		t.Fatalf("leaf counts %d and %d differ", a.LeafCount(), b.LeafCount())
	}
	for i := range a.Layers {
		for j := range a.Layers[i].Trees {
			if !reflect.DeepEqual(a.Layers[i].Trees[j].Leaves, b.Layers[i].Trees[j].Leaves) {
				t.Fatalf("layer %d tree %d differs", i, j)
			}
		}
	}
}

func TestReflectedLeavesSceneAlone(t *testing.T) {
	s := Build(rng.New(9), small(t, preset.Day))
	front := s.Layers[2].Trees[0]
	before := front.Leaves[0].Fill

	reflected := s.Reflected()
	// back, middle and front reflect; the lone tree does not.
	if len(reflected) != 3 {
		t.Fatalf("got %d reflected layers, want 3", len(reflected))
	}
	if reflected[2].Name != s.Layers[2].Name || reflected[2].ShowTrunk != s.Layers[2].ShowTrunk {
		t.Errorf("reflected layer %q lost its settings", reflected[2].Name)
	}
	if front.Leaves[0].Fill != before {
		t.Fatal("reflection changed a scene leaf")
	}
	if got := reflected[2].Trees[0].Leaves[0].Fill; got != before.Reflected() {
		t.Errorf("reflected fill %v, want %v", got, before.Reflected())
	}
}
