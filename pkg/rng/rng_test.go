package rng

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"testing"
)

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Uniform(-3, 7), b.Uniform(-3, 7)
		if va != vb {
			t.Fatalf("draw %d differs: %v != %v", i, va, vb)
		}
	}
}

func TestUniformWithinBounds(t *testing.T) {
	src := New(1)
	for i := 0; i < 1000; i++ {
		v := src.Uniform(10, 2)
		if v < 2 || v > 10 {
			t.Fatalf("swapped bounds produced %v outside [2, 10]", v)
		}
		w := Between(src, geometry.Range{Min: -1, Max: 1})
		if w < -1 || w > 1 {
			t.Fatalf("Between produced %v outside [-1, 1]", w)
		}
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := IntBetween(src, 4, 8)
		if v < 4 || v > 8 {
			t.Fatalf("IntBetween(4, 8) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values to appear, saw %v", seen)
	}
}

func TestChoice(t *testing.T) {
	src := New(3)
	if got := Choice[int](src, nil); got != 0 {
		t.Errorf("Choice of empty slice = %d, want zero value", got)
	}
	items := []string{"door", "window"}
	for i := 0; i < 50; i++ {
		got := Choice(src, items)
		if got != "door" && got != "window" {
			t.Fatalf("Choice returned %q", got)
		}
	}
}

func TestIntnNonPositive(t *testing.T) {
	if got := New(1).Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
}
