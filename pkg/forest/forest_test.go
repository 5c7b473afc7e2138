package forest

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/rng"
	"testing"
)

func TestColumnShape(t *testing.T) {
	for _, tc := range []struct {
		shape    Shape
		col      int
		wantMore int
		wantLess int
	}{
		// Convex forests are tallest at the edges.
		{Convex, 0, 0, 4},
		// Concave forests are tallest in the middle.
		{Concave, 4, 4, 0},
		{UpHill, 8, 8, 0},
		{DownHill, 0, 0, 8},
	} {
		_, more := ColumnShape(tc.shape, tc.wantMore, 9, 200, 50)
		_, less := ColumnShape(tc.shape, tc.wantLess, 9, 200, 50)
		if more <= less {
			t.Errorf("%s: column %d has %d trees, column %d has %d", tc.shape, tc.wantMore, more, tc.wantLess, less)
		}
	}
}

func TestColumnShapeAtLeastOneTree(t *testing.T) {
	for _, shape := range Shapes {
		for col := 0; col < 5; col++ {
			inc, n := ColumnShape(shape, col, 5, 200, 50)
			if n < 1 {
				t.Errorf("%s column %d has no trees", shape, col)
			}
			if inc != 25 {
				t.Errorf("%s increment %v, want 25", shape, inc)
			}
		}
	}
	if _, n := ColumnShape(Flat, 0, 1, 200, 0); n != 1 {
		t.Errorf("zero tree height gave %d trees", n)
	}
}

func TestColumnShapeCounts(t *testing.T) {
	for _, tc := range []struct {
		shape Shape
		col   int
		cols  int
		want  int
	}{
		// 200 high in steps of 50: four steps plus the ground tree.
		{Flat, 0, 3, 5},
		// A single column is full height whatever the shape.
		{Convex, 0, 1, 5},
		{Concave, 0, 1, 5},
		{UpHill, 0, 1, 5},
		{DownHill, 0, 1, 5},
		// Zero height still stacks one tree above the ground tree.
		{Convex, 2, 5, 2},
		{UpHill, 0, 5, 2},
		// Quarter height: one step.
		{UpHill, 1, 5, 2},
		{Concave, 2, 5, 5},
	} {
		if _, n := ColumnShape(tc.shape, tc.col, tc.cols, 200, 100); n != tc.want {
			t.Errorf("%s column %d of %d: got %d trees, want %d", tc.shape, tc.col, tc.cols, n, tc.want)
		}
	}
}

func TestParseShape(t *testing.T) {
	if s, err := ParseShape("upHill"); err != nil || s != UpHill {
		t.Errorf("ParseShape(upHill) = %q, %v", s, err)
	}
	if _, err := ParseShape("bumpy"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func testSettings() Settings {
	return Settings{
		Shape:          Concave,
		Start:          geometry.XY{X: 0, Y: 400},
		Width:          600,
		Height:         100,
		Columns:        6,
		TreeHeight:     geometry.Range{Min: 60, Max: 80},
		TreeWidth:      geometry.Range{Min: 30, Max: 40},
		TrunkHeight:    geometry.Range{Min: 20, Max: 30},
		TrunkWidth:     geometry.Range{Min: 10, Max: 15},
		TrunkSegments:  3,
		PointsPerRow:   3,
		LeavesPerPoint: geometry.Range{Min: 10, Max: 20},
		LeafWidth:      geometry.Range{Min: 1, Max: 2},
		LeafHeight:     geometry.Range{Min: 2, Max: 3},
		BoundaryRadius: geometry.Range{Min: 10, Max: 15},
		Jitter:         25,
	}
}

func TestGenerateOnlyFrontTreesHaveTrunks(t *testing.T) {
	s := testSettings()
	trees := Generate(rng.New(7), s)

	total := 0
	for col := 0; col < s.Columns; col++ {
		_, n := ColumnShape(s.Shape, col, s.Columns, s.Height, s.TreeHeight.Lo())
		total += n
	}
	if len(trees) != total {
		t.Fatalf("got %d trees, want %d", len(trees), total)
	}

	trunks := 0
	for _, tr := range trees {
		if len(tr.TrunkLines) > 0 {
			trunks++
			if tr.Start.Y != s.Start.Y {
				t.Errorf("trunked tree stands at y=%v, not on the ground", tr.Start.Y)
			}
		}
		for _, l := range tr.Leaves {
			if l.Fallen {
				t.Fatal("forest tree kept a fallen leaf")
			}
		}
	}
	if trunks != s.Columns {
		t.Errorf("%d trees have trunks, want one per column (%d)", trunks, s.Columns)
	}
}

func TestGenerateNoColumns(t *testing.T) {
	s := testSettings()
	s.Columns = 0
	if got := Generate(rng.New(1), s); got != nil {
		t.Errorf("zero columns produced %d trees", len(got))
	}
}
