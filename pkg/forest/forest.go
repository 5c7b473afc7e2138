package forest

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/tree"
	"math"
)

// Shape is the silhouette a forest's tree tops trace across its columns.
type Shape string

const (
	Convex   Shape = "convex"
	Concave  Shape = "concave"
	Flat     Shape = "flat"
	UpHill   Shape = "upHill"
	DownHill Shape = "downHill"
)

var Shapes = []Shape{Convex, Concave, Flat, UpHill, DownHill}

// ParseShape validates a shape name.
func ParseShape(s string) (Shape, error) {
	for _, shape := range Shapes {
		if string(shape) == s {
			return shape, nil
		}
	}
	return "", fmt.Errorf("unknown forest shape %q", s)
}

// ColumnShape returns how far apart the trees in column col are stacked and
// how many there are. height is the forest height and minTreeHeight the
// shortest tree. A column holds one tree per increment of its height plus the
// tree on the ground, and never fewer than two unless the increment is zero.
func ColumnShape(shape Shape, col, cols int, height, minTreeHeight float64) (increment float64, count int) {
	increment = minTreeHeight / 2

	var columnHeight float64
	switch shape {
	case Convex, Concave:
		center := float64(cols-1) / 2
		if center <= 0 {
			columnHeight = height
			break
		}
		t := math.Abs(float64(col)-center) / center
		if shape == Convex {
			columnHeight = height * t * t
		} else {
			columnHeight = height * (1 - t*t)
		}
	case UpHill, DownHill:
		if cols <= 1 {
			columnHeight = height
			break
		}
		t := float64(col) / float64(cols-1)
		if shape == UpHill {
			columnHeight = height * t
		} else {
			columnHeight = height * (1 - t)
		}
	case Flat:
		columnHeight = height
	}

	if increment <= 0 {
		return increment, 1
	}
	return increment, int(math.Max(1, columnHeight/increment)) + 1
}

// Settings lays out a forest of overlapping trees.
type Settings struct {
	Shape Shape `yaml:"shape"`

	// Start is the bottom-left of the forest on the ground line.
	Start  geometry.XY `yaml:"start"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`

	Columns int `yaml:"columns"`

	TreeHeight     geometry.Range `yaml:"treeHeight"`
	TreeWidth      geometry.Range `yaml:"treeWidth"`
	TrunkHeight    geometry.Range `yaml:"trunkHeight"`
	TrunkWidth     geometry.Range `yaml:"trunkWidth"`
	TrunkSegments  int            `yaml:"trunkSegments"`
	PointsPerRow   int            `yaml:"pointsPerRow"`
	LeavesPerPoint geometry.Range `yaml:"leavesPerPoint"`
	LeafWidth      geometry.Range `yaml:"leafWidth"`
	LeafHeight     geometry.Range `yaml:"leafHeight"`
	BoundaryRadius geometry.Range `yaml:"boundaryRadius"`

	// Jitter moves each column sideways by up to this much.
	Jitter float64 `yaml:"jitter"`

	Decay *tree.Decay `yaml:"decay"`
	Light *tree.Light `yaml:"light"`

	Fills         palette.ColorFunc `yaml:"-"`
	FillsSunlight palette.ColorFunc `yaml:"-"`
}

// Generate builds the forest column by column, back trees first, so drawing
// the result in order puts the lowest tree of each column in front.
func Generate(src rng.Source, s Settings) []*tree.Tree {
	if s.Columns < 1 {
		return nil
	}

	var trees []*tree.Tree
	for i := 0; i < s.Columns; i++ {
		treeWidth := rng.Between(src, s.TreeWidth)
		increment, count := ColumnShape(s.Shape, i, s.Columns, s.Height, s.TreeHeight.Lo())
		x := s.Start.X + treeWidth + 20 + float64(i)*((s.Width+treeWidth)/float64(s.Columns)) + src.Uniform(-s.Jitter, s.Jitter)

		column := make([]*tree.Tree, 0, count)
		for j := 0; j < count; j++ {
			start := geometry.XY{X: x, Y: s.Start.Y - increment*float64(j)}
			column = append(column, s.newTree(src, start, treeWidth, j > 0))
		}
		for j := len(column) - 1; j >= 0; j-- {
			trees = append(trees, column[j])
		}
	}
	return trees
}

func (s Settings) newTree(src rng.Source, start geometry.XY, width float64, hideTrunk bool) *tree.Tree {
	height := rng.Between(src, s.TreeHeight)
	return tree.New(src, tree.Config{
		Start:          start,
		Midpoint:       geometry.XY{X: start.X, Y: start.Y - height/2},
		Bulge:          geometry.XY{X: start.X, Y: start.Y - height/3},
		TreeHeight:     height,
		TreeWidth:      width,
		TrunkHeight:    rng.Between(src, s.TrunkHeight),
		TrunkWidth:     rng.Between(src, s.TrunkWidth),
		TrunkSegments:  s.TrunkSegments,
		HideTrunk:      hideTrunk,
		LeavesStartY:   start.Y,
		RowHeight:      height / 5,
		PointsPerRow:   s.PointsPerRow,
		LeavesPerPoint: int(rng.Between(src, s.LeavesPerPoint)),
		Decay:          s.Decay,
		LeafWidth:      s.LeafWidth,
		LeafHeight:     s.LeafHeight,
		BoundaryRadius: s.BoundaryRadius,
		Fills:          s.Fills,
		FillsSunlight:  s.FillsSunlight,
		Light:          s.Light,
		DropFallen:     true,
	})
}
