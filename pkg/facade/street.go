package facade

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/tree"
	"log"
)

// StreetConfig describes a block of rowhomes above a sidewalk.
type StreetConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Bottom is the sidewalk's height.
	Bottom float64 `yaml:"bottom"`
	// Gap separates neighbouring homes.
	Gap float64 `yaml:"gap"`

	Background    palette.HSL `yaml:"background"`
	SidewalkColor palette.HSL `yaml:"sidewalk"`
	Main          palette.HSL `yaml:"main"`
	Neighbour     palette.HSL `yaml:"neighbour"`

	// TreeCount is how many street trees to plant; they are drawn in front
	// of the homes.
	TreeCount geometry.Range `yaml:"treeCount"`

	// Hatching shades every section when set.
	Hatching *Hatching `yaml:"hatching,omitempty"`
}

// DefaultStreet is the 600x600 block of orange rowhomes.
func DefaultStreet() StreetConfig {
	h := DefaultHatching()
	return StreetConfig{
		Width:         600,
		Height:        600,
		Bottom:        25,
		Gap:           2,
		Background:    palette.New(183, 52, 88),
		SidewalkColor: palette.New(204, 14, 60),
		Main:          palette.New(23, 100, 54),
		Neighbour:     palette.New(23, 100, 94),
		TreeCount:     geometry.Range{Min: 1, Max: 3},
		Hatching:      &h,
	}
}

// StreetTreeLeaves are the ochres and olives street trees are painted in.
var StreetTreeLeaves = palette.Family{
	Name: "street",
	Swatches: []palette.HSL{
		palette.New(44, 59, 77),
		palette.New(35, 45, 47),
		palette.New(19, 66, 66),
		palette.New(86, 38, 55),
	},
}

// A Street is a finished block: homes, sidewalk and trees.
type Street struct {
	StreetConfig

	Homes []*Rowhome

	Sidewalk geometry.Rect
	// Curb is the rough outline inked around the sidewalk.
	Curb []geometry.Bezier

	Trees []*tree.Tree
}

// NewStreet places a main home in the middle of the canvas and adds
// neighbours on either side until the canvas is covered.
func NewStreet(src rng.Source, cfg StreetConfig) *Street {
	s := &Street{StreetConfig: cfg}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Printf("street %vx%v has no area", cfg.Width, cfg.Height)
		return s
	}

	cw, ch := cfg.Width, cfg.Height
	base := ch - cfg.Bottom
	size := func() (w, h float64) {
		return src.Uniform(ch/6, cw), src.Uniform(ch/3, ch)
	}

	w, h := size()
	x := (cw - w) / 2
	s.Homes = append(s.Homes, NewRowhome(src, x, base, w, h, cfg.Main, DefaultFloors(src)))

	for left := x; left > 0; {
		w, h := size()
		left -= w + cfg.Gap
		s.Homes = append(s.Homes, NewRowhome(src, left, base, w, h, cfg.Neighbour, DefaultFloors(src)))
	}
	for right := x + w; right < cw; {
		w, h := size()
		s.Homes = append(s.Homes, NewRowhome(src, right+cfg.Gap, base, w, h, cfg.Neighbour, DefaultFloors(src)))
		right += cfg.Gap + w
	}

	if cfg.Hatching != nil {
		for _, home := range s.Homes {
			home.Hatch(src, *cfg.Hatching)
		}
	}

	s.Sidewalk = geometry.Rect{X: 0, Y: base, W: cw, H: cfg.Bottom}
	s.Curb = primitives.WobblyRect(src, 0, base, cw, cfg.Bottom, 2, 3)

	n := int(rng.Between(src, cfg.TreeCount))
	for i := 0; i < n; i++ {
		s.Trees = append(s.Trees, streetTree(src, geometry.XY{
			X: src.Uniform(-200, cw+200),
			Y: ch - cfg.Bottom/2,
		}))
	}
	return s
}

// streetTree is a thin fan of branches under a round crown.
func streetTree(src rng.Source, start geometry.XY) *tree.Tree {
	trunkHeight := src.Uniform(100, 200)
	trunkWidth := src.Uniform(100, 200)
	radius := src.Uniform(125, 150)
	crown := geometry.XY{X: start.X, Y: start.Y - trunkHeight}

	return tree.New(src, tree.Config{
		Start:          start,
		Midpoint:       crown,
		Bulge:          crown,
		TreeHeight:     trunkHeight + radius/2,
		TreeWidth:      radius,
		TrunkHeight:    trunkHeight,
		TrunkWidth:     trunkWidth,
		TrunkSegments:  rng.IntBetween(src, 5, 20),
		LeavesStartY:   crown.Y + radius/2,
		RowHeight:      radius / 6,
		PointsPerRow:   3,
		LeavesPerPoint: 50,
		LeafWidth:      geometry.Range{Min: 10, Max: 20},
		LeafHeight:     geometry.Range{Min: 10, Max: 20},
		BoundaryRadius: geometry.Range{Min: 15, Max: 25},
		Fills:          StreetTreeLeaves.Func(1, 1),
		DropFallen:     true,
	})
}
