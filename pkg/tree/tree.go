package tree

import (
	"github.com/willbeason/vermont/pkg/boundary"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"math"
)

const (
	// DefaultLightAngle lights trees from the upper left.
	DefaultLightAngle = math.Pi + math.Pi/4

	// DefaultFillPercentage is the share of the boundary radius, measured
	// inward from the edge, in which lit leaves take the sunlight colour.
	DefaultFillPercentage = 0.5

	// DefaultFallenScatter is how far below the ground line fallen leaves land.
	DefaultFallenScatter = 15.0

	// DefaultDecayFloor is the fewest leaves a decaying row keeps per anchor.
	DefaultDecayFloor = 5
)

// Light describes where sunlight comes from.
type Light struct {
	// Angle is the direction of the light source in radians, measured from an
	// anchor in canvas coordinates.
	Angle float64 `yaml:"angle"`

	// FillPercentage is in [0, 1]. Higher values light more of each cluster.
	FillPercentage float64 `yaml:"fillPercentage"`
}

// Decay thins leaf clusters as rows climb the canopy.
type Decay struct {
	// Step is how many fewer leaves each row gets than the row below it.
	Step int `yaml:"step"`

	// Floor is the minimum leaves per anchor; zero means DefaultDecayFloor.
	Floor int `yaml:"floor"`
}

// Config fully determines a tree given a random source.
type Config struct {
	// Start is the foot of the trunk and also the ground line for this tree.
	Start geometry.XY
	// Midpoint is what each anchor boundary angle is measured toward.
	Midpoint geometry.XY
	// Bulge is where the canopy is widest; only Y is used.
	Bulge geometry.XY

	TreeHeight float64
	TreeWidth  float64

	TrunkHeight   float64
	TrunkWidth    float64
	TrunkSegments int
	// HideTrunk skips trunk generation, for trees standing behind others.
	HideTrunk bool

	// LeavesStartY is the lowest row of the canopy.
	LeavesStartY float64
	RowHeight    float64

	PointsPerRow   int
	LeavesPerPoint int
	Decay          *Decay

	LeafWidth      geometry.Range
	LeafHeight     geometry.Range
	BoundaryRadius geometry.Range

	Fills         palette.ColorFunc
	FillsSunlight palette.ColorFunc
	Light         *Light

	// FallenScatter is how far below the ground fallen leaves may land.
	FallenScatter float64
	// DropFallen discards leaves that would fall instead of laying them on the ground.
	DropFallen bool
}

// A Leaf is one daub of colour in a canopy.
type Leaf struct {
	X, Y float64
	W, H float64

	// Angle is the rotation the leaf is drawn at.
	Angle float64

	// Polar and Radius place the leaf relative to its anchor.
	Polar, Radius float64

	Sun    bool
	Fallen bool
	Fill   palette.HSL

	// MovementFactor scales wind sway, from 0.1 (slow) to 1 (fast).
	MovementFactor    float64
	MovementDirection float64

	// Anchor indexes Tree.Anchors.
	Anchor int
}

// A Tree is built once and then only read. Regenerating a picture builds new
// trees rather than changing old ones.
type Tree struct {
	Config

	TrunkLines []geometry.Bezier
	Anchors    []boundary.Anchor
	Leaves     []Leaf
}

// New builds a tree. Degenerate configs produce sparse or empty trees rather
// than errors.
func New(src rng.Source, cfg Config) *Tree {
	cfg = cfg.withDefaults()

	t := &Tree{Config: cfg}
	t.TrunkLines = t.generateTrunkLines(src)
	t.Anchors = boundary.Rows(src, t.canopy())
	t.Leaves = t.generateLeaves(src)
	return t
}

func (cfg Config) withDefaults() Config {
	if cfg.Light == nil {
		cfg.Light = &Light{Angle: DefaultLightAngle, FillPercentage: DefaultFillPercentage}
	}
	if cfg.FallenScatter == 0 {
		cfg.FallenScatter = DefaultFallenScatter
	}
	if cfg.Fills == nil {
		cfg.Fills = palette.Green.Func(1, 1)
	}
	if cfg.FillsSunlight == nil {
		cfg.FillsSunlight = cfg.Fills
	}
	if cfg.Decay != nil && cfg.Decay.Floor <= 0 {
		d := *cfg.Decay
		d.Floor = DefaultDecayFloor
		cfg.Decay = &d
	}
	return cfg
}

func (t *Tree) canopy() boundary.Canopy {
	return boundary.Canopy{
		Base:         t.Start,
		StartY:       t.LeavesStartY,
		TopY:         t.Start.Y - t.TreeHeight,
		BulgeY:       t.Bulge.Y,
		Width:        t.TreeWidth,
		RowHeight:    t.RowHeight,
		PointsPerRow: t.PointsPerRow,
		Radius:       t.BoundaryRadius,
		Reference:    t.Midpoint,
	}
}

// generateTrunkLines fans TrunkSegments curves out of the start point. Each
// ends between half and all of the trunk height above the start, within half
// the trunk width either side.
func (t *Tree) generateTrunkLines(src rng.Source) []geometry.Bezier {
	if t.HideTrunk {
		return nil
	}

	s := t.Start
	lines := make([]geometry.Bezier, 0, t.TrunkSegments)
	for i := 0; i < t.TrunkSegments; i++ {
		end := geometry.XY{
			X: src.Uniform(s.X-t.TrunkWidth/2, s.X+t.TrunkWidth/2),
			Y: src.Uniform(s.Y-t.TrunkHeight/2, s.Y-t.TrunkHeight),
		}
		c1 := geometry.XY{X: s.X, Y: src.Uniform(s.Y, end.Y)}
		c2 := geometry.XY{X: src.Uniform(s.X, end.X), Y: src.Uniform(c1.Y, end.Y)}
		lines = append(lines, geometry.Bezier{Start: s, Controls: [2]geometry.XY{c1, c2}, End: end})
	}
	return lines
}

// LeavesForRow is how many leaves each anchor in row gets.
func (t *Tree) LeavesForRow(row int) int {
	n := t.LeavesPerPoint
	if t.Decay == nil {
		return n
	}
	if decayed := n - t.Decay.Step*row; decayed > t.Decay.Floor {
		return decayed
	}
	if n < t.Decay.Floor {
		return n
	}
	return t.Decay.Floor
}

// IsSunLeaf reports whether a leaf at polar angle faces the light.
func IsSunLeaf(angle, lightAngle float64) bool {
	return angle >= lightAngle-math.Pi/2 && angle <= lightAngle+math.Pi/2
}

func (t *Tree) generateLeaves(src rng.Source) []Leaf {
	var leaves []Leaf
	for ai, a := range t.Anchors {
		b := a.Boundary
		n := t.LeavesForRow(a.Row)
		for i := 0; i < n; i++ {
			angle := src.Uniform(b.Start, b.Stop)
			r := src.Uniform(0, b.Radius)
			sun := IsSunLeaf(angle, t.Light.Angle)
			fallen := a.Y+math.Sin(angle)*r >= t.Start.Y

			// Only the outer part of a lit cluster catches the light, which reads
			// as a soft highlight rather than a hard terminator.
			var fill palette.HSL
			if sun && r > b.Radius-b.Radius*t.Light.FillPercentage {
				fill = t.FillsSunlight(src)
			} else {
				fill = t.Fills(src)
			}

			leaf := Leaf{
				X:      a.X + math.Cos(angle)*r,
				Y:      a.Y + math.Sin(angle)*r,
				W:      rng.Between(src, t.LeafWidth),
				H:      rng.Between(src, t.LeafHeight),
				Angle:  angle,
				Polar:  angle,
				Radius: r,
				Sun:    sun,
				Fallen: fallen,
				Fill:   fill,
				Anchor: ai,
			}
			if fallen {
				leaf.Y = t.Start.Y + src.Uniform(0, t.FallenScatter)
				leaf.Angle = math.Pi / 2
			}
			leaf.MovementFactor = src.Uniform(0.7, 0.9)
			leaf.MovementDirection = src.Uniform(0, 2*math.Pi)

			if fallen && t.DropFallen {
				continue
			}
			leaves = append(leaves, leaf)
		}
	}
	return leaves
}

// Clone returns a deep copy.
func (t *Tree) Clone() *Tree {
	c := *t
	c.TrunkLines = append([]geometry.Bezier(nil), t.TrunkLines...)
	c.Anchors = append([]boundary.Anchor(nil), t.Anchors...)
	c.Leaves = append([]Leaf(nil), t.Leaves...)
	if t.Light != nil {
		l := *t.Light
		c.Light = &l
	}
	if t.Decay != nil {
		d := *t.Decay
		c.Decay = &d
	}
	return &c
}

// Recolored returns a copy of the tree with every leaf fill passed through f.
// The receiver is left untouched.
func (t *Tree) Recolored(f func(palette.HSL) palette.HSL) *Tree {
	c := t.Clone()
	for i := range c.Leaves {
		c.Leaves[i].Fill = f(c.Leaves[i].Fill)
	}
	return c
}

// Top is the highest point of the tree.
func (t *Tree) Top() float64 {
	return t.Start.Y - t.TreeHeight
}
