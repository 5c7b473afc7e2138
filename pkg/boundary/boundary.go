package boundary

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/rng"
	"log"
	"math"
)

// A Boundary is the polar region around an anchor in which leaves may land.
type Boundary struct {
	// Start and Stop bound the leaf angles, in radians.
	Start, Stop float64

	// Angle points from the anchor toward the reference point. It is not used
	// to narrow the window, but is kept so a gap facing the reference can be cut.
	Angle float64

	Radius float64
}

// Generate picks a boundary radius in radius and records the angle from
// anchor to reference. The window is always the full circle.
func Generate(src rng.Source, radius geometry.Range, anchor, reference geometry.XY) Boundary {
	return Boundary{
		Start:  0,
		Stop:   2 * math.Pi,
		Angle:  math.Atan2(reference.Y-anchor.Y, reference.X-anchor.X),
		Radius: rng.Between(src, radius),
	}
}

// An Anchor is the centre of one leaf cluster.
type Anchor struct {
	geometry.XY
	Boundary Boundary
	// Row counts up from the lowest row of the canopy.
	Row int
}

// Half selects which side of the bulge a canopy row is in.
type Half int

const (
	// Lower rows widen from the base of the canopy up to the bulge.
	Lower Half = iota
	// Upper rows narrow from the bulge to the top.
	Upper
)

// CanopyProfile is how far the row after rowIndex moves up. Increments are
// weighted by a triangular number so that over totalRows rows they add up to
// halfHeight: the lower half starts with small steps and lengthens them, the
// upper half starts long and shortens them.
func CanopyProfile(rowIndex int, totalRows, halfHeight float64, half Half) float64 {
	if totalRows <= 0 {
		return 0
	}
	k := float64(rowIndex + 1)
	if half == Upper {
		k = totalRows - float64(rowIndex)
	}
	return halfHeight * k / (totalRows * (totalRows + 1) / 2)
}

// Canopy describes the silhouette anchors are scattered in.
type Canopy struct {
	// Base is the foot of the trunk; rows are centred on Base.X.
	Base geometry.XY

	// StartY is where the lowest row of leaves starts, TopY the top of the tree
	// and BulgeY the height at which the canopy is widest.
	StartY, TopY, BulgeY float64

	Width        float64
	RowHeight    float64
	PointsPerRow int

	Radius geometry.Range

	// Reference is the point each boundary angle is measured toward, usually
	// the middle of the tree.
	Reference geometry.XY
}

// Rows scatters anchors row by row from StartY up to TopY.
func Rows(src rng.Source, c Canopy) []Anchor {
	if c.RowHeight <= 0 {
		log.Printf("canopy row height %v is not positive; no anchors generated", c.RowHeight)
		return nil
	}

	lowerHalf := c.StartY - c.BulgeY
	upperHalf := c.BulgeY - c.TopY
	lowerRows := lowerHalf / c.RowHeight
	upperRows := upperHalf / c.RowHeight

	var anchors []Anchor
	y := c.StartY
	row := 0

	if lowerRows > 0 {
		increment := c.Width / lowerRows
		rowWidth := increment
		for i := 0; float64(i) < lowerRows; i++ {
			anchors = c.appendRow(src, anchors, row, rowWidth, y)
			y -= CanopyProfile(i, lowerRows, lowerHalf, Lower)
			rowWidth += increment
			row++
		}
	}

	if upperRows > 0 {
		decrement := c.Width / upperRows
		rowWidth := c.Width
		for i := 0; float64(i) < upperRows-1; i++ {
			anchors = c.appendRow(src, anchors, row, rowWidth, y)
			y -= CanopyProfile(i, upperRows, upperHalf, Upper)
			rowWidth -= decrement
			row++
		}
	}

	return anchors
}

func (c Canopy) appendRow(src rng.Source, anchors []Anchor, row int, rowWidth, y float64) []Anchor {
	minX := math.Max(c.Base.X-rowWidth/2, c.Base.X-c.Width/2)
	maxX := math.Min(c.Base.X+rowWidth/2, c.Base.X+c.Width/2)

	for j := 0; j < c.PointsPerRow; j++ {
		p := geometry.XY{
			X: src.Uniform(minX, maxX),
			Y: src.Uniform(y, y-c.RowHeight),
		}
		anchors = append(anchors, Anchor{
			XY:       p,
			Boundary: Generate(src, c.Radius, p, c.Reference),
			Row:      row,
		})
	}
	return anchors
}
