package transforms

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/geometry"
	"math"
)

// A Transform moves points around the canvas.
type Transform interface {
	Apply(geometry.XY) geometry.XY
}

// Affine is the matrix
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// in the same layout SVG's matrix(a b c d e f) uses.
type Affine struct {
	A, B, C, D, E, F float64
}

var Identity = Affine{A: 1, D: 1}

func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

func Scale(x, y float64) Affine {
	return Affine{A: x, D: y}
}

func Rotate(angle float64) Affine {
	s, c := math.Sincos(angle)
	return Affine{A: c, B: s, C: -s, D: c}
}

// MirrorY reflects across the horizontal line y = axis, the way still water
// reflects everything above it.
func MirrorY(axis float64) Affine {
	return Affine{A: 1, D: -1, F: 2 * axis}
}

// Then returns the transform that applies m and then n.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: n.A*m.A + n.C*m.B,
		B: n.B*m.A + n.D*m.B,
		C: n.A*m.C + n.C*m.D,
		D: n.B*m.C + n.D*m.D,
		E: n.A*m.E + n.C*m.F + n.E,
		F: n.B*m.E + n.D*m.F + n.F,
	}
}

func (m Affine) Apply(xy geometry.XY) geometry.XY {
	return geometry.XY{
		X: m.A*xy.X + m.C*xy.Y + m.E,
		Y: m.B*xy.X + m.D*xy.Y + m.F,
	}
}

// SVG formats the matrix as a transform attribute value.
func (m Affine) SVG() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}

var (
	_ Transform = Affine{}
	_ Transform = Linear{}
)
