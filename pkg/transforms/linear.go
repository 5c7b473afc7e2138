package transforms

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"math/cmplx"
)

// Linear treats points as complex numbers: multiplying rotates and scales,
// adding translates.
type Linear struct {
	Multiply complex128
	Add      complex128
}

// Similarity scales by scale, rotates by angle and then moves by offset.
func Similarity(scale, angle float64, offset geometry.XY) Linear {
	return Linear{
		Multiply: cmplx.Rect(scale, angle),
		Add:      complex(offset.X, offset.Y),
	}
}

func (l Linear) Apply(xy geometry.XY) geometry.XY {
	z := complex(xy.X, xy.Y)*l.Multiply + l.Add
	return geometry.XY{X: real(z), Y: imag(z)}
}
