package primitives

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"math"
)

// A Band is a one pixel horizontal stroke of a gradient.
type Band struct {
	Y, X0, X1 float64
	Color     palette.HSL
}

// GradientRect shades a rectangle with horizontal bands whose alpha ramps
// from 0 at the top to 1 at the bottom when reverse is set, and the other way
// around otherwise.
func GradientRect(x, y, w, h float64, reverse bool, base palette.HSL) []Band {
	n := int(math.Ceil(h))
	if n <= 0 || w <= 0 {
		return nil
	}
	bands := make([]Band, 0, n)
	for i := 0; i < n; i++ {
		alpha := float64(i) / h
		if !reverse {
			alpha = 1 - float64(i+1)/h
		}
		alpha = math.Max(0, math.Min(1, alpha))
		bands = append(bands, Band{
			Y:     y + float64(i),
			X0:    x,
			X1:    x + w,
			Color: base.WithAlpha(alpha),
		})
	}
	return bands
}

// WobblyRect returns a closed outline of a rectangle made of jittered bezier
// segments, drawn left side down, bottom, right side up, then top.
func WobblyRect(src rng.Source, x, y, w, h, wobble float64, segments int) []geometry.Bezier {
	if segments < 1 {
		segments = 1
	}
	j := func() float64 { return src.Uniform(-wobble, wobble) }

	var curves []geometry.Bezier
	prev := geometry.XY{X: x, Y: y}
	add := func(c1, c2, next geometry.XY) {
		curves = append(curves, geometry.Bezier{Start: prev, Controls: [2]geometry.XY{c1, c2}, End: next})
		prev = next
	}

	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		next := geometry.XY{X: x + j(), Y: y + h*t}
		dy := next.Y - prev.Y
		add(geometry.XY{X: next.X + j(), Y: prev.Y + dy/3}, geometry.XY{X: next.X + j(), Y: prev.Y + 2*dy/3}, next)
	}
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		next := geometry.XY{X: x + w*t, Y: y + h + j()}
		dx := next.X - prev.X
		add(geometry.XY{X: prev.X + dx/3, Y: next.Y + j()}, geometry.XY{X: prev.X + 2*dx/3, Y: next.Y + j()}, next)
	}
	for i := segments; i >= 0; i-- {
		t := float64(i) / float64(segments)
		next := geometry.XY{X: x + w + j(), Y: y + h*t}
		dy := next.Y - prev.Y
		add(geometry.XY{X: next.X + j(), Y: prev.Y + dy/3}, geometry.XY{X: next.X + j(), Y: prev.Y + 2*dy/3}, next)
	}
	for i := segments; i >= 0; i-- {
		t := float64(i) / float64(segments)
		next := geometry.XY{X: x + w*t, Y: y + j()}
		dx := next.X - prev.X
		add(geometry.XY{X: prev.X + dx/3, Y: next.Y + j()}, geometry.XY{X: prev.X + 2*dx/3, Y: next.Y + j()}, next)
	}
	return curves
}
