package geometry

import "math"

// XY is a point in canvas space. Y grows downward, so "up" a tree means smaller Y.
type XY struct {
	X, Y float64
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

func (xy XY) Scale(s float64) XY {
	return XY{X: xy.X * s, Y: xy.Y * s}
}

// Dist is the Euclidean distance between two points.
func Dist(a, b XY) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Polar returns the point r away from center at angle, measured in radians
// clockwise from the positive X axis (canvas coordinates).
func Polar(center XY, angle, r float64) XY {
	return XY{
		X: center.X + math.Cos(angle)*r,
		Y: center.Y + math.Sin(angle)*r,
	}
}

// Range is an inclusive interval. Min may exceed Max; callers that draw from a
// Range treat it the same way either way.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Lo is the smaller bound.
func (r Range) Lo() float64 {
	return math.Min(r.Min, r.Max)
}

// Hi is the larger bound.
func (r Range) Hi() float64 {
	return math.Max(r.Min, r.Max)
}

func (r Range) Span() float64 {
	return r.Hi() - r.Lo()
}

func (r Range) Mid() float64 {
	return (r.Min + r.Max) * 0.5
}

func (r Range) Contains(v float64) bool {
	return v >= r.Lo() && v <= r.Hi()
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Lo(), math.Min(r.Hi(), v))
}

// Lerp maps t in [0, 1] onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Map linearly rescales v from the range in onto out without clamping.
func Map(v float64, in, out Range) float64 {
	if in.Max == in.Min {
		return out.Min
	}
	return out.Lerp((v - in.Min) / (in.Max - in.Min))
}

// A Bezier is a single cubic curve segment.
type Bezier struct {
	Start    XY
	Controls [2]XY
	End      XY
}

// At evaluates the curve at t in [0, 1].
func (b Bezier) At(t float64) XY {
	u := 1.0 - t
	a := u * u * u
	c1 := 3 * u * u * t
	c2 := 3 * u * t * t
	d := t * t * t
	return XY{
		X: a*b.Start.X + c1*b.Controls[0].X + c2*b.Controls[1].X + d*b.End.X,
		Y: a*b.Start.Y + c1*b.Controls[0].Y + c2*b.Controls[1].Y + d*b.End.Y,
	}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has collapsed in either dimension.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
