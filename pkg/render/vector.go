package render

import (
	"fmt"
	"github.com/ajstarks/svgo"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/transforms"
	"io"
	"strings"
)

// Vector writes SVG with svgo. Every shape is emitted as a path so that
// sub-pixel leaves keep their size.
type Vector struct {
	svg           *svg.SVG
	width, height int
	style         styleStack

	transform transforms.Affine
	saved     []transforms.Affine
}

var _ Canvas = &Vector{}

// NewVector starts an SVG document on w. Call End to finish it.
func NewVector(w io.Writer, width, height int, title string) *Vector {
	v := &Vector{
		svg:       svg.New(w),
		width:     width,
		height:    height,
		transform: transforms.Identity,
	}
	v.svg.Start(width, height)
	if title != "" {
		v.svg.Title(title)
	}
	return v
}

func (v *Vector) End() { v.svg.End() }

func (v *Vector) Width() int  { return v.width }
func (v *Vector) Height() int { return v.height }

// Group wraps everything drawn by f in a group with the given transform and
// style, either of which may be empty.
func (v *Vector) Group(transform, style string, f func()) {
	if transform != "" {
		v.svg.Gtransform(transform)
	}
	if style != "" {
		v.svg.Gstyle(style)
	}
	f()
	if style != "" {
		v.svg.Gend()
	}
	if transform != "" {
		v.svg.Gend()
	}
}

// Image places a raster image, such as an embedded data URI, ignoring the
// current transform.
func (v *Vector) Image(x, y, w, h int, link string, style ...string) {
	v.svg.Image(x, y, w, h, link, style...)
}

func (v *Vector) Push() {
	v.saved = append(v.saved, v.transform)
	v.style.push()
}

func (v *Vector) Pop() {
	if n := len(v.saved); n > 0 {
		v.transform = v.saved[n-1]
		v.saved = v.saved[:n-1]
	}
	v.style.pop()
}

// Transforms apply to shapes in their own coordinates first, as in gg.
func (v *Vector) Translate(x, y float64) {
	v.transform = transforms.Translate(x, y).Then(v.transform)
}

func (v *Vector) Rotate(angle float64) {
	v.transform = transforms.Rotate(angle).Then(v.transform)
}

func (v *Vector) Scale(x, y float64) {
	v.transform = transforms.Scale(x, y).Then(v.transform)
}

func (v *Vector) Fill(c palette.HSL)                  { v.style.setFill(c) }
func (v *Vector) NoFill()                             { v.style.current.fill = nil }
func (v *Vector) Stroke(c palette.HSL, width float64) { v.style.setStroke(c, width) }
func (v *Vector) NoStroke()                           { v.style.current.stroke = nil }

func (v *Vector) css(fill bool) string {
	s := v.style.current
	var b strings.Builder
	if fill && s.fill != nil {
		fmt.Fprintf(&b, "fill:%s;fill-opacity:%.3g", s.fill.Hex(), s.fill.A)
	} else {
		b.WriteString("fill:none")
	}
	if s.stroke != nil {
		fmt.Fprintf(&b, ";stroke:%s;stroke-opacity:%.3g;stroke-width:%g", s.stroke.Hex(), s.stroke.A, s.strokeWidth)
	}
	return b.String()
}

func (v *Vector) path(d string, fill bool) {
	if v.style.current.stroke == nil && (!fill || v.style.current.fill == nil) {
		return
	}
	if v.transform == transforms.Identity {
		v.svg.Path(d, v.css(fill))
		return
	}
	v.svg.Path(d, fmt.Sprintf(`transform="%s"`, v.transform.SVG()), v.css(fill))
}

func (v *Vector) Ellipse(x, y, w, h float64) {
	rx, ry := w/2, h/2
	v.path(fmt.Sprintf("M%g,%g A%g,%g 0 1,0 %g,%g A%g,%g 0 1,0 %g,%g Z",
		x-rx, y, rx, ry, x+rx, y, rx, ry, x-rx, y), true)
}

func (v *Vector) Circle(x, y, d float64) {
	v.Ellipse(x, y, d, d)
}

func (v *Vector) Rect(x, y, w, h float64) {
	v.path(fmt.Sprintf("M%g,%g h%g v%g h%g Z", x, y, w, h, -w), true)
}

func (v *Vector) Line(x0, y0, x1, y1 float64) {
	v.path(fmt.Sprintf("M%g,%g L%g,%g", x0, y0, x1, y1), false)
}

func (v *Vector) Bezier(b geometry.Bezier) {
	v.path(fmt.Sprintf("M%g,%g C%g,%g %g,%g %g,%g",
		b.Start.X, b.Start.Y,
		b.Controls[0].X, b.Controls[0].Y,
		b.Controls[1].X, b.Controls[1].Y,
		b.End.X, b.End.Y), true)
}

func (v *Vector) Polygon(points []geometry.XY) {
	if len(points) < 2 {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%g,%g", points[0].X, points[0].Y)
	for _, p := range points[1:] {
		fmt.Fprintf(&b, " L%g,%g", p.X, p.Y)
	}
	b.WriteString(" Z")
	v.path(b.String(), true)
}
