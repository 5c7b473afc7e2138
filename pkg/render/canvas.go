package render

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
)

// Canvas is a stateful 2D drawing surface. Fill and stroke settings and the
// current transform are saved by Push and restored by Pop. Shapes are filled
// and then stroked with whatever is set when they are drawn.
type Canvas interface {
	Width() int
	Height() int

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	Fill(c palette.HSL)
	NoFill()
	Stroke(c palette.HSL, width float64)
	NoStroke()

	// Ellipse is centred on (x, y); w and h are full diameters.
	Ellipse(x, y, w, h float64)
	Circle(x, y, d float64)
	Rect(x, y, w, h float64)
	Line(x0, y0, x1, y1 float64)
	Bezier(b geometry.Bezier)
	Polygon(points []geometry.XY)
}

// style is the fill and stroke state shared by every backend.
type style struct {
	fill        *palette.HSL
	stroke      *palette.HSL
	strokeWidth float64
}

type styleStack struct {
	current style
	saved   []style
}

func (s *styleStack) push() {
	s.saved = append(s.saved, s.current)
}

func (s *styleStack) pop() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *styleStack) setFill(c palette.HSL) {
	s.current.fill = &c
}

func (s *styleStack) setStroke(c palette.HSL, width float64) {
	s.current.stroke = &c
	s.current.strokeWidth = width
}
