package render

import (
	"github.com/fogleman/gg"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"image"
	"image/draw"
)

// Raster draws into an in-memory image with gg.
type Raster struct {
	dc    *gg.Context
	style styleStack
}

var _ Canvas = &Raster{}

func NewRaster(width, height int) *Raster {
	return &Raster{dc: gg.NewContext(width, height)}
}

// NewRasterFor draws over a copy of img.
func NewRasterFor(img image.Image) *Raster {
	return &Raster{dc: gg.NewContextForImage(img)}
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

// Image is the backing image. Later drawing shows through.
func (r *Raster) Image() *image.RGBA {
	if img, ok := r.dc.Image().(*image.RGBA); ok {
		return img
	}
	b := r.dc.Image().Bounds()
	img := image.NewRGBA(b)
	draw.Draw(img, b, r.dc.Image(), b.Min, draw.Src)
	return img
}

// DrawImage composites img at (x, y), ignoring the current transform.
func (r *Raster) DrawImage(img image.Image, x, y int) {
	r.dc.Push()
	r.dc.Identity()
	r.dc.DrawImage(img, x, y)
	r.dc.Pop()
}

func (r *Raster) Push() {
	r.dc.Push()
	r.style.push()
}

func (r *Raster) Pop() {
	r.dc.Pop()
	r.style.pop()
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(angle float64)   { r.dc.Rotate(angle) }
func (r *Raster) Scale(x, y float64)     { r.dc.Scale(x, y) }

func (r *Raster) Fill(c palette.HSL)                  { r.style.setFill(c) }
func (r *Raster) NoFill()                             { r.style.current.fill = nil }
func (r *Raster) Stroke(c palette.HSL, width float64) { r.style.setStroke(c, width) }
func (r *Raster) NoStroke()                           { r.style.current.stroke = nil }

// paint fills and then strokes the current path.
func (r *Raster) paint() {
	s := r.style.current
	if s.fill != nil {
		r.dc.SetColor(*s.fill)
		if s.stroke != nil {
			r.dc.FillPreserve()
		} else {
			r.dc.Fill()
		}
	}
	if s.stroke != nil {
		r.dc.SetColor(*s.stroke)
		r.dc.SetLineWidth(s.strokeWidth)
		r.dc.Stroke()
	}
	r.dc.ClearPath()
}

func (r *Raster) Ellipse(x, y, w, h float64) {
	r.dc.DrawEllipse(x, y, w/2, h/2)
	r.paint()
}

func (r *Raster) Circle(x, y, d float64) {
	r.dc.DrawCircle(x, y, d/2)
	r.paint()
}

func (r *Raster) Rect(x, y, w, h float64) {
	r.dc.DrawRectangle(x, y, w, h)
	r.paint()
}

func (r *Raster) Line(x0, y0, x1, y1 float64) {
	r.dc.DrawLine(x0, y0, x1, y1)
	s := r.style.current
	if s.stroke != nil {
		r.dc.SetColor(*s.stroke)
		r.dc.SetLineWidth(s.strokeWidth)
		r.dc.Stroke()
	}
	r.dc.ClearPath()
}

func (r *Raster) Bezier(b geometry.Bezier) {
	r.dc.MoveTo(b.Start.X, b.Start.Y)
	r.dc.CubicTo(b.Controls[0].X, b.Controls[0].Y, b.Controls[1].X, b.Controls[1].Y, b.End.X, b.End.Y)
	r.paint()
}

func (r *Raster) Polygon(points []geometry.XY) {
	if len(points) < 2 {
		return
	}
	r.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	r.paint()
}
