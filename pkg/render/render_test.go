package render

import (
	"bytes"
	"github.com/willbeason/vermont/pkg/facade"
	"github.com/willbeason/vermont/pkg/frame"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/tree"
	"strings"
	"testing"
)

// recorder counts the shapes painters ask for.
type recorder struct {
	depth, maxDepth int
	ellipses        int
	beziers         int
	rects           int
	lines           int
	polygons        int
	fills           []palette.HSL
}

func (r *recorder) Width() int  { return 100 }
func (r *recorder) Height() int { return 100 }
func (r *recorder) Push() {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
}
func (r *recorder) Pop()                                { r.depth-- }
func (r *recorder) Translate(x, y float64)              {}
func (r *recorder) Rotate(angle float64)                {}
func (r *recorder) Scale(x, y float64)                  {}
func (r *recorder) Fill(c palette.HSL)                  { r.fills = append(r.fills, c) }
func (r *recorder) NoFill()                             {}
func (r *recorder) Stroke(c palette.HSL, width float64) {}
func (r *recorder) NoStroke()                           {}
func (r *recorder) Ellipse(x, y, w, h float64)          { r.ellipses++ }
func (r *recorder) Circle(x, y, d float64)              { r.ellipses++ }
func (r *recorder) Rect(x, y, w, h float64)             { r.rects++ }
func (r *recorder) Line(x0, y0, x1, y1 float64)         { r.lines++ }
func (r *recorder) Bezier(b geometry.Bezier)            { r.beziers++ }
func (r *recorder) Polygon(points []geometry.XY)        { r.polygons++ }

func TestTreePainter(t *testing.T) {
	tr := &tree.Tree{
		TrunkLines: make([]geometry.Bezier, 4),
		Leaves: []tree.Leaf{
			{Fill: palette.New(10, 50, 50)},
			{Fill: palette.New(20, 50, 50)},
		},
	}

	r := &recorder{}
	Tree(r, tr, true, TrunkDay)
	if r.beziers != 4 || r.ellipses != 2 {
		t.Errorf("got %d beziers and %d ellipses, want 4 and 2", r.beziers, r.ellipses)
	}
	if r.depth != 0 {
		t.Errorf("unbalanced push/pop: depth %d", r.depth)
	}

	r = &recorder{}
	Tree(r, tr, false, TrunkDay)
	if r.beziers != 0 {
		t.Errorf("hidden trunk drew %d lines", r.beziers)
	}
	if r.fills[0].H != 10 || r.fills[1].H != 20 {
		t.Errorf("leaves painted with %v", r.fills)
	}
}

func TestSkyPainters(t *testing.T) {
	r := &recorder{}
	Moon(r, nil)
	Moon(r, &scene.Moon{Radius: 10, Color: palette.New(50, 78, 92)})
	Stars(r, make([]scene.Star, 5))
	if r.ellipses != 6 {
		t.Errorf("got %d circles, want 6", r.ellipses)
	}

	Bands(r, primitives.GradientRect(0, 0, 10, 7, true, palette.New(0, 0, 0)))
	if r.rects != 7 {
		t.Errorf("got %d bands, want 7", r.rects)
	}
}

func TestRasterPaintsPixels(t *testing.T) {
	c := NewRaster(20, 20)
	c.Fill(palette.New(0, 100, 50))
	c.Rect(0, 0, 20, 20)

	c.Push()
	c.NoFill()
	c.Pop()
	c.Circle(10, 10, 4)

	got := c.Image().RGBAAt(10, 10)
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 255 {
		t.Errorf("centre pixel %v, want opaque red", got)
	}
}

func TestRasterPopRestoresStyle(t *testing.T) {
	c := NewRaster(10, 10)
	c.Fill(palette.New(240, 100, 50))
	c.Push()
	c.Fill(palette.New(0, 100, 50))
	c.Pop()
	c.Rect(0, 0, 10, 10)

	if got := c.Image().RGBAAt(5, 5); got.B != 255 || got.R != 0 {
		t.Errorf("pixel %v, want blue after Pop", got)
	}
}

func TestVectorWritesPaths(t *testing.T) {
	var buf bytes.Buffer
	v := NewVector(&buf, 100, 50, "test")
	v.Fill(palette.New(120, 100, 25))
	v.Rect(0, 0, 100, 50)

	v.Push()
	v.Translate(10, 20)
	v.Ellipse(0, 0, 1, 2)
	v.Pop()

	v.NoFill()
	v.Rect(1, 1, 2, 2)

	v.Group("matrix(1 0 0 -1 0 100)", "opacity:0.5", func() {
		v.Stroke(palette.New(0, 0, 0), 1)
		v.Line(0, 0, 5, 5)
	})
	v.End()

	out := buf.String()
	if n := strings.Count(out, "<path"); n != 3 {
		t.Errorf("got %d paths, want 3 (unpainted shapes are skipped):\n%s", n, out)
	}
	for _, want := range []string{
		`transform="matrix(1 0 0 1 10 20)"`,
		"fill:#008000",
		"A0.5,1",
		`<g transform="matrix(1 0 0 -1 0 100)">`,
		"stroke:#000000",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRowhomeSkipsEmptySections(t *testing.T) {
	wall := palette.New(23, 100, 54)
	home := &facade.Rowhome{Floors: []facade.Floor{{
		Sections: []facade.Section{
			{Rect: geometry.Rect{X: 0, Y: 0, W: 0, H: 50}, Content: facade.Window, Fill: wall},
			{
				Rect:    geometry.Rect{X: 0, Y: 0, W: 60, H: 50},
				Content: facade.Window,
				Fill:    wall,
				Dark:    wall.Darken(10),
				Detail:  geometry.Rect{X: 5, Y: 5, W: 50, H: 40},
			},
			{
				Rect:    geometry.Rect{X: 60, Y: 0, W: 40, H: 50},
				Content: facade.Circle,
				Fill:    wall,
				Detail:  geometry.Rect{X: 65, Y: 10, W: 30, H: 30},
				Hatches: [][]geometry.XY{{{X: 61, Y: 1}, {X: 64, Y: 4}, {X: 67, Y: 7}}},
			},
		},
	}}}

	r := &recorder{}
	Rowhome(r, home)
	if r.rects != 3 {
		t.Errorf("got %d rects, want 2 walls and a window", r.rects)
	}
	if r.ellipses != 1 {
		t.Errorf("got %d circles, want 1", r.ellipses)
	}
	if r.lines != 2 {
		t.Errorf("got %d hatch lines, want 2", r.lines)
	}
	if r.depth != 0 {
		t.Errorf("unbalanced push/pop: depth %d", r.depth)
	}
}

func TestStreetPainter(t *testing.T) {
	cfg := facade.DefaultStreet()
	cfg.Hatching = nil
	s := facade.NewStreet(rng.New(3), cfg)

	r := &recorder{}
	Street(r, s)
	if r.rects < len(s.Homes)+2 {
		t.Errorf("got %d rects for %d homes", r.rects, len(s.Homes))
	}
	if r.beziers < len(s.Curb) {
		t.Errorf("got %d curves, want at least the %d curb strokes", r.beziers, len(s.Curb))
	}
	if r.depth != 0 {
		t.Errorf("unbalanced push/pop: depth %d", r.depth)
	}
}

func TestFramePainter(t *testing.T) {
	cfg := frame.DefaultConfig()
	cfg.InnerWidth, cfg.InnerHeight = 50, 50
	cfg.TopWidth = 20
	cfg.TrimChance = 1
	f := frame.New(rng.New(1), cfg)

	r := &recorder{}
	Frame(r, f)
	if want := 4 + len(f.Trims()); r.polygons != want {
		t.Errorf("got %d polygons, want %d", r.polygons, want)
	}
	if want := len(f.Bands()) + len(f.Trims()); r.lines != want {
		t.Errorf("got %d lines, want %d", r.lines, want)
	}
}
