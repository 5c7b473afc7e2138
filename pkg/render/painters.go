package render

import (
	"github.com/willbeason/vermont/pkg/facade"
	"github.com/willbeason/vermont/pkg/frame"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/tree"
	"log"
)

// Trunk colours are dark browns, lighter by day.
var (
	TrunkDay   = palette.New(12, 20, 40)
	TrunkNight = palette.New(12, 20, 10)
)

// leafOffset nudges every leaf down and right of its anchor position.
const leafOffset = 1

// Leaves paints each leaf as a small rotated ellipse.
func Leaves(c Canvas, leaves []tree.Leaf) {
	c.Push()
	c.NoStroke()
	for _, l := range leaves {
		c.Push()
		c.Fill(l.Fill)
		c.Translate(l.X, l.Y)
		c.Rotate(l.Angle)
		c.Ellipse(leafOffset, leafOffset, l.W, l.H)
		c.Pop()
	}
	c.Pop()
}

// Trunk strokes each trunk line.
func Trunk(c Canvas, t *tree.Tree, color palette.HSL) {
	c.Push()
	c.NoFill()
	c.Stroke(color, 1)
	for _, b := range t.TrunkLines {
		c.Bezier(b)
	}
	c.Pop()
}

// Tree paints a trunk, if showTrunk is set, and then the leaves over it.
func Tree(c Canvas, t *tree.Tree, showTrunk bool, trunk palette.HSL) {
	if showTrunk {
		Trunk(c, t, trunk)
	}
	Leaves(c, t.Leaves)
}

// Ticks draws a broken line, filling each tick's bump.
func Ticks(c Canvas, ticks []primitives.Tick, color palette.HSL) {
	c.Push()
	c.Fill(color)
	c.Stroke(color, 1)
	for _, t := range ticks {
		c.Bezier(t.Curve)
	}
	c.Pop()
}

func Moon(c Canvas, m *scene.Moon) {
	if m == nil {
		return
	}
	c.Push()
	c.NoStroke()
	c.Fill(m.Color)
	c.Circle(m.Center.X, m.Center.Y, m.Radius)
	c.Pop()
}

func Stars(c Canvas, stars []scene.Star) {
	c.Push()
	c.NoStroke()
	c.Fill(scene.StarColor)
	for _, s := range stars {
		c.Circle(s.Center.X, s.Center.Y, s.Radius)
	}
	c.Pop()
}

// Bands paints gradient bands as one pixel tall rectangles.
func Bands(c Canvas, bands []primitives.Band) {
	c.Push()
	c.NoStroke()
	for _, b := range bands {
		c.Fill(b.Color)
		c.Rect(b.X0, b.Y, b.X1-b.X0, 1)
	}
	c.Pop()
}

// Rowhome paints each section's wall, detail and hatching. Sections that
// have collapsed to nothing are skipped and counted in the log.
func Rowhome(c Canvas, r *facade.Rowhome) {
	skipped := 0
	c.Push()
	for _, s := range r.Sections() {
		if s.Empty() {
			skipped++
			continue
		}
		Section(c, s)
	}
	c.Pop()
	if skipped > 0 {
		log.Printf("rowhome at x=%.1f: skipped %d empty sections", r.X, skipped)
	}
}

// HatchColor is the grey of section hatching.
var HatchColor = palette.New(0, 0, 50)

// Section paints one floor section.
func Section(c Canvas, s facade.Section) {
	c.Push()
	defer c.Pop()

	c.Fill(s.Fill)
	c.Stroke(s.Dark, 1)
	c.Rect(s.X, s.Y, s.W, s.H)

	if !s.Detail.Empty() {
		d := s.Detail
		c.Fill(s.Dark)
		switch s.Content {
		case facade.Door:
			c.NoStroke()
			c.Rect(d.X, d.Y, d.W, d.H)
		case facade.Window:
			c.Rect(d.X, d.Y, d.W, d.H)
		case facade.Circle:
			c.Circle(d.X+d.W/2, d.Y+d.H/2, d.W)
		}
	}

	c.NoFill()
	c.Stroke(HatchColor.WithAlpha(0.5), 0.5)
	for _, stroke := range s.Hatches {
		for i := 1; i < len(stroke); i++ {
			c.Line(stroke[i-1].X, stroke[i-1].Y, stroke[i].X, stroke[i].Y)
		}
	}
}

// StreetTrunk is the ink colour of street tree branches.
var StreetTrunk = palette.New(5, 42, 12)

// Street paints the background, the homes, the sidewalk and then the trees.
func Street(c Canvas, s *facade.Street) {
	c.Push()
	defer c.Pop()

	c.NoStroke()
	c.Fill(s.Background)
	c.Rect(0, 0, s.Width, s.Height)

	for _, h := range s.Homes {
		Rowhome(c, h)
	}

	c.Fill(s.SidewalkColor)
	c.Stroke(palette.New(0, 0, 0), 1)
	c.Rect(s.Sidewalk.X, s.Sidewalk.Y, s.Sidewalk.W, s.Sidewalk.H)
	c.NoFill()
	for _, b := range s.Curb {
		c.Bezier(b)
	}

	for _, t := range s.Trees {
		c.Push()
		c.NoFill()
		c.Stroke(StreetTrunk, 2)
		for _, b := range t.TrunkLines {
			c.Bezier(b)
		}
		c.Pop()

		c.Push()
		c.Stroke(palette.New(0, 0, 0), 1)
		for _, l := range t.Leaves {
			c.Push()
			c.Fill(l.Fill)
			c.Translate(l.X, l.Y)
			c.Rotate(l.Angle)
			c.Ellipse(0, 0, l.W, l.H)
			c.Pop()
		}
		c.Pop()
	}
}

// Frame paints the rails in the main colour, their gradient mouldings and
// then any trim.
func Frame(c Canvas, f *frame.Frame) {
	c.Push()
	defer c.Pop()

	c.NoStroke()
	c.Fill(f.Main)
	for _, s := range frame.Sides {
		c.Polygon(f.Shape(s))
	}

	c.NoFill()
	for _, b := range f.Bands() {
		c.Stroke(b.Color, b.Width)
		c.Line(b.From.X, b.From.Y, b.To.X, b.To.Y)
	}

	for _, t := range f.Trims() {
		c.NoStroke()
		c.Fill(t.Color)
		c.Polygon(t.Outline)

		c.NoFill()
		c.Stroke(t.Shadow.Color, t.Shadow.Width)
		c.Line(t.Shadow.From.X, t.Shadow.From.Y, t.Shadow.To.X, t.Shadow.To.Y)
	}
}
