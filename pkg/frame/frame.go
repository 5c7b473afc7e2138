package frame

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/transforms"
	"log"
	"math"
)

// Direction is which way a moulding's gradient slopes.
type Direction int

const (
	// Outward mouldings are darkest at their outer edge.
	Outward Direction = iota
	// Inward mouldings are darkest at their inner edge.
	Inward
)

func (d Direction) String() string {
	switch d {
	case Outward:
		return "outward"
	case Inward:
		return "inward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	if d != Outward && d != Inward {
		return nil, fmt.Errorf("unknown direction %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "outward":
		*d = Outward
	case "inward":
		*d = Inward
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// A Subdivision is one moulding of the frame, measured from the outer edge
// in.
type Subdivision struct {
	Length    float64   `yaml:"length"`
	Depth     float64   `yaml:"depth"`
	Direction Direction `yaml:"direction"`
	HasTrim   bool      `yaml:"hasTrim"`
}

// Subdivisions generates n random mouldings between a thin outer border and a
// thin inner border.
func Subdivisions(src rng.Source, n int) []Subdivision {
	subs := make([]Subdivision, 0, n+2)

	outer := src.Uniform(2, 3)
	subs = append(subs, Subdivision{Length: outer, Depth: outer, Direction: Outward})

	for i := 0; i < n; i++ {
		length := src.Uniform(2, 50)
		d := Outward
		if rng.Chance(src, 0.5) {
			d = Inward
		}
		subs = append(subs, Subdivision{
			Length:    length,
			Depth:     length / src.Uniform(2, 5),
			Direction: d,
			HasTrim:   rng.Chance(src, 0.5),
		})
	}

	inner := src.Uniform(2, 3)
	subs = append(subs, Subdivision{Length: inner, Depth: inner, Direction: Inward})

	subs[0].HasTrim = rng.Chance(src, 0.5)
	subs[len(subs)-1].HasTrim = rng.Chance(src, 0.5)
	return subs
}

// Normalize scales lengths and depths so the lengths sum to width.
func Normalize(subs []Subdivision, width float64) []Subdivision {
	total := 0.0
	for _, s := range subs {
		total += s.Length
	}
	if total <= 0 {
		log.Printf("subdivisions have no length; nothing to normalize")
		return nil
	}

	out := make([]Subdivision, len(subs))
	for i, s := range subs {
		s.Length = s.Length / total * width
		s.Depth = s.Depth / total * width
		out[i] = s
	}
	return out
}

// Frame colours.
var (
	Gold    = palette.New(34, 62.1, 74.1)
	Black   = palette.New(236, 7, 20)
	DeepRed = palette.New(354, 45, 15)

	MainColors = []palette.HSL{Gold, Black, DeepRed}
	TrimColors = []palette.HSL{
		palette.New(0, 0, 0),
		Gold,
		palette.New(15, 63, 44),
		palette.New(15, 83, 14),
	}

	TrimShadow = palette.HSL{H: 0, S: 0, L: 0, A: 0.25}
)

// Config describes the picture being framed and the frame around it.
type Config struct {
	InnerWidth  float64 `yaml:"innerWidth"`
	InnerHeight float64 `yaml:"innerHeight"`

	// TopWidth is the depth of the top and bottom rails. Zero picks a random
	// whole width in Widths.
	TopWidth float64 `yaml:"topWidth"`
	// SideWidth is the depth of the left and right rails. Zero means TopWidth.
	SideWidth float64 `yaml:"sideWidth"`

	Widths geometry.Range `yaml:"widths"`

	// MouldingCount is how many random subdivisions to generate.
	MouldingCount geometry.Range `yaml:"mouldingCount"`

	// TrimChance is the probability that the frame carries trim at all.
	TrimChance float64 `yaml:"trimChance"`
}

// DefaultConfig frames a 600x600 picture.
func DefaultConfig() Config {
	return Config{
		InnerWidth:    600,
		InnerHeight:   600,
		Widths:        geometry.Range{Min: 25, Max: 150},
		MouldingCount: geometry.Range{Min: 2, Max: 10},
		TrimChance:    0.3,
	}
}

// Side is one rail of the frame.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

var Sides = []Side{Top, Bottom, Left, Right}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// A Frame is a finished frame: its outline, colours and mouldings.
type Frame struct {
	Config

	// Width and Height are the outer size, picture included.
	Width, Height float64

	Main      palette.HSL
	Gradient  palette.HSL
	AllowTrim bool
	TrimWidth float64
	TrimColor palette.HSL

	// Mouldings are the generated subdivisions before normalizing.
	Mouldings []Subdivision
}

// New picks a frame's colours, trim and mouldings.
func New(src rng.Source, cfg Config) *Frame {
	if cfg.TopWidth <= 0 {
		cfg.TopWidth = math.Floor(rng.Between(src, cfg.Widths))
	}
	if cfg.SideWidth <= 0 {
		cfg.SideWidth = cfg.TopWidth
	}

	f := &Frame{
		Config: cfg,
		Width:  cfg.InnerWidth + 2*cfg.SideWidth,
		Height: cfg.InnerHeight + 2*cfg.TopWidth,
	}
	f.Main = rng.Choice(src, MainColors)
	f.Gradient = palette.New(f.Main.H, f.Main.S, f.Main.L/2.5)
	f.AllowTrim = rng.Chance(src, cfg.TrimChance)
	f.TrimWidth = src.Uniform(2, 3)
	f.TrimColor = rng.Choice(src, TrimColors)
	f.Mouldings = Subdivisions(src, int(rng.Between(src, cfg.MouldingCount)))
	return f
}

// Inner is where the picture goes.
func (f *Frame) Inner() geometry.Rect {
	return geometry.Rect{X: f.SideWidth, Y: f.TopWidth, W: f.InnerWidth, H: f.InnerHeight}
}

// depth is how deep a rail is; length is how long its outer edge is.
func (f *Frame) depth(s Side) float64 {
	if s == Left || s == Right {
		return f.SideWidth
	}
	return f.TopWidth
}

func (f *Frame) length(s Side) float64 {
	if s == Left || s == Right {
		return f.Height
	}
	return f.Width
}

// slope is how far the mitre moves along the rail per unit of depth.
func (f *Frame) slope(s Side) float64 {
	d := f.depth(s)
	if d <= 0 {
		return 0
	}
	other := f.TopWidth
	if s == Top || s == Bottom {
		other = f.SideWidth
	}
	return other / d
}

// rail places a rail's own coordinates, u along its outer edge and t inward
// from it, on the canvas. Each rail is the top rail turned about a corner.
func (f *Frame) rail(s Side) transforms.Linear {
	switch s {
	case Bottom:
		return transforms.Similarity(1, math.Pi, geometry.XY{X: f.Width, Y: f.Height})
	case Left:
		return transforms.Similarity(1, -math.Pi/2, geometry.XY{X: 0, Y: f.Height})
	case Right:
		return transforms.Similarity(1, math.Pi/2, geometry.XY{X: f.Width, Y: 0})
	}
	return transforms.Similarity(1, 0, geometry.XY{})
}

func (f *Frame) point(s Side, u, t float64) geometry.XY {
	return f.rail(s).Apply(geometry.XY{X: u, Y: t})
}

// span is the extent of a rail at depth t, between its two mitres.
func (f *Frame) span(s Side, t float64) (float64, float64) {
	k := f.slope(s)
	return t * k, f.length(s) - t*k
}

// Shape is the rail's mitred trapezoid.
func (f *Frame) Shape(s Side) []geometry.XY {
	d := f.depth(s)
	u0, u1 := f.span(s, 0)
	v0, v1 := f.span(s, d)
	return []geometry.XY{f.point(s, u0, 0), f.point(s, u1, 0), f.point(s, v1, d), f.point(s, v0, d)}
}

// Normalized returns the mouldings scaled to fit a rail.
func (f *Frame) Normalized(s Side) []Subdivision {
	return Normalize(f.Mouldings, f.depth(s))
}

// A Stroke is a straight line of the given colour and width.
type Stroke struct {
	From, To geometry.XY
	Color    palette.HSL
	Width    float64
}

// Bands shades every moulding of every rail with a gradient, one line per
// pixel of depth. Lines are clipped to the rail's mitres.
func (f *Frame) Bands() []Stroke {
	var out []Stroke
	for _, s := range Sides {
		depth := f.depth(s)
		offset := 0.0
		for _, sub := range f.Normalized(s) {
			y := offset
			reverse := sub.Direction == Inward
			if reverse {
				y = offset + sub.Length - sub.Depth
			}
			for _, b := range primitives.GradientRect(0, y, f.length(s), sub.Depth, reverse, f.Gradient) {
				if b.Y < 0 || b.Y > depth {
					continue
				}
				u0, u1 := f.span(s, b.Y+0.5)
				if u1 <= u0 {
					continue
				}
				out = append(out, Stroke{
					From:  f.point(s, u0, b.Y+0.5),
					To:    f.point(s, u1, b.Y+0.5),
					Color: b.Color,
					Width: 1,
				})
			}
			offset += sub.Length
		}
	}
	return out
}

// A Trim is a thin highlight strip at the start of a moulding, with a soft
// shadow inside it.
type Trim struct {
	Side    Side
	Outline []geometry.XY
	Color   palette.HSL
	Shadow  Stroke
}

// Trims lists the trim strips of every rail. Frames that do not allow trim
// have none.
func (f *Frame) Trims() []Trim {
	if !f.AllowTrim {
		return nil
	}
	var out []Trim
	for _, s := range Sides {
		depth := f.depth(s)
		offset := 0.0
		for _, sub := range f.Normalized(s) {
			if sub.HasTrim {
				t0 := math.Max(0, offset-1)
				t1 := math.Min(depth, offset-1+f.TrimWidth)
				if t1 > t0 {
					a0, a1 := f.span(s, t0)
					b0, b1 := f.span(s, t1)
					shadow := math.Min(depth, offset+f.TrimWidth)
					c0, c1 := f.span(s, shadow)
					out = append(out, Trim{
						Side: s,
						Outline: []geometry.XY{
							f.point(s, a0, t0), f.point(s, a1, t0),
							f.point(s, b1, t1), f.point(s, b0, t1),
						},
						Color: f.TrimColor,
						Shadow: Stroke{
							From:  f.point(s, c0, shadow),
							To:    f.point(s, c1, shadow),
							Color: TrimShadow,
							Width: 2,
						},
					})
				}
			}
			offset += sub.Length
		}
	}
	return out
}
