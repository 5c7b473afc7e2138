package palette

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/rng"
	"image/color"
	"math"
)

// HSL is a colour in the units the palettes are written in: hue in degrees,
// saturation and lightness in percent, alpha in [0, 1].
type HSL struct {
	H float64 `yaml:"h"`
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
	A float64 `yaml:"a"`
}

// New returns an opaque colour.
func New(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l, A: 1}
}

// RGBA implements color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c HSL) NRGBA() color.NRGBA {
	rgb := colorful.Hsl(math.Mod(c.H+360, 360), clamp01(c.S/100), clamp01(c.L/100)).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(c.A) * 255))}
}

// Hex is the colour as #rrggbb, ignoring alpha.
func (c HSL) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// WithAlpha returns the same colour with alpha a.
func (c HSL) WithAlpha(a float64) HSL {
	c.A = a
	return c
}

// Scale multiplies saturation and lightness.
func (c HSL) Scale(s, l float64) HSL {
	c.S *= s
	c.L *= l
	return c
}

// Darken lowers lightness by amount percentage points, stopping at black.
func (c HSL) Darken(amount float64) HSL {
	c.L = math.Max(0, c.L-amount)
	return c
}

// Reflected is the colour as seen in still water.
func (c HSL) Reflected() HSL {
	return c.Scale(0.6, 0.85)
}

// FromColor converts any colour to HSL.
func FromColor(c color.Color) HSL {
	cf, ok := colorful.MakeColor(c)
	_, _, _, a := c.RGBA()
	if !ok {
		return HSL{}
	}
	h, s, l := cf.Hsl()
	return HSL{H: h, S: s * 100, L: l * 100, A: float64(a) / 0xffff}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// A ColorFunc picks one colour per call. Leaves call it once each, so every
// leaf gets its own jitter within the family.
type ColorFunc func(src rng.Source) HSL

// Const always returns c.
func Const(c HSL) ColorFunc {
	return func(rng.Source) HSL { return c }
}

// Family describes a jittered colour family. When Swatches is set a swatch is
// picked instead and Hue/Saturation/Lightness are ignored.
type Family struct {
	Name       string
	Hue        geometry.Range
	Saturation geometry.Range
	Lightness  geometry.Range
	Swatches   []HSL
}

// Func returns a ColorFunc with saturation and lightness scaled by s and l.
func (f Family) Func(s, l float64) ColorFunc {
	return func(src rng.Source) HSL {
		if len(f.Swatches) > 0 {
			return rng.Choice(src, f.Swatches).Scale(s, l)
		}
		return HSL{
			H: rng.Between(src, f.Hue),
			S: rng.Between(src, f.Saturation) * s,
			L: rng.Between(src, f.Lightness) * l,
			A: 1,
		}
	}
}

func fixed(v float64) geometry.Range {
	return geometry.Range{Min: v, Max: v}
}

// Foliage families from the Vermont pictures.
var (
	Green = Family{
		Name:       "green",
		Hue:        geometry.Range{Min: 74, Max: 107},
		Saturation: fixed(40),
		Lightness:  fixed(40.3),
	}
	Yellow = Family{
		Name:       "yellow",
		Hue:        geometry.Range{Min: 42, Max: 46},
		Saturation: geometry.Range{Min: 67, Max: 79.6},
		Lightness:  fixed(65),
	}
	Orange = Family{
		Name:       "orange",
		Hue:        geometry.Range{Min: 27, Max: 29},
		Saturation: geometry.Range{Min: 65, Max: 80},
		Lightness:  fixed(66),
	}
	Red = Family{
		Name:       "red",
		Hue:        geometry.Range{Min: 2, Max: 17},
		Saturation: geometry.Range{Min: 65, Max: 77},
		Lightness:  fixed(67),
	}
)

var families = map[string]Family{
	Green.Name:  Green,
	Yellow.Name: Yellow,
	Orange.Name: Orange,
	Red.Name:    Red,
}

// Lookup finds a foliage family or seasonal set by name.
func Lookup(name string) (Family, bool) {
	if f, ok := families[name]; ok {
		return f, true
	}
	s, ok := seasons[Season(name)]
	if !ok {
		return Family{}, false
	}
	return s.Foliage, true
}
