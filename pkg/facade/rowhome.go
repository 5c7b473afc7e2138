package facade

import (
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"math"
)

// A Rowhome is a stack of floors standing on its base line.
type Rowhome struct {
	geometry.Rect

	Fill   palette.HSL
	Floors []Floor
}

// DefaultFloors is the six storey layout of a city rowhome, from the ground
// up. Floors whose proportion comes up zero collapse to their minimum height.
func DefaultFloors(src rng.Source) []FloorConfig {
	maybe := func(lo, hi float64) float64 {
		return rng.Choice(src, []float64{0, src.Uniform(lo, hi)})
	}
	return []FloorConfig{
		{Min: 0, Max: 80, Proportion: maybe(0.05, 0.1), Content: []Content{Window}},
		{Min: 100, Max: 200, Proportion: src.Uniform(0.25, 0.35), Content: []Content{Door, Window, Window}},
		{Min: 100, Max: 150, Proportion: maybe(0.2, 0.25), Content: []Content{Circle, Window}},
		{Min: 0, Max: 150, Proportion: maybe(0.2, 0.25), Content: []Content{Circle, Window}},
		{Min: 0, Max: 150, Proportion: maybe(0.2, 0.25), Content: []Content{Circle, Window}},
		{Min: 20, Max: 150, Proportion: src.Uniform(0.05, 0.25), Content: []Content{Circle, Window}},
	}
}

// NewRowhome lays out a home whose bottom edge is at y. Floors are clamped
// individually, so the finished home may be taller or shorter than h.
func NewRowhome(src rng.Source, x, y, w, h float64, fill palette.HSL, floors []FloorConfig) *Rowhome {
	r := &Rowhome{
		Rect:   geometry.Rect{X: x, Y: y - h, W: w, H: h},
		Fill:   fill,
		Floors: GenerateFloors(src, x, y, w, h, floors, fill),
	}
	return r
}

// Sections lists every section of every floor, bottom floor first.
func (r *Rowhome) Sections() []Section {
	var out []Section
	for _, f := range r.Floors {
		out = append(out, f.Sections...)
	}
	return out
}

// Hatching is ink shading laid over each section.
type Hatching struct {
	Spacing   float64 `yaml:"spacing"`
	Length    float64 `yaml:"length"`
	Angle     float64 `yaml:"angle"`
	Amplitude float64 `yaml:"amplitude"`
}

// DefaultHatching draws short strokes at 45 degrees every 6 pixels.
func DefaultHatching() Hatching {
	return Hatching{Spacing: 6, Length: 20, Angle: math.Pi / 4, Amplitude: 1}
}

// Hatch adds shading strokes to every non-empty section.
func (r *Rowhome) Hatch(src rng.Source, h Hatching) {
	for i := range r.Floors {
		for j := range r.Floors[i].Sections {
			s := &r.Floors[i].Sections[j]
			if s.Empty() {
				continue
			}
			s.Hatches = hatches(src, s.Rect, h)
		}
	}
}

// hatches lays a grid of squiggly strokes over r, dropping the points of each
// stroke that leave the rectangle.
func hatches(src rng.Source, r geometry.Rect, h Hatching) [][]geometry.XY {
	if h.Spacing <= 0 {
		return nil
	}
	const step = 5
	segments := int(math.Floor(h.Length / step))
	cos, sin := math.Cos(h.Angle), math.Sin(h.Angle)

	var out [][]geometry.XY
	for y := 0.0; y < r.H; y += h.Spacing {
		for x := 0.0; x < r.W; x += h.Spacing {
			var stroke []geometry.XY
			for i := 0; i < segments; i++ {
				jitter := src.Uniform(-h.Amplitude, h.Amplitude)
				px := x + cos*float64(i)*step + sin*jitter
				py := y + sin*float64(i)*step + cos*jitter
				if px < 0 || px > r.W || py < 0 || py > r.H {
					break
				}
				stroke = append(stroke, geometry.XY{X: r.X + px, Y: r.Y + py})
			}
			if len(stroke) > 1 {
				out = append(out, stroke)
			}
		}
	}
	return out
}
