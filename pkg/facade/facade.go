package facade

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/rng"
	"log"
	"math"
)

// Content is what fills a floor section.
type Content int

const (
	Door Content = iota
	Window
	Circle
)

var contentNames = map[Content]string{
	Door:   "door",
	Window: "window",
	Circle: "circle",
}

func (c Content) String() string {
	if name, ok := contentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Content(%d)", int(c))
}

// ParseContent is the inverse of Content.String.
func ParseContent(s string) (Content, error) {
	for c, name := range contentNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown section content %q", s)
}

func (c Content) MarshalText() ([]byte, error) {
	if _, ok := contentNames[c]; !ok {
		return nil, fmt.Errorf("unknown section content %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Content) UnmarshalText(text []byte) error {
	parsed, err := ParseContent(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DefaultColumns is the weighted set of column counts a floor picks from.
var DefaultColumns = []int{2, 2, 3, 3, 3, 4, 4, 4, 4, 5}

// FloorConfig describes one storey of a rowhome.
type FloorConfig struct {
	// Min and Max clamp the floor's height.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// Proportion is this floor's share of the home's height.
	Proportion float64 `yaml:"proportion"`

	// Content is what each section may hold; one is picked per section.
	Content []Content `yaml:"content"`

	// Columns are the weighted column counts to choose from. Empty means
	// DefaultColumns.
	Columns []int `yaml:"columns,omitempty"`
}

// A Section is one cell of a floor.
type Section struct {
	geometry.Rect

	Content Content
	Fill    palette.HSL
	// Dark is the stroke and detail colour, ten points darker than Fill.
	Dark palette.HSL

	// Detail is where the door, window or circle goes. It is empty when the
	// section is too small to hold one.
	Detail geometry.Rect

	// Hatches are shading strokes, clipped to the section.
	Hatches [][]geometry.XY
}

// A Floor is a horizontal band of a rowhome.
type Floor struct {
	geometry.Rect

	Sections []Section
}

// GenerateFloors stacks floors upward from baseY. Each floor's height is its
// share of totalHeight, clamped to the floor's [Min, Max]. Sections are
// filled with fill.
func GenerateFloors(src rng.Source, x, baseY, width, totalHeight float64, configs []FloorConfig, fill palette.HSL) []Floor {
	sum := 0.0
	for _, c := range configs {
		sum += c.Proportion
	}
	if sum <= 0 {
		log.Printf("floor proportions sum to %v; no floors generated", sum)
		return nil
	}

	floors := make([]Floor, 0, len(configs))
	y := baseY
	for _, c := range configs {
		fh := totalHeight / sum * c.Proportion
		if fh > c.Max {
			fh = c.Max
		}
		if fh < c.Min {
			fh = c.Min
		}
		y -= fh

		columns := c.Columns
		if len(columns) == 0 {
			columns = DefaultColumns
		}
		numCols := rng.Choice(src, columns)

		floors = append(floors, Floor{
			Rect:     geometry.Rect{X: x, Y: y, W: width, H: fh},
			Sections: GenerateSections(src, x, y, width, fh, numCols, c.Content, fill),
		})
	}
	return floors
}

// Proportions spreads a budget of numCols whole weights across numCols
// columns. Each column takes a random share of what is left and the last
// column takes the rest, so the weights always sum to numCols.
func Proportions(src rng.Source, numCols int) []int {
	if numCols <= 0 {
		return nil
	}
	weights := make([]int, numCols)
	remainder := numCols
	for j := 0; j < numCols-1; j++ {
		weights[j] = src.Intn(remainder + 1)
		remainder -= weights[j]
	}
	weights[numCols-1] = remainder
	return weights
}

// GenerateSections partitions a floor into numCols sections. A section's
// width is w/numCols times its weight; sections of weight zero have no width.
// The last section with any weight ends exactly at x+w.
func GenerateSections(src rng.Source, x, y, w, h float64, numCols int, content []Content, fill palette.HSL) []Section {
	weights := Proportions(src, numCols)
	if len(weights) == 0 {
		log.Printf("floor at y=%.1f has %d columns; no sections generated", y, numCols)
		return nil
	}

	last := 0
	for i, weight := range weights {
		if weight > 0 {
			last = i
		}
	}

	dark := fill.Darken(10)
	sections := make([]Section, len(weights))
	sx := x
	for i, weight := range weights {
		sw := w / float64(numCols) * float64(weight)
		if i == last {
			sw = x + w - sx
		}
		s := Section{
			Rect:    geometry.Rect{X: sx, Y: y, W: sw, H: h},
			Content: Window,
			Fill:    fill,
			Dark:    dark,
		}
		if len(content) > 0 {
			s.Content = rng.Choice(src, content)
		}
		if !s.Empty() {
			s.Detail = Detail(src, s.Rect, s.Content)
		}
		sections[i] = s
		sx += sw
	}
	return sections
}

// Window details sit this far inside their section.
const WindowInset = 5

// Detail places a section's door, window or circle.
func Detail(src rng.Source, r geometry.Rect, c Content) geometry.Rect {
	switch c {
	case Door:
		return door(src, r)
	case Window:
		return inset(r, WindowInset)
	case Circle:
		d := math.Min(r.W, r.H) - 2*WindowInset
		if d <= 0 {
			return geometry.Rect{}
		}
		return geometry.Rect{X: r.X + (r.W-d)/2, Y: r.Y + (r.H-d)/2, W: d, H: d}
	}
	log.Printf("section content %v has no layout", c)
	return geometry.Rect{}
}

// door stands on the section's floor, centred or pushed against one side.
func door(src rng.Source, r geometry.Rect) geometry.Rect {
	sw := math.Min(src.Uniform(40, 50), r.W)
	sh := math.Min(src.Uniform(80, 100), r.H)

	centered := r.X + r.W/2 - sw/2
	left := r.X + src.Uniform(5, 10)
	right := r.X + r.W - (sw + src.Uniform(5, 10))
	sx := rng.Choice(src, []float64{centered, left, right})
	sx = math.Max(r.X, math.Min(sx, r.X+r.W-sw))

	return geometry.Rect{X: sx, Y: r.Y + r.H - sh, W: sw, H: sh}
}

func inset(r geometry.Rect, by float64) geometry.Rect {
	out := geometry.Rect{X: r.X + by, Y: r.Y + by, W: r.W - 2*by, H: r.H - 2*by}
	if out.Empty() {
		return geometry.Rect{}
	}
	return out
}
