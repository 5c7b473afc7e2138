package preset

import (
	"errors"
	"fmt"
	"github.com/willbeason/vermont/pkg/forest"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/tree"
	"log"
	"math"
)

type TimeOfDay string

const (
	Day    TimeOfDay = "day"
	Night  TimeOfDay = "night"
	Random TimeOfDay = "random"
)

// Shade multiplies a foliage family's saturation and lightness.
type Shade struct {
	S float64 `yaml:"s"`
	L float64 `yaml:"l"`
}

// Shades are the ambient and sunlit multipliers for one time of day.
type Shades struct {
	Fill   Shade `yaml:"fill"`
	Sunlit Shade `yaml:"sunlit"`
}

// Layer is a group of trees drawn at the same depth.
type Layer struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`

	// X is where trees stand. Centered puts every tree in the middle of the canvas instead.
	X        geometry.Range `yaml:"x"`
	Centered bool           `yaml:"centered"`

	TrunkHeight geometry.Range `yaml:"trunkHeight"`
	TrunkWidth  geometry.Range `yaml:"trunkWidth"`
	// ExtraWidth is added to the trunk width to get the canopy width.
	ExtraWidth    geometry.Range `yaml:"extraWidth"`
	TrunkSegments geometry.Range `yaml:"trunkSegments"`
	ShowTrunk     bool           `yaml:"showTrunk"`

	PointsPerRow   int            `yaml:"pointsPerRow"`
	LeavesPerPoint geometry.Range `yaml:"leavesPerPoint"`
	BoundaryRadius geometry.Range `yaml:"boundaryRadius"`
	LeafWidth      geometry.Range `yaml:"leafWidth"`
	LeafHeight     geometry.Range `yaml:"leafHeight"`
	// Rows divides the tree height into canopy rows.
	Rows float64 `yaml:"rows"`
	// LeafLift is how far above the ground the canopy starts.
	LeafLift float64 `yaml:"leafLift"`

	Decay      *tree.Decay `yaml:"decay"`
	DropFallen bool        `yaml:"dropFallen"`

	// Foliage lists the colour families each tree picks one of.
	Foliage []string `yaml:"foliage"`
	Day     Shades   `yaml:"day"`
	Night   Shades   `yaml:"night"`

	// Reflect draws the layer into the lake.
	Reflect bool `yaml:"reflect"`
}

// ForestLayer places a forest of overlapping trees behind the layers. Its
// Start is measured from the left end of the horizon, with Y the lift above it.
type ForestLayer struct {
	forest.Settings `yaml:",inline"`

	Foliage []string `yaml:"foliage"`
	Day     Shades   `yaml:"day"`
	Night   Shades   `yaml:"night"`
	Reflect bool     `yaml:"reflect"`
}

type Sky struct {
	Day   palette.HSL `yaml:"day"`
	Night palette.HSL `yaml:"night"`
}

type Moon struct {
	Enabled bool           `yaml:"enabled"`
	Radius  geometry.Range `yaml:"radius"`
	Hue     geometry.Range `yaml:"hue"`
	// Reflect draws the moon into the lake too.
	Reflect bool `yaml:"reflect"`
}

type Stars struct {
	Count  int            `yaml:"count"`
	Radius geometry.Range `yaml:"radius"`
}

type Ground struct {
	Enabled bool        `yaml:"enabled"`
	Inset   float64     `yaml:"inset"`
	Color   palette.HSL `yaml:"color"`
	// Fill paints everything below the horizon with the ground colour.
	Fill bool `yaml:"fill"`
}

type Lake struct {
	Enabled bool `yaml:"enabled"`
	// Fade is how many pixels below the horizon the lake colour fades out over.
	Fade    float64     `yaml:"fade"`
	Day     palette.HSL `yaml:"day"`
	Night   palette.HSL `yaml:"night"`
	Blur    float64     `yaml:"blur"`
	Reflect bool        `yaml:"reflect"`
	// Shadow is the height of the dark band along the shore.
	Shadow float64 `yaml:"shadow"`
	// Ripples is how many soft ovals are laid over the water.
	Ripples int `yaml:"ripples"`
}

// Texture is the paper laid over the finished picture.
type Texture struct {
	// Path is an image file; when empty and Procedural is set, paper is generated.
	Path       string  `yaml:"path"`
	Procedural bool    `yaml:"procedural"`
	Scale      float64 `yaml:"scale"`
	Octaves    int     `yaml:"octaves"`
	// Strength is how dark the deepest grain gets, in [0, 1].
	Strength float64 `yaml:"strength"`
}

// Landscape is everything needed to build a picture.
type Landscape struct {
	// Base names the preset a file starts from.
	Base string `yaml:"base"`
	Name string `yaml:"name"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Bottom is the distance from the horizon to the bottom of the canvas.
	Bottom geometry.Range `yaml:"bottom"`

	TimeOfDay TimeOfDay `yaml:"timeOfDay"`
	// Season, when set, colours the background and replaces layer foliage.
	Season palette.Season `yaml:"season"`

	// SunAngle is in degrees.
	SunAngle  geometry.Range `yaml:"sunAngle"`
	DayFill   geometry.Range `yaml:"dayFill"`
	NightFill geometry.Range `yaml:"nightFill"`

	Sky   Sky   `yaml:"sky"`
	Moon  Moon  `yaml:"moon"`
	Stars Stars `yaml:"stars"`

	Forest *ForestLayer `yaml:"forest"`
	Layers []Layer      `yaml:"layers"`

	Ground  Ground  `yaml:"ground"`
	Lake    Lake    `yaml:"lake"`
	Texture Texture `yaml:"texture"`
}

var (
	ErrCanvas = errors.New("canvas must have positive width and height")
	ErrLayer  = errors.New("invalid layer")
	ErrStars  = errors.New("invalid stars")
)

// Validate reports structural problems and clamps numeric ranges into sane
// bounds. Clamping is logged; structural problems are returned.
func (l *Landscape) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCanvas, l.Width, l.Height)
	}
	switch l.TimeOfDay {
	case Day, Night, Random:
	case "":
		l.TimeOfDay = Random
	default:
		return fmt.Errorf("unknown time of day %q", l.TimeOfDay)
	}
	if l.Season != "" {
		if _, err := palette.ForSeason(l.Season); err != nil {
			return err
		}
	}

	if l.Stars.Count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrStars, l.Stars.Count)
	}

	h := float64(l.Height)
	l.Bottom = clampRange("bottom", l.Bottom, 0, h)
	l.DayFill = clampRange("dayFill", l.DayFill, 0, 1)
	l.NightFill = clampRange("nightFill", l.NightFill, 0, 1)

	for i := range l.Layers {
		layer := &l.Layers[i]
		if layer.Count < 0 {
			return fmt.Errorf("%w %q: negative count %d", ErrLayer, layer.Name, layer.Count)
		}
		if layer.Rows <= 0 {
			return fmt.Errorf("%w %q: rows must be positive", ErrLayer, layer.Name)
		}
		for _, f := range layer.Foliage {
			if _, ok := palette.Lookup(f); !ok {
				return fmt.Errorf("%w %q: unknown foliage %q", ErrLayer, layer.Name, f)
			}
		}
		layer.BoundaryRadius = clampRange(layer.Name+".boundaryRadius", layer.BoundaryRadius, 0, math.Inf(1))
	}

	if l.Forest != nil {
		if _, err := forest.ParseShape(string(l.Forest.Shape)); err != nil {
			return err
		}
	}
	if l.Texture.Strength < 0 || l.Texture.Strength > 1 {
		log.Printf("texture strength %v clamped to [0, 1]", l.Texture.Strength)
		l.Texture.Strength = math.Max(0, math.Min(1, l.Texture.Strength))
	}
	return nil
}

func clampRange(name string, r geometry.Range, lo, hi float64) geometry.Range {
	c := geometry.Range{Min: math.Max(lo, math.Min(hi, r.Min)), Max: math.Max(lo, math.Min(hi, r.Max))}
	if c != r {
		log.Printf("%s %v clamped to %v", name, r, c)
	}
	return c
}

// Horizon is the y coordinate of the ground line for a given bottom.
func (l *Landscape) Horizon(bottom float64) float64 {
	return float64(l.Height) - bottom
}
