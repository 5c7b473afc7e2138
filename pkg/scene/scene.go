package scene

import (
	"github.com/willbeason/vermont/pkg/forest"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/tree"
	"log"
	"math"
)

// A Layer is a set of trees drawn together, back to front.
type Layer struct {
	Name      string
	Trees     []*tree.Tree
	Reflect   bool
	ShowTrunk bool
}

type Moon struct {
	Center geometry.XY
	Radius float64
	Color  palette.HSL
	// Reflect draws the moon into the lake too.
	Reflect bool
}

type Star struct {
	Center geometry.XY
	Radius float64
}

// StarColor is the colour stars are painted in.
var StarColor = palette.New(255, 100, 100)

// Lake is the water below the horizon.
type Lake struct {
	Color   palette.HSL
	Fade    float64
	Blur    float64
	Reflect bool

	// Shadow is a dark band of ShadowHeight along the shore. It is drawn
	// behind the trees and reflected with them.
	Shadow       palette.HSL
	ShadowHeight float64

	Ripples []Ripple
}

// A Ripple is a wide, flat oval of lake colour laid over the reflection.
// Ripples further from the shore are taller and softer.
type Ripple struct {
	Center geometry.XY
	W, H   float64
	Blur   float64
}

var (
	ShadowDay   = palette.New(30, 30, 30)
	ShadowNight = palette.New(30, 30, 12)
)

// Scene is a fully generated picture, ready to be drawn any number of times.
// Nothing in it changes after Build returns.
type Scene struct {
	Width, Height int
	Horizon       float64

	Night    bool
	SunAngle float64
	SunFill  float64
	Sky      palette.HSL
	Season   palette.Season

	Moon  *Moon
	Stars []Star

	// Layers are ordered back to front.
	Layers []Layer

	Ground      []primitives.Tick
	GroundColor palette.HSL
	// GroundFill, when set, covers everything below the horizon.
	GroundFill *palette.HSL

	// Lake is nil when the picture has no water.
	Lake *Lake

	Texture preset.Texture
}

// Build generates every element of a picture from l.
func Build(src rng.Source, l preset.Landscape) *Scene {
	s := &Scene{
		Width:   l.Width,
		Height:  l.Height,
		Season:  l.Season,
		Texture: l.Texture,
	}

	tod := l.TimeOfDay
	if tod == preset.Random || tod == "" {
		tod = rng.Choice(src, []preset.TimeOfDay{preset.Day, preset.Night})
	}
	s.Night = tod == preset.Night

	bottom := rng.Between(src, l.Bottom)
	s.Horizon = l.Horizon(bottom)
	s.SunAngle = rng.Between(src, l.SunAngle) * math.Pi / 180
	if s.Night {
		s.SunFill = rng.Between(src, l.NightFill)
		s.Sky = l.Sky.Night
	} else {
		s.SunFill = rng.Between(src, l.DayFill)
		s.Sky = l.Sky.Day
	}
	log.Printf("%s: %s, sun at %.0f°, fill %.2f", l.Name, tod, s.SunAngle*180/math.Pi, s.SunFill)

	if s.Night && l.Moon.Enabled {
		s.Moon = buildMoon(src, l, s.SunAngle, bottom)
	}
	if s.Night {
		s.Stars = buildStars(src, l)
	}

	var seasonal *palette.SeasonPalette
	if l.Season != "" {
		p, err := palette.ForSeason(l.Season)
		if err != nil {
			log.Printf("ignoring season: %v", err)
		} else {
			seasonal = &p
		}
	}

	light := &tree.Light{Angle: s.SunAngle, FillPercentage: s.SunFill}
	if l.Forest != nil {
		s.Layers = append(s.Layers, buildForest(src, l.Forest, s, light, seasonal))
	}
	for _, layer := range l.Layers {
		s.Layers = append(s.Layers, buildLayer(src, layer, s, light, seasonal))
	}

	if l.Ground.Enabled {
		s.Ground = primitives.BrokenLine(src, l.Ground.Inset, s.Horizon, float64(l.Width)-l.Ground.Inset, primitives.GroundStyle)
		s.GroundColor = l.Ground.Color
		if l.Ground.Fill {
			c := l.Ground.Color
			s.GroundFill = &c
		}
	}

	if l.Lake.Enabled {
		c := l.Lake.Day
		if s.Night {
			c = l.Lake.Night
		}
		s.Lake = &Lake{
			Color:        c,
			Fade:         l.Lake.Fade,
			Blur:         l.Lake.Blur,
			Reflect:      l.Lake.Reflect,
			Shadow:       ShadowDay,
			ShadowHeight: l.Lake.Shadow,
			Ripples:      buildRipples(src, l.Lake.Ripples, s),
		}
		if s.Night {
			s.Lake.Shadow = ShadowNight
		}
	}
	return s
}

// buildRipples scatters n ovals over the water, centred near the middle of
// the canvas and much wider than it.
func buildRipples(src rng.Source, n int, s *Scene) []Ripple {
	w := float64(s.Width)
	depth := float64(s.Height) - s.Horizon
	if depth <= 0 {
		return nil
	}

	var ripples []Ripple
	for i := 0; i < n; i++ {
		y := src.Uniform(0, depth)
		ripples = append(ripples, Ripple{
			Center: geometry.XY{X: src.Uniform(w*0.4, w*0.6), Y: s.Horizon + y},
			W:      src.Uniform(1.6*w, 2*w),
			H:      geometry.Map(y, geometry.Range{Max: depth}, geometry.Range{Min: 5, Max: 80}),
			Blur:   geometry.Map(y, geometry.Range{Max: depth}, geometry.Range{Max: 3}),
		})
	}
	return ripples
}

// buildMoon places the moon where the sun would be: an angle of 180° puts it
// at the left edge and 360° at the right. Lower moons are bigger and warmer.
func buildMoon(src rng.Source, l preset.Landscape, sunAngle, bottom float64) *Moon {
	sky := float64(l.Height) - bottom
	x := geometry.Map(sunAngle, geometry.Range{Min: math.Pi, Max: 2 * math.Pi}, geometry.Range{Min: 0, Max: float64(l.Width)})
	y := src.Uniform(0, sky)
	r := geometry.Map(y, geometry.Range{Min: 0, Max: sky}, l.Moon.Radius)
	hue := l.Moon.Hue.Clamp(geometry.Map(y, geometry.Range{Min: 0, Max: sky - r}, l.Moon.Hue))
	return &Moon{
		Center:  geometry.XY{X: x, Y: y},
		Radius:  r,
		Color:   palette.New(hue, 78, 92),
		Reflect: l.Moon.Reflect,
	}
}

func buildStars(src rng.Source, l preset.Landscape) []Star {
	if l.Stars.Count < 0 {
		log.Printf("star count %d treated as 0", l.Stars.Count)
		return nil
	}
	stars := make([]Star, l.Stars.Count)
	for i := range stars {
		stars[i] = Star{
			Center: geometry.XY{X: src.Uniform(0, float64(l.Width)), Y: src.Uniform(0, float64(l.Height))},
			Radius: rng.Between(src, l.Stars.Radius),
		}
	}
	return stars
}

func shadesFor(s *Scene, day, night preset.Shades) preset.Shades {
	if s.Night {
		return night
	}
	return day
}

// foliage picks one colour family for a tree and returns its ambient and
// sunlit colour functions.
func foliage(src rng.Source, names []string, shades preset.Shades, seasonal *palette.SeasonPalette) (palette.ColorFunc, palette.ColorFunc) {
	family := palette.Green
	switch {
	case seasonal != nil:
		family = seasonal.Foliage
	case len(names) > 0:
		name := rng.Choice(src, names)
		if f, ok := palette.Lookup(name); ok {
			family = f
		} else {
			log.Printf("unknown foliage %q, using green", name)
		}
	}
	return family.Func(shades.Fill.S, shades.Fill.L), family.Func(shades.Sunlit.S, shades.Sunlit.L)
}

func buildLayer(src rng.Source, l preset.Layer, s *Scene, light *tree.Light, seasonal *palette.SeasonPalette) Layer {
	out := Layer{Name: l.Name, Reflect: l.Reflect, ShowTrunk: l.ShowTrunk}
	shades := shadesFor(s, l.Day, l.Night)

	for i := 0; i < l.Count; i++ {
		trunkHeight := rng.Between(src, l.TrunkHeight)
		trunkWidth := rng.Between(src, l.TrunkWidth)
		treeHeight := trunkHeight
		treeWidth := trunkWidth + rng.Between(src, l.ExtraWidth)

		x := float64(s.Width) / 2
		if !l.Centered {
			x = rng.Between(src, l.X)
		}
		start := geometry.XY{X: x, Y: s.Horizon}
		mid := geometry.XY{X: x, Y: start.Y - treeHeight/2}
		bulge := geometry.XY{X: x, Y: src.Uniform(mid.Y, start.Y-treeHeight/3)}
		fills, sunlit := foliage(src, l.Foliage, shades, seasonal)

		out.Trees = append(out.Trees, tree.New(src, tree.Config{
			Start:          start,
			Midpoint:       mid,
			Bulge:          bulge,
			TreeHeight:     treeHeight,
			TreeWidth:      treeWidth,
			TrunkHeight:    trunkHeight,
			TrunkWidth:     trunkWidth,
			TrunkSegments:  int(rng.Between(src, l.TrunkSegments)),
			HideTrunk:      !l.ShowTrunk,
			LeavesStartY:   s.Horizon - l.LeafLift,
			RowHeight:      treeHeight / l.Rows,
			PointsPerRow:   l.PointsPerRow,
			LeavesPerPoint: int(rng.Between(src, l.LeavesPerPoint)),
			Decay:          l.Decay,
			LeafWidth:      l.LeafWidth,
			LeafHeight:     l.LeafHeight,
			BoundaryRadius: l.BoundaryRadius,
			Fills:          fills,
			FillsSunlight:  sunlit,
			Light:          light,
			DropFallen:     l.DropFallen,
		}))
	}
	return out
}

func buildForest(src rng.Source, f *preset.ForestLayer, s *Scene, light *tree.Light, seasonal *palette.SeasonPalette) Layer {
	settings := f.Settings
	settings.Start = geometry.XY{X: settings.Start.X, Y: s.Horizon - settings.Start.Y}
	if settings.Light == nil {
		settings.Light = light
	}
	settings.Fills, settings.FillsSunlight = foliage(src, f.Foliage, shadesFor(s, f.Day, f.Night), seasonal)
	return Layer{
		Name:      "forest",
		Trees:     forest.Generate(src, settings),
		Reflect:   f.Reflect,
		ShowTrunk: true,
	}
}

// Reflected returns the trees of every reflecting layer with their leaves
// recoloured for the water. The scene itself is not changed.
func (s *Scene) Reflected() []Layer {
	var layers []Layer
	for _, l := range s.Layers {
		if !l.Reflect {
			continue
		}
		r := l
		r.Trees = make([]*tree.Tree, len(l.Trees))
		for i, t := range l.Trees {
			r.Trees[i] = t.Recolored(palette.HSL.Reflected)
		}
		layers = append(layers, r)
	}
	return layers
}

// LeafCount is the number of leaves in the scene.
func (s *Scene) LeafCount() int {
	n := 0
	for _, l := range s.Layers {
		for _, t := range l.Trees {
			n += len(t.Leaves)
		}
	}
	return n
}
