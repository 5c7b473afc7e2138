package preset

import (
	"fmt"
	"github.com/willbeason/vermont/pkg/forest"
	"github.com/willbeason/vermont/pkg/geometry"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/tree"
	"sort"
)

func r(lo, hi float64) geometry.Range {
	return geometry.Range{Min: lo, Max: hi}
}

var fallFoliage = []string{"green", "yellow", "orange", "red"}

var (
	nearShades = [2]Shades{
		{Fill: Shade{0.9, 0.5}, Sunlit: Shade{0.8, 0.95}},
		{Fill: Shade{0.3, 0.2}, Sunlit: Shade{0.1, 0.5}},
	}
	middleShades = [2]Shades{
		{Fill: Shade{0.5, 0.4}, Sunlit: Shade{0.5, 0.8}},
		{Fill: Shade{0.2, 0.1}, Sunlit: Shade{0.1, 0.45}},
	}
	backShades = [2]Shades{
		{Fill: Shade{0.3, 0.5}, Sunlit: Shade{0.4, 0.75}},
		{Fill: Shade{0.2, 0.13}, Sunlit: Shade{0.1, 0.3}},
	}
)

func layer(name string, shades [2]Shades) Layer {
	return Layer{
		Name:          name,
		ExtraWidth:    r(0, 20),
		TrunkSegments: r(4, 8),
		Rows:          5,
		Foliage:       fallFoliage,
		Day:           shades[0],
		Night:         shades[1],
	}
}

func vermont() Landscape {
	w := 1000.0

	back := layer("back", backShades)
	back.Count = 15
	back.X = r(-100, w+100)
	back.TrunkHeight, back.TrunkWidth = r(215, 250), r(150, 175)
	back.PointsPerRow = 15
	back.LeavesPerPoint = r(150, 225)
	back.BoundaryRadius = r(25, 30)
	back.LeafWidth, back.LeafHeight = r(2, 3), r(4, 5)
	back.Rows = 10
	back.LeafLift = 30
	back.Reflect = true

	middle := layer("middle", middleShades)
	middle.Count = 13
	middle.X = r(-100, w+100)
	middle.TrunkHeight, middle.TrunkWidth = r(150, 200), r(100, 150)
	middle.PointsPerRow = 10
	middle.LeavesPerPoint = r(100, 150)
	middle.BoundaryRadius = r(28, 30)
	middle.LeafWidth, middle.LeafHeight = r(2, 3), r(4, 5)
	middle.Rows = 10
	middle.LeafLift = 30
	middle.Reflect = true

	front := layer("front", nearShades)
	front.Count = 20
	front.X = r(-100, w+100)
	front.TrunkHeight, front.TrunkWidth = r(25, 50), r(25, 50)
	front.PointsPerRow = 3
	front.LeavesPerPoint = r(300, 450)
	front.BoundaryRadius = r(20, 30)
	front.LeafWidth, front.LeafHeight = r(1, 1), r(2, 2)
	front.LeafLift = 30
	front.Reflect = true

	lone := layer("lone", nearShades)
	lone.Count = 1
	lone.Centered = true
	lone.TrunkHeight, lone.TrunkWidth = r(50, 70), r(20, 30)
	lone.ShowTrunk = true
	lone.PointsPerRow = 3
	lone.LeavesPerPoint = r(200, 300)
	lone.BoundaryRadius = r(20, 30)
	lone.LeafWidth, lone.LeafHeight = r(1, 1), r(2, 2)
	lone.LeafLift = 15

	return Landscape{
		Name:      "vermont",
		Width:     int(w),
		Height:    600,
		Bottom:    r(300, 300),
		TimeOfDay: Random,
		SunAngle:  r(200, 340),
		DayFill:   r(0.1, 0.9),
		NightFill: r(0.1, 0.5),
		Sky: Sky{
			Day:   palette.New(210.8, 88.7, 68.6),
			Night: palette.New(223, 43, 18),
		},
		Moon:   Moon{Enabled: true, Radius: r(50, 350), Hue: r(52, 33), Reflect: true},
		Stars:  Stars{Count: 250, Radius: r(0.25, 1)},
		Layers: []Layer{back, middle, front, lone},
		Ground: Ground{Enabled: true, Inset: 25, Color: palette.New(17, 20, 11)},
		Lake: Lake{
			Enabled: true,
			Fade:    100,
			Day:     palette.New(215, 40.7, 64.2),
			Night:   palette.New(223, 68, 8),
			Blur:    3,
			Reflect: true,
			Shadow:  18,
			Ripples: 4,
		},
		Texture: Texture{Procedural: true, Scale: 0.01, Octaves: 5, Strength: 0.25},
	}
}

func vermontAt(t TimeOfDay) func() Landscape {
	return func() Landscape {
		l := vermont()
		l.Name = "vermont-" + string(t)
		l.TimeOfDay = t
		return l
	}
}

func loneTree() Landscape {
	l := vermont()
	l.Name = "lone-tree"
	l.Layers = []Layer{l.Layers[3]}
	l.Layers[0].Reflect = true
	return l
}

// fallSunlight is one big tree lit low from the side, leaves thinning toward the top.
func fallSunlight() Landscape {
	l := vermont()
	l.Name = "fall-sunlight"
	l.TimeOfDay = Day
	l.Season = palette.Fall
	l.SunAngle = r(190, 220)
	l.DayFill = r(0.6, 0.9)

	big := layer("lone", nearShades)
	big.Count = 1
	big.Centered = true
	big.TrunkHeight, big.TrunkWidth = r(220, 260), r(140, 180)
	big.TrunkSegments = r(8, 12)
	big.ShowTrunk = true
	big.PointsPerRow = 8
	big.LeavesPerPoint = r(300, 350)
	big.Decay = &tree.Decay{Step: 10, Floor: 5}
	big.BoundaryRadius = r(25, 35)
	big.LeafWidth, big.LeafHeight = r(1, 2), r(2, 3)
	big.Rows = 10
	big.LeafLift = 15
	big.Reflect = true
	l.Layers = []Layer{big}
	return l
}

func seasonal(s palette.Season) func() Landscape {
	return func() Landscape {
		p, _ := palette.ForSeason(s)
		return Landscape{
			Name:      "seasonal-" + string(s),
			Width:     800,
			Height:    800,
			Bottom:    r(20, 20),
			TimeOfDay: Day,
			Season:    s,
			SunAngle:  r(200, 340),
			DayFill:   r(0.1, 0.9),
			NightFill: r(0.1, 0.5),
			Sky:       Sky{Day: p.Background, Night: p.Background},
			Forest: &ForestLayer{
				Settings: forestSettings(forest.Flat, 800, 150),
				Day:      Shades{Fill: Shade{1, 1}, Sunlit: Shade{1, 1.1}},
				Night:    Shades{Fill: Shade{1, 1}, Sunlit: Shade{1, 1}},
			},
			Ground:  Ground{Enabled: true, Inset: 25, Color: p.Ground, Fill: s == palette.Winter},
			Texture: Texture{Procedural: true, Scale: 0.02, Octaves: 4, Strength: 0.2},
		}
	}
}

func forestSettings(shape forest.Shape, width, height float64) forest.Settings {
	return forest.Settings{
		Shape:          shape,
		Width:          width - 200,
		Height:         height,
		Columns:        12,
		TreeHeight:     r(90, 130),
		TreeWidth:      r(50, 70),
		TrunkHeight:    r(40, 60),
		TrunkWidth:     r(20, 30),
		TrunkSegments:  5,
		PointsPerRow:   4,
		LeavesPerPoint: r(80, 120),
		LeafWidth:      r(2, 3),
		LeafHeight:     r(4, 5),
		BoundaryRadius: r(15, 25),
		Jitter:         25,
		Decay:          &tree.Decay{Step: 10, Floor: 5},
	}
}

func forestShape(shape forest.Shape) func() Landscape {
	return func() Landscape {
		l := vermont()
		l.Name = "forest-" + string(shape)
		l.TimeOfDay = Day
		l.Forest = &ForestLayer{
			Settings: forestSettings(shape, float64(l.Width), 200),
			Foliage:  fallFoliage,
			Day:      middleShades[0],
			Night:    middleShades[1],
			Reflect:  true,
		}
		l.Layers = l.Layers[2:]
		return l
	}
}

var builtin = map[string]func() Landscape{
	"vermont":       vermont,
	"vermont-day":   vermontAt(Day),
	"vermont-night": vermontAt(Night),
	"lone-tree":     loneTree,
	"fall-sunlight": fallSunlight,
}

func init() {
	for _, s := range []palette.Season{palette.Spring, palette.Summer, palette.Fall, palette.Winter} {
		builtin["seasonal-"+string(s)] = seasonal(s)
	}
	builtin["seasonal"] = seasonal(palette.Fall)
	for _, s := range forest.Shapes {
		builtin["forest-"+string(s)] = forestShape(s)
	}
}

// Named returns a fresh copy of a built-in preset.
func Named(name string) (Landscape, error) {
	f, ok := builtin[name]
	if !ok {
		return Landscape{}, fmt.Errorf("unknown preset %q", name)
	}
	return f(), nil
}

// Names lists the built-in presets in order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
