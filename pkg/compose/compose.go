package compose

import (
	"github.com/disintegration/imaging"
	"github.com/willbeason/vermont/pkg/palette"
	"github.com/willbeason/vermont/pkg/primitives"
	"github.com/willbeason/vermont/pkg/render"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/tree"
	"image"
	"log"
)

// Options controls the finishing passes of a composition.
type Options struct {
	// Texture is multiplied over the finished picture. Nil skips the pass.
	Texture image.Image

	// Trees replaces each scene tree before it is drawn, e.g. to sway it
	// in the wind. Nil draws trees as built.
	Trees func(t *tree.Tree) *tree.Tree
}

func (o Options) tree(t *tree.Tree) *tree.Tree {
	if o.Trees == nil {
		return t
	}
	return o.Trees(t)
}

// Raster paints s back to front: sky, moon and stars, shore shadow, tree
// layers, ground line, reflection, ripples, lake fade and finally the paper
// texture.
func Raster(s *scene.Scene, o Options) *image.RGBA {
	if s.Width <= 0 || s.Height <= 0 {
		log.Printf("canvas %dx%d has no pixels", s.Width, s.Height)
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	c := render.NewRaster(s.Width, s.Height)
	w, h := float64(s.Width), float64(s.Height)

	c.NoStroke()
	c.Fill(s.Sky)
	c.Rect(0, 0, w, h)

	render.Moon(c, s.Moon)
	render.Stars(c, s.Stars)

	if s.GroundFill != nil {
		c.Push()
		c.NoStroke()
		c.Fill(*s.GroundFill)
		c.Rect(0, s.Horizon, w, h-s.Horizon)
		c.Pop()
	}

	shore(c, s)
	for _, l := range s.Layers {
		layer(c, s, l, o)
	}

	render.Ticks(c, s.Ground, s.GroundColor)

	if s.Lake != nil {
		if s.Lake.Reflect {
			reflection(c, s, o)
		}
		ripples(c, s)
		render.Bands(c, LakeBands(s))
	}

	img := c.Image()
	Multiply(img, o.Texture)
	return img
}

// LakeBands fades the lake colour out over the top of the water.
func LakeBands(s *scene.Scene) []primitives.Band {
	if s.Lake == nil {
		return nil
	}
	return primitives.GradientRect(0, s.Horizon, float64(s.Width), s.Lake.Fade, false, s.Lake.Color)
}

func trunkColor(s *scene.Scene) palette.HSL {
	if s.Night {
		return render.TrunkNight
	}
	return render.TrunkDay
}

func layer(c render.Canvas, s *scene.Scene, l scene.Layer, o Options) {
	trunk := trunkColor(s)
	for _, t := range l.Trees {
		render.Tree(c, o.tree(t), l.ShowTrunk, trunk)
	}
}

// shore paints the lake's shadow band just above the horizon.
func shore(c render.Canvas, s *scene.Scene) {
	if s.Lake == nil || s.Lake.ShadowHeight <= 0 {
		return
	}
	c.Push()
	c.NoStroke()
	c.Fill(s.Lake.Shadow)
	c.Rect(0, s.Horizon-s.Lake.ShadowHeight, float64(s.Width), s.Lake.ShadowHeight)
	c.Pop()
}

// mirrored draws everything above the horizon that shows in the water: the
// moon, the stars, the shore shadow and the reflecting layers recoloured.
func mirrored(c render.Canvas, s *scene.Scene, o Options) {
	if s.Moon != nil && s.Moon.Reflect {
		render.Moon(c, s.Moon)
	}
	render.Stars(c, s.Stars)
	shore(c, s)
	for _, l := range s.Reflected() {
		layer(c, s, l, o)
	}
}

// reflection draws the mirrored part of the picture into a buffer, flips it
// about the horizon and blurs it onto the lake.
func reflection(c *render.Raster, s *scene.Scene, o Options) {
	buf := render.NewRaster(s.Width, s.Height)
	mirrored(buf, s, o)

	flipped := imaging.FlipV(buf.Image())
	if s.Lake.Blur > 0 {
		flipped = imaging.Blur(flipped, s.Lake.Blur)
	}

	// Row r of the flipped buffer mirrors row H-1-r of the scene, so it
	// belongs at 2*horizon-(H-1-r). Only rows that land below the horizon
	// are kept.
	horizon := int(s.Horizon)
	top := s.Height - horizon
	if top < 0 || top >= s.Height {
		return
	}
	water := imaging.Crop(flipped, image.Rect(0, top, s.Width, s.Height))
	c.DrawImage(water, 0, horizon)
}

// ripples lays the lake's ovals over the reflection. The water is blurred
// after each oval is added, so earlier ovals are softened more than once.
func ripples(c *render.Raster, s *scene.Scene) {
	horizon := int(s.Horizon)
	depth := s.Height - horizon
	if len(s.Lake.Ripples) == 0 || depth <= 0 || horizon < 0 {
		return
	}

	var water image.Image = image.NewNRGBA(image.Rect(0, 0, s.Width, depth))
	for _, r := range s.Lake.Ripples {
		buf := render.NewRasterFor(water)
		buf.NoStroke()
		buf.Fill(s.Lake.Color)
		buf.Ellipse(r.Center.X, r.Center.Y-float64(horizon), r.W, r.H)
		water = imaging.Blur(buf.Image(), r.Blur)
	}
	c.DrawImage(water, 0, horizon)
}
