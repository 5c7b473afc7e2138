package compose

import (
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/tree"
	"github.com/willbeason/vermont/pkg/wind"
	"image"
)

// Animate paints frame of s with every leaf swayed by the breeze.
func Animate(s *scene.Scene, sway *wind.Sway, frame int, o Options) *image.RGBA {
	o.Trees = func(t *tree.Tree) *tree.Tree {
		return sway.Tree(t, frame)
	}
	return Raster(s, o)
}
