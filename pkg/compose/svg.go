package compose

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"fmt"
	"github.com/willbeason/vermont/pkg/render"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/transforms"
	"image"
	"image/png"
	"io"
)

// reflectionOpacity stands in for the blur, which SVG output does not apply.
const reflectionOpacity = 0.6

// SVG writes s as a vector picture in the same order Raster paints it. The
// reflection is a mirrored translucent group, and the texture, if any, is
// embedded as an image with a multiply blend.
func SVG(w io.Writer, s *scene.Scene, title string, o Options) error {
	bw := bufio.NewWriter(w)
	c := render.NewVector(bw, s.Width, s.Height, title)
	width, height := float64(s.Width), float64(s.Height)

	c.NoStroke()
	c.Fill(s.Sky)
	c.Rect(0, 0, width, height)

	render.Moon(c, s.Moon)
	render.Stars(c, s.Stars)

	if s.GroundFill != nil {
		c.Fill(*s.GroundFill)
		c.Rect(0, s.Horizon, width, height-s.Horizon)
	}

	shore(c, s)
	for _, l := range s.Layers {
		layer(c, s, l, o)
	}

	render.Ticks(c, s.Ground, s.GroundColor)

	if s.Lake != nil {
		if s.Lake.Reflect {
			mirror := transforms.MirrorY(s.Horizon).SVG()
			c.Group(mirror, fmt.Sprintf("opacity:%g", reflectionOpacity), func() {
				mirrored(c, s, o)
			})
		}
		c.Push()
		c.NoStroke()
		c.Fill(s.Lake.Color)
		for _, r := range s.Lake.Ripples {
			c.Ellipse(r.Center.X, r.Center.Y, r.W, r.H)
		}
		c.Pop()
		render.Bands(c, LakeBands(s))
	}

	if o.Texture != nil {
		uri, err := DataURI(o.Texture)
		if err != nil {
			return fmt.Errorf("embed texture: %w", err)
		}
		c.Image(0, 0, s.Width, s.Height, uri, "mix-blend-mode:multiply")
	}

	c.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// DataURI encodes img as an inline PNG for SVG image links.
func DataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
