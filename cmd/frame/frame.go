package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/vermont/pkg/compose"
	"github.com/willbeason/vermont/pkg/frame"
	"github.com/willbeason/vermont/pkg/output"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/render"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/scene"
	"image"
	"log"
	"math"
	"os"
)

const (
	configFlag = "config"
	presetFlag = "preset"
	seedFlag   = "seed"
	outFlag    = "out"
	formatFlag = "format"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Draw an ornate picture frame, optionally around a landscape",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().StringP(configFlag, "c", "", "YAML frame file; fields it leaves out keep their defaults")
	cmd.Flags().StringP(presetFlag, "p", "", "landscape preset to frame; the frame is sized to fit it")
	cmd.Flags().Int64P(seedFlag, "s", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().StringP(outFlag, "o", "", "output file; defaults to a timestamped file in out/")
	cmd.Flags().StringP(formatFlag, "f", "png", "output format: png or svg")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	configPath, _ := flags.GetString(configFlag)
	presetName, _ := flags.GetString(presetFlag)
	seed, _ := flags.GetInt64(seedFlag)
	out, _ := flags.GetString(outFlag)
	format, _ := flags.GetString(formatFlag)

	cfg, err := preset.LoadFrame(configPath)
	if err != nil {
		return err
	}

	seed = rng.Seed(seed)
	src := rng.New(seed)

	var picture image.Image
	if presetName != "" {
		l, err := preset.Named(presetName)
		if err != nil {
			return err
		}
		cfg.InnerWidth, cfg.InnerHeight = float64(l.Width), float64(l.Height)

		s := scene.Build(src, l)
		picture = compose.Raster(s, compose.Options{Texture: compose.Texture(l.Texture, s.Width, s.Height, seed)})
	}

	f := frame.New(src, cfg)
	log.Printf("frame %vx%v, rails %v/%v, %d mouldings", f.Width, f.Height, f.TopWidth, f.SideWidth, len(f.Mouldings))

	width, height := int(math.Ceil(f.Width)), int(math.Ceil(f.Height))

	path, err := output.Path(out, format)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		c := render.NewRaster(width, height)
		if picture != nil {
			c.DrawImage(picture, int(f.SideWidth), int(f.TopWidth))
		}
		render.Frame(c, f)
		err = output.Image(path, c.Image())
	case "svg":
		err = writeSVG(path, width, height, fmt.Sprintf("frame (seed %d)", seed), f, picture)
	default:
		return fmt.Errorf("unknown format %q; want png or svg", format)
	}
	if err != nil {
		return err
	}

	log.Printf("wrote %s", path)
	return nil
}

func writeSVG(path string, width, height int, title string, f *frame.Frame, picture image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	c := render.NewVector(file, width, height, title)
	if picture != nil {
		uri, err := compose.DataURI(picture)
		if err != nil {
			_ = file.Close()
			return fmt.Errorf("embed picture: %w", err)
		}
		inner := f.Inner()
		c.Image(int(inner.X), int(inner.Y), int(inner.W), int(inner.H), uri)
	}
	render.Frame(c, f)
	c.End()

	return file.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
