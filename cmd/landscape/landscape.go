package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/vermont/pkg/compose"
	"github.com/willbeason/vermont/pkg/output"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/wind"
	"image"
	"log"
	"os"
	"strings"
)

const (
	presetFlag  = "preset"
	configFlag  = "config"
	seedFlag    = "seed"
	outFlag     = "out"
	formatFlag  = "format"
	textureFlag = "texture"
	framesFlag  = "frames"
	dumpFlag    = "dump"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "landscape",
		Short: "Paint a procedural Vermont landscape",
		Long: "Paint a procedural landscape from a named preset or a YAML scene file.\n\nPresets: " +
			strings.Join(preset.Names(), ", "),
		Args: cobra.ExactArgs(0),
		RunE: runCmd,
	}

	cmd.Flags().StringP(presetFlag, "p", preset.DefaultBase, "named preset to paint")
	cmd.Flags().StringP(configFlag, "c", "", "YAML scene file; overrides --preset")
	cmd.Flags().Int64P(seedFlag, "s", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().StringP(outFlag, "o", "", "output file; defaults to a timestamped file in out/")
	cmd.Flags().StringP(formatFlag, "f", "png", "output format: png, svg or gif")
	cmd.Flags().String(textureFlag, "", "paper texture image multiplied over the picture")
	cmd.Flags().Int(framesFlag, 0, "paint this many frames of wind as an animated gif")
	cmd.Flags().String(dumpFlag, "", "write the resolved scene as YAML to this file")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	presetName, _ := flags.GetString(presetFlag)
	configPath, _ := flags.GetString(configFlag)
	seed, _ := flags.GetInt64(seedFlag)
	out, _ := flags.GetString(outFlag)
	format, _ := flags.GetString(formatFlag)
	texture, _ := flags.GetString(textureFlag)
	frames, _ := flags.GetInt(framesFlag)
	dump, _ := flags.GetString(dumpFlag)

	l, err := landscape(presetName, configPath)
	if err != nil {
		return err
	}
	if texture != "" {
		l.Texture.Path = texture
	}

	if dump != "" {
		err = preset.Write(dump, l)
		if err != nil {
			return err
		}
	}

	if frames > 1 {
		format = "gif"
	}

	seed = rng.Seed(seed)
	s := scene.Build(rng.New(seed), l)
	log.Printf("%d trees, %d leaves", treeCount(s), s.LeafCount())

	opts := compose.Options{Texture: compose.Texture(l.Texture, s.Width, s.Height, seed)}

	path, err := output.Path(out, format)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		err = output.Image(path, compose.Raster(s, opts))
	case "svg":
		err = writeSVG(path, s, fmt.Sprintf("%s (seed %d)", l.Name, seed), opts)
	case "gif":
		err = output.GIF(path, animate(s, frames, opts), 100/wind.DefaultConfig().FramesPerCycle)
	default:
		return fmt.Errorf("unknown format %q; want png, svg or gif", format)
	}
	if err != nil {
		return err
	}

	log.Printf("wrote %s", path)
	return nil
}

func landscape(name, path string) (preset.Landscape, error) {
	if path != "" {
		return preset.Load(path)
	}
	return preset.Named(name)
}

func treeCount(s *scene.Scene) int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Trees)
	}
	return n
}

func writeSVG(path string, s *scene.Scene, title string, opts compose.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = compose.SVG(f, s, title, opts)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func animate(s *scene.Scene, frames int, opts compose.Options) []image.Image {
	cfg := wind.DefaultConfig()
	if frames > 0 {
		cfg.Frames = frames
	}
	sway := wind.NewSway(cfg)

	images := make([]image.Image, cfg.Frames)
	for i := range images {
		images[i] = compose.Animate(s, sway, i, opts)
	}
	return images
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
