package main

import (
	"context"
	"github.com/spf13/cobra"
	"github.com/willbeason/vermont/pkg/compose"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/rng"
	"github.com/willbeason/vermont/pkg/scene"
	"github.com/willbeason/vermont/pkg/viewer"
	"github.com/willbeason/vermont/pkg/wind"
	"image"
	"os"
)

const (
	presetFlag = "preset"
	configFlag = "config"
	seedFlag   = "seed"
	windFlag   = "wind"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Show a landscape in a window; click to paint a new one",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().StringP(presetFlag, "p", preset.DefaultBase, "named preset to paint")
	cmd.Flags().StringP(configFlag, "c", "", "YAML scene file; overrides --preset")
	cmd.Flags().Int64P(seedFlag, "s", 0, "seed of the first picture; 0 picks one from the clock")
	cmd.Flags().Bool(windFlag, false, "animate the trees swaying in the wind")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	presetName, _ := flags.GetString(presetFlag)
	configPath, _ := flags.GetString(configFlag)
	seed, _ := flags.GetInt64(seedFlag)
	animate, _ := flags.GetBool(windFlag)

	var l preset.Landscape
	var err error
	if configPath != "" {
		l, err = preset.Load(configPath)
	} else {
		l, err = preset.Named(presetName)
	}
	if err != nil {
		return err
	}

	var sway *wind.Sway
	if animate {
		sway = wind.NewSway(wind.DefaultConfig())
	}

	build := func(seed int64) []image.Image {
		s := scene.Build(rng.New(seed), l)
		opts := compose.Options{Texture: compose.Texture(l.Texture, s.Width, s.Height, seed)}
		if sway == nil {
			return []image.Image{compose.Raster(s, opts)}
		}

		frames := make([]image.Image, len(sway.Offsets))
		for i := range frames {
			frames[i] = compose.Animate(s, sway, i, opts)
		}
		return frames
	}

	return viewer.Run(l.Name, l.Width, l.Height, build, seed)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
