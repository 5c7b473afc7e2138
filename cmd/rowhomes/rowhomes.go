package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/vermont/pkg/compose"
	"github.com/willbeason/vermont/pkg/facade"
	"github.com/willbeason/vermont/pkg/output"
	"github.com/willbeason/vermont/pkg/preset"
	"github.com/willbeason/vermont/pkg/render"
	"github.com/willbeason/vermont/pkg/rng"
	"log"
	"math"
	"os"
)

const (
	configFlag  = "config"
	seedFlag    = "seed"
	outFlag     = "out"
	formatFlag  = "format"
	textureFlag = "texture"
	paperFlag   = "paper"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rowhomes",
		Short: "Draw a street of city rowhomes",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().StringP(configFlag, "c", "", "YAML street file; fields it leaves out keep their defaults")
	cmd.Flags().Int64P(seedFlag, "s", 0, "random seed; 0 picks one from the clock")
	cmd.Flags().StringP(outFlag, "o", "", "output file; defaults to a timestamped file in out/")
	cmd.Flags().StringP(formatFlag, "f", "png", "output format: png or svg")
	cmd.Flags().String(textureFlag, "", "paper texture image multiplied over the picture")
	cmd.Flags().Bool(paperFlag, true, "multiply a generated paper grain over png output")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	flags := cmd.Flags()
	configPath, _ := flags.GetString(configFlag)
	seed, _ := flags.GetInt64(seedFlag)
	out, _ := flags.GetString(outFlag)
	format, _ := flags.GetString(formatFlag)
	texture, _ := flags.GetString(textureFlag)
	paper, _ := flags.GetBool(paperFlag)

	cfg, err := preset.LoadStreet(configPath)
	if err != nil {
		return err
	}

	seed = rng.Seed(seed)
	street := facade.NewStreet(rng.New(seed), cfg)
	log.Printf("%d rowhomes, %d street trees", len(street.Homes), len(street.Trees))

	width, height := int(math.Ceil(cfg.Width)), int(math.Ceil(cfg.Height))

	path, err := output.Path(out, format)
	if err != nil {
		return err
	}

	switch format {
	case "png":
		c := render.NewRaster(width, height)
		render.Street(c, street)
		img := c.Image()
		compose.Multiply(img, compose.Texture(preset.Texture{
			Path:       texture,
			Procedural: paper,
			Scale:      0.01,
			Octaves:    5,
			Strength:   0.25,
		}, width, height, seed))
		err = output.Image(path, img)
	case "svg":
		err = writeSVG(path, width, height, fmt.Sprintf("rowhomes (seed %d)", seed), street)
	default:
		return fmt.Errorf("unknown format %q; want png or svg", format)
	}
	if err != nil {
		return err
	}

	log.Printf("wrote %s", path)
	return nil
}

func writeSVG(path string, width, height int, title string, street *facade.Street) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	c := render.NewVector(f, width, height, title)
	render.Street(c, street)
	c.End()

	return f.Close()
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
