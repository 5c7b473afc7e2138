package output

import (
	"fmt"
	"github.com/disintegration/imaging"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"time"
)

// Dir is where pictures go when no path is given.
const Dir = "out"

// Path returns path, or a timestamped file in Dir when path is empty. The
// file's directory is created if needed.
func Path(path, ext string) (string, error) {
	if path == "" {
		path = filepath.Join(Dir, fmt.Sprintf("%s.%s", time.Now().Format("20060102150405"), ext))
	}

	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return "", err
	}

	return path, nil
}

// Image saves img in the format its extension names.
func Image(path string, img image.Image) error {
	err := imaging.Save(img, path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// GIF saves frames as a looping animation, delay hundredths of a second
// apart.
func GIF(path string, frames []image.Image, delay int) error {
	anim := &gif.GIF{}
	for _, frame := range frames {
		b := frame.Bounds()
		p := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(p, b, frame, b.Min)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = gif.EncodeAll(f, anim)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}

	return f.Close()
}
