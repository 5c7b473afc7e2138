package compose

import (
	"github.com/disintegration/imaging"
	"github.com/willbeason/vermont/pkg/preset"
	"image"
	"image/color"
	"log"
	"math"
	"runtime"
	"sync"
)

// LoadTexture reads a paper texture and stretches it over the canvas. A
// texture that cannot be read is logged and the picture goes without.
func LoadTexture(path string, width, height int) image.Image {
	img, err := imaging.Open(path)
	if err != nil {
		log.Printf("texture %s not loaded: %v", path, err)
		return nil
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// Texture returns the paper for t, or nil when the picture has none.
func Texture(t preset.Texture, width, height int, seed int64) image.Image {
	switch {
	case t.Path != "":
		return LoadTexture(t.Path, width, height)
	case t.Procedural:
		return Paper(width, height, t, seed)
	}
	return nil
}

type paperRow struct {
	Y      int
	Values []uint8
}

// Paper generates a sheet of fractal value noise that multiplies to a faint
// cold-pressed grain. Rows are generated in parallel.
func Paper(width, height int, t preset.Texture, seed int64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	scale := t.Scale
	if scale <= 0 {
		scale = 0.01
	}
	octaves := max(1, t.Octaves)
	strength := math.Max(0, math.Min(1, t.Strength))

	yChannel := make(chan int)
	go func() {
		for y := 0; y < height; y++ {
			yChannel <- y
		}
		close(yChannel)
	}()

	rowChannel := make(chan paperRow, 64)

	parallel := runtime.NumCPU()
	ywg := sync.WaitGroup{}
	ywg.Add(parallel)
	for i := 0; i < parallel; i++ {
		go func() {
			for y := range yChannel {
				row := paperRow{Y: y, Values: make([]uint8, width)}
				for x := 0; x < width; x++ {
					n := fractalNoise(float64(x)*scale, float64(y)*scale, octaves, seed)
					// n is in [-1, 1]; only the dark half darkens the paper.
					v := 1 - strength*(n+1)/2
					row.Values[x] = uint8(math.Round(v * 255))
				}
				rowChannel <- row
			}
			ywg.Done()
		}()
	}

	rwg := sync.WaitGroup{}
	rwg.Add(1)
	go func() {
		for row := range rowChannel {
			copy(img.Pix[row.Y*img.Stride:], row.Values)
		}
		rwg.Done()
	}()

	ywg.Wait()
	close(rowChannel)
	rwg.Wait()

	return img
}

func fractalNoise(x, y float64, octaves int, seed int64) float64 {
	frequency := 1.0
	amplitude := 1.0
	sum := 0.0
	total := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise(x*frequency, y*frequency, seed) * amplitude
		total += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return sum / total
}

func valueNoise(x, y float64, seed int64) float64 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))

	sx := smooth(x - float64(x0))
	sy := smooth(y - float64(y0))

	top := lerp(random2D(x0, y0, seed), random2D(x0+1, y0, seed), sx)
	bottom := lerp(random2D(x0, y0+1, seed), random2D(x0+1, y0+1, seed), sx)
	return lerp(top, bottom, sy)
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func random2D(x, y int, seed int64) float64 {
	return float64(hash3(x, y, int(seed))&0xFFFF)/0x8000 - 1.0
}

func hash3(x, y, z int) uint32 {
	h := uint32(x*374761393 + y*668265263 + z*2147483647)
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// Multiply darkens dst by tex, pixel by pixel: each channel becomes
// dst*tex/255. Alpha is left alone. tex is stretched over dst if their sizes
// differ.
func Multiply(dst *image.RGBA, tex image.Image) {
	if tex == nil {
		return
	}
	b := dst.Bounds()
	tb := tex.Bounds()
	if tb.Dx() != b.Dx() || tb.Dy() != b.Dy() {
		tex = imaging.Resize(tex, b.Dx(), b.Dy(), imaging.Linear)
		tb = tex.Bounds()
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			t := color.NRGBAModel.Convert(tex.At(tb.Min.X+x, tb.Min.Y+y)).(color.NRGBA)
			i := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			dst.Pix[i+0] = mul(dst.Pix[i+0], t.R, t.A)
			dst.Pix[i+1] = mul(dst.Pix[i+1], t.G, t.A)
			dst.Pix[i+2] = mul(dst.Pix[i+2], t.B, t.A)
		}
	}
}

// mul multiplies channel c by t, with texture alpha a mixing between no
// change and the full product.
func mul(c, t, a uint8) uint8 {
	product := uint32(c) * uint32(t) / 255
	return uint8((product*uint32(a) + uint32(c)*(255-uint32(a))) / 255)
}
