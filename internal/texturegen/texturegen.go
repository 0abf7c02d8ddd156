// Package texturegen builds the procedural textures sampled by showcase
// materials. Images are produced on the CPU and uploaded by the shader library.
package texturegen

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/noise"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// ErrUnknownTexture is returned by Named for a name with no generator.
var ErrUnknownTexture = errors.New("unknown texture")

// Size is the edge length of every generated texture.
const Size = 256

// noiseBase is the resolution the noise is generated at before upscaling,
// which keeps the grain soft.
const noiseBase = 64

var generators = map[string]func() image.Image{
	"noise":   func() image.Image { return Noise(Size) },
	"stripes": func() image.Image { return Stripes(Size, 8) },
}

// Named returns the texture registered under name.
func Named(name string) (image.Image, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
	}
	return gen(), nil
}

// Noise returns a size×size blurred monochrome noise texture.
func Noise(size int) *image.RGBA {
	src := noise.Generate(noiseBase, noiseBase, &noise.Options{Monochrome: true, NoiseFn: noise.Uniform})
	src = blur.Gaussian(src, 1.5)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Stripes returns a size×size texture of n soft vertical bands.
func Stripes(size, n int) *image.RGBA {
	if n < 1 {
		n = 1
	}
	src := image.NewRGBA(image.Rect(0, 0, 2*n, 1))
	for x := 0; x < 2*n; x++ {
		v := uint8(64)
		if x%2 == 0 {
			v = 255
		}
		src.Set(x, 0, color.RGBA{R: v, G: v, B: v, A: 255})
	}
	return transform.Resize(src, size, size, transform.Linear)
}
