package texturegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamed(t *testing.T) {
	for _, name := range []string{"noise", "stripes"} {
		img, err := Named(name)
		require.NoError(t, err, name)
		assert.Equal(t, Size, img.Bounds().Dx(), name)
		assert.Equal(t, Size, img.Bounds().Dy(), name)
	}

	_, err := Named("plaid")
	assert.ErrorIs(t, err, ErrUnknownTexture)
}

func TestNoiseIsMonochrome(t *testing.T) {
	img := Noise(32)
	require.Equal(t, 32, img.Bounds().Dx())
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c := img.RGBAAt(x, y)
			assert.Equal(t, c.R, c.G)
			assert.Equal(t, c.G, c.B)
		}
	}
}

func TestStripesAlternate(t *testing.T) {
	img := Stripes(64, 4)
	// band centers: bright at even bands, dark at odd
	bright := img.RGBAAt(4, 10).R
	dark := img.RGBAAt(12, 10).R
	assert.Greater(t, bright, dark)
}
