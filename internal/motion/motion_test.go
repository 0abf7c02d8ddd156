package motion

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestSpin(t *testing.T) {
	r := Spin(Rotation{}, 0.5)
	assert.InDelta(t, 0.5, r.Y, 1e-6)
	assert.InDelta(t, 0.25, r.X, 1e-6)
	assert.Zero(t, r.Z)

	r = Rotation{Y: 2*math32.Pi - 0.1}
	r = Spin(r, 0.2)
	assert.InDelta(t, 0.1, r.Y, 1e-5)
}

func TestFlickerZeroesLowValues(t *testing.T) {
	assert.Zero(t, Flicker(0), "0.3 is below the cutoff")

	peak := math32.Pi / (2 * flickerFreq)
	assert.InDelta(t, 1.3, Flicker(peak), 1e-5)

	for i := 0; i < 1000; i++ {
		v := Flicker(float32(i) * 0.0137)
		assert.True(t, v == 0 || (v >= 1 && v <= 1.3+1e-5), "flicker %v", v)
	}
}

func TestOrbitRadius(t *testing.T) {
	o := DefaultOrbit
	for _, ts := range []float32{0, 1, 50, 157, 1000} {
		p := o.Position(ts)
		r := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
		assert.InDelta(t, 5, r, 1e-4)
		assert.Zero(t, p[0])

		up := o.Up(ts)
		dot := p[0]*up[0] + p[1]*up[1] + p[2]*up[2]
		assert.InDelta(t, 0, dot, 1e-4)
	}
	assert.Equal(t, [3]float32{0, 0, 5}, o.Position(0))
}
