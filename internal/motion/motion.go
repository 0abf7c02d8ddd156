// Package motion holds the per-frame transform rules of the showcase: spinning
// meshes, flickering sprites and the orbiting camera. Everything here is pure
// so it can be driven by a fake clock.
package motion

import "github.com/chewxy/math32"

// Rotation is an euler rotation in radians applied in X, Y, Z order.
type Rotation struct {
	X, Y, Z float32
}

// Spin advances r by one frame: y by dt and x by half of it.
func Spin(r Rotation, dt float32) Rotation {
	r.Y = wrapAngle(r.Y + dt)
	r.X = wrapAngle(r.X + 0.5*dt)
	return r
}

func wrapAngle(a float32) float32 {
	return math32.Mod(a, 2*math32.Pi)
}

// flickerFreq is the angular frequency of the flicker wave.
const flickerFreq = 15

// flickerCutoff hides the sprite whenever the wave falls below it, giving
// short bursts instead of a smooth pulse.
const flickerCutoff = 1

// Flicker returns the uniform scale of a flickering sprite at time t seconds.
func Flicker(t float32) float32 {
	s := math32.Abs(math32.Sin(flickerFreq*t)) + 0.3
	if s < flickerCutoff {
		return 0
	}
	return s
}

// Orbit describes the camera path around the origin.
type Orbit struct {
	Distance float32
	Speed    float32
}

// DefaultOrbit is the showcase camera: distance 5, 0.01 rad per second.
var DefaultOrbit = Orbit{Distance: 5, Speed: 0.01}

// Position returns the camera position at time t. The camera circles in the
// YZ plane and always looks at the origin.
func (o Orbit) Position(t float32) [3]float32 {
	a := o.Speed * t
	return [3]float32{0, o.Distance * math32.Sin(a), o.Distance * math32.Cos(a)}
}

// Up returns an up vector perpendicular to the view direction at time t, so the
// camera does not flip when it passes over the poles.
func (o Orbit) Up(t float32) [3]float32 {
	a := o.Speed * t
	return [3]float32{0, math32.Cos(a), -math32.Sin(a)}
}
