package camera

import (
	"math"

	"github.com/adinfinit/g"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit circles an eye around Target at a fixed radius and height.
type Orbit struct {
	Target g.Vec3
	Radius float32
	Height float32

	// Speed is in radians per second.
	Speed float32
	Angle float32
}

// Advance moves the eye along the circle.
func (orbit *Orbit) Advance(dt float32) {
	orbit.Angle += orbit.Speed * dt
}

// Eye returns the current eye position.
func (orbit *Orbit) Eye() g.Vec3 {
	sn, cs := g.Sincos(orbit.Angle)
	return orbit.Target.Add(g.V3(sn*orbit.Radius, orbit.Height, cs*orbit.Radius))
}

// View returns the look-at matrix from Eye to Target.
func (orbit *Orbit) View() mgl32.Mat4 {
	eye := orbit.Eye()
	return mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{orbit.Target.X, orbit.Target.Y, orbit.Target.Z},
		mgl32.Vec3{0, 1, 0},
	)
}

func sin(v float32) float32 { return float32(math.Sin(float64(v))) }
func cos(v float32) float32 { return float32(math.Cos(float64(v))) }
