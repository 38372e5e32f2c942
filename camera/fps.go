// Package camera implements the view transforms used by the demos.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

const (
	DefaultYaw         = -90
	DefaultPitch       = 0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45

	MinZoom  = 1
	MaxZoom  = 45
	MaxPitch = 89
)

// FPS is a first-person camera driven by keyboard and mouse.
// Angles are in degrees.
type FPS struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32
	Zoom  float32

	Speed       float32
	Sensitivity float32

	front mgl32.Vec3
	right mgl32.Vec3
	up    mgl32.Vec3
}

// NewFPS returns a camera at position looking down -Z.
func NewFPS(position mgl32.Vec3) *FPS {
	camera := &FPS{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Zoom:        DefaultZoom,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
	}
	camera.update()
	return camera
}

func (camera *FPS) Front() mgl32.Vec3 { return camera.front }
func (camera *FPS) Right() mgl32.Vec3 { return camera.right }
func (camera *FPS) Up() mgl32.Vec3 { return camera.up }

// View returns the look-at matrix for the current position and angles.
func (camera *FPS) View() mgl32.Mat4 {
	return mgl32.LookAtV(camera.Position, camera.Position.Add(camera.front), camera.up)
}

// Projection returns the perspective matrix for the current zoom.
func (camera *FPS) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.Zoom), aspect, 0.1, 100)
}

// ProcessKeyboard moves the camera along its own axes.
func (camera *FPS) ProcessKeyboard(direction Direction, dt float32) {
	velocity := camera.Speed * dt
	switch direction {
	case Forward:
		camera.Position = camera.Position.Add(camera.front.Mul(velocity))
	case Backward:
		camera.Position = camera.Position.Sub(camera.front.Mul(velocity))
	case Left:
		camera.Position = camera.Position.Sub(camera.right.Mul(velocity))
	case Right:
		camera.Position = camera.Position.Add(camera.right.Mul(velocity))
	}
}

// ProcessMouse turns the camera by a cursor offset.
// With constrain set, pitch stays within ±MaxPitch so the view never flips.
func (camera *FPS) ProcessMouse(dx, dy float32, constrain bool) {
	camera.Yaw += dx * camera.Sensitivity
	camera.Pitch += dy * camera.Sensitivity

	if constrain {
		camera.Pitch = mgl32.Clamp(camera.Pitch, -MaxPitch, MaxPitch)
	}
	camera.update()
}

// ProcessScroll zooms by narrowing or widening the field of view.
func (camera *FPS) ProcessScroll(dy float32) {
	camera.Zoom = mgl32.Clamp(camera.Zoom-dy, MinZoom, MaxZoom)
}

func (camera *FPS) update() {
	yaw, pitch := mgl32.DegToRad(camera.Yaw), mgl32.DegToRad(camera.Pitch)
	front := mgl32.Vec3{
		cos(yaw) * cos(pitch),
		sin(pitch),
		sin(yaw) * cos(pitch),
	}
	camera.front = front.Normalize()
	camera.right = camera.front.Cross(camera.WorldUp).Normalize()
	camera.up = camera.right.Cross(camera.front).Normalize()
}
