package app

import (
	"log"

	"github.com/adinfinit/g"
)

// World is the per-frame timing and screen state.
type World struct {
	ScreenSize g.Vec2

	Time      float64
	DeltaTime float32
}

// NextFrame advances the clock to now and records the screen size.
// It reports whether the screen size changed.
func (world *World) NextFrame(screenSize g.Vec2, now float64) bool {
	resized := world.ScreenSize != screenSize
	if resized {
		log.Println(screenSize, world.aspect(screenSize))
	}
	world.ScreenSize = screenSize
	world.DeltaTime = float32(now - world.Time)
	world.Time = now
	return resized
}

// Aspect returns the width to height ratio of the screen.
func (world *World) Aspect() float32 { return world.aspect(world.ScreenSize) }

func (world *World) aspect(size g.Vec2) float32 {
	if size.Y == 0 {
		return 1
	}
	return size.X / size.Y
}
