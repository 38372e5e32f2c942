// Package app opens a GLFW window with an OpenGL 4.1 core context and runs
// the render loop of a demo.
package app

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"
)

// App owns the window and its context. It must be created and used on
// the main thread; callers lock it with runtime.LockOSThread in init.
type App struct {
	Window *glfw.Window
	World  World

	config  Config
	profile *os.File
}

// Open initializes GLFW, creates the window and loads OpenGL.
func Open(config Config) (*App, error) {
	app := &App{config: config}

	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			return nil, fmt.Errorf("unable to create cpu-profile %q: %w", config.CPUProfile, err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return nil, fmt.Errorf("unable to start cpu-profile: %w", err)
		}
		app.profile = f
	}

	if err := glfw.Init(); err != nil {
		app.stopProfile()
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, boolHint(config.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		app.stopProfile()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	app.Window = window

	if err := gl.Init(); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize glow: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	app.nextFrame()
	return app, nil
}

// Close destroys the window and stops profiling.
func (app *App) Close() {
	if app.Window != nil {
		app.Window.Destroy()
		app.Window = nil
	}
	glfw.Terminate()
	app.stopProfile()
}

func (app *App) stopProfile() {
	if app.profile == nil {
		return
	}
	pprof.StopCPUProfile()
	app.profile.Close()
	app.profile = nil
}

// Pressed reports whether key is held down.
func (app *App) Pressed(key glfw.Key) bool {
	return app.Window.GetKey(key) == glfw.Press
}

// Run calls frame once per iteration until the window is closed or Escape
// is pressed. Buffers are swapped after every frame, which blocks on vsync
// when enabled.
func (app *App) Run(frame func(world *World)) {
	for !app.Window.ShouldClose() {
		if app.Pressed(glfw.KeyEscape) {
			app.Window.SetShouldClose(true)
		}

		app.nextFrame()

		start := hrtime.Now()
		frame(&app.World)
		stop := hrtime.Now()

		app.Window.SetTitle(fmt.Sprintf("%s\tFrame:\t%v", app.config.Title, stop-start))

		app.Window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *App) nextFrame() {
	width, height := app.Window.GetFramebufferSize()
	if app.World.NextFrame(g.V2(float32(width), float32(height)), glfw.GetTime()) {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
