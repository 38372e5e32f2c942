// Command camera flies a first-person camera through the cubes.
//
// WASD moves, the mouse looks around and the scroll wheel zooms.
// Left shift captures the cursor and right shift releases it.
package main

import (
	"embed"
	"flag"
	"image/color"
	"log"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/learngl/app"
	"github.com/adinfinit/learngl/camera"
	"github.com/adinfinit/learngl/gldriver"
	"github.com/adinfinit/learngl/mesh"
	"github.com/adinfinit/learngl/shader"
	"github.com/adinfinit/learngl/texture"
)

//go:embed shaders
var shaders embed.FS

var (
	shaderDir   = flag.String("shaders", "", "load shader sources from this directory")
	sensitivity = flag.Float64("sensitivity", camera.DefaultSensitivity, "mouse sensitivity")
	speed       = flag.Float64("speed", camera.DefaultSpeed, "movement speed")
)

func init() { runtime.LockOSThread() }

func loadProgram(rc *shader.RenderContext, vert, frag string) (*shader.Program, error) {
	if *shaderDir != "" {
		return shader.Load(rc, filepath.Join(*shaderDir, vert), filepath.Join(*shaderDir, frag))
	}
	return shader.LoadFS(rc, shaders, "shaders/"+vert, "shaders/"+frag)
}

// mouse turns cursor positions into offsets for the camera.
type mouse struct {
	camera *camera.FPS

	lastX, lastY float64
	seen         bool
}

func (m *mouse) move(_ *glfw.Window, x, y float64) {
	if !m.seen {
		m.lastX, m.lastY = x, y
		m.seen = true
	}
	dx, dy := x-m.lastX, m.lastY-y
	m.lastX, m.lastY = x, y

	m.camera.ProcessMouse(float32(dx), float32(dy), true)
}

func (m *mouse) scroll(_ *glfw.Window, _, dy float64) {
	m.camera.ProcessScroll(float32(dy))
}

func main() {
	config := app.Config{Title: "Camera", Resizable: true, VSync: true}
	config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if config.Verbose {
		shader.SetLogger(log.Default())
	}

	demo, err := app.Open(config)
	if err != nil {
		log.Fatalln(err)
	}
	defer demo.Close()

	rc := shader.NewRenderContext(gldriver.Driver{})
	program, err := loadProgram(rc, "camera.vert", "camera.frag")
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Delete()

	model, err := program.RequireUniform("model")
	if err != nil {
		log.Fatalln(err)
	}
	view, err := program.RequireUniform("view")
	if err != nil {
		log.Fatalln(err)
	}
	projection, err := program.RequireUniform("projection")
	if err != nil {
		log.Fatalln(err)
	}

	tex1 := gldriver.NewTexture(texture.Checkerboard(128, 4,
		color.RGBA{0xe0, 0xa0, 0x40, 0xff}, color.RGBA{0x40, 0x30, 0x20, 0xff}), gldriver.ClampToEdge)
	defer tex1.Delete()
	tex2 := gldriver.NewTexture(texture.Checkerboard(128, 16,
		color.RGBA{0x20, 0x60, 0xc0, 0xff}, color.RGBA{0xff, 0xff, 0xff, 0xff}), gldriver.Repeat)
	defer tex2.Delete()

	cube := gldriver.Upload(&mesh.Cube)
	defer cube.Delete()

	program.Use()
	program.SetInt("texture1", 0)
	program.SetInt("texture2", 1)
	program.SetFloat("mixValue", 0.3)

	fps := camera.NewFPS(mgl32.Vec3{0, 0, 3})
	fps.Sensitivity = float32(*sensitivity)
	fps.Speed = float32(*speed)

	m := &mouse{camera: fps}
	demo.Window.SetCursorPosCallback(m.move)
	demo.Window.SetScrollCallback(m.scroll)
	demo.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	keys := map[glfw.Key]camera.Direction{
		glfw.KeyW: camera.Forward,
		glfw.KeyS: camera.Backward,
		glfw.KeyA: camera.Left,
		glfw.KeyD: camera.Right,
	}

	demo.Run(func(world *app.World) {
		for key, direction := range keys {
			if demo.Pressed(key) {
				fps.ProcessKeyboard(direction, world.DeltaTime)
			}
		}
		if demo.Pressed(glfw.KeyLeftShift) {
			demo.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		}
		if demo.Pressed(glfw.KeyRightShift) {
			demo.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		tex1.Bind(0)
		tex2.Bind(1)

		program.Use()
		view.Mat4(fps.View())
		projection.Mat4(fps.Projection(world.Aspect()))

		for i, position := range mesh.CubePositions {
			model.Mat4(mgl32.Translate3D(position[0], position[1], position[2]).
				Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(float32(20*i)), mgl32.Vec3{1, 0.3, 0.5}.Normalize())))
			cube.Draw()
		}
	})
}
