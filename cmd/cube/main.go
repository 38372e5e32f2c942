// Command cube draws ten textured cubes, each spinning on its own axis,
// seen from a camera orbiting the origin.
package main

import (
	"embed"
	"flag"
	"image/color"
	"log"
	"path/filepath"
	"runtime"

	"github.com/adinfinit/g"
	"github.com/go-gl/gl/v4.1-core/gl"
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
	shaderDir = flag.String("shaders", "", "load shader sources from this directory")
	radius    = flag.Float64("radius", 10, "orbit radius")
)

func init() { runtime.LockOSThread() }

func loadProgram(rc *shader.RenderContext, vert, frag string) (*shader.Program, error) {
	if *shaderDir != "" {
		return shader.Load(rc, filepath.Join(*shaderDir, vert), filepath.Join(*shaderDir, frag))
	}
	return shader.LoadFS(rc, shaders, "shaders/"+vert, "shaders/"+frag)
}

func main() {
	config := app.Config{Title: "Cube", Resizable: true, VSync: true}
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
	program, err := loadProgram(rc, "cube.vert", "cube.frag")
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Delete()

	var model, view, projection shader.Uniform
	for name, u := range map[string]*shader.Uniform{
		"model":      &model,
		"view":       &view,
		"projection": &projection,
	} {
		if *u, err = program.RequireUniform(name); err != nil {
			log.Fatalln(err)
		}
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

	orbit := &camera.Orbit{
		Target: g.V3(0, 0, -5),
		Radius: float32(*radius),
		Height: 2,
		Speed:  0.3,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)

	demo.Run(func(world *app.World) {
		orbit.Advance(world.DeltaTime)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		tex1.Bind(0)
		tex2.Bind(1)

		program.Use()
		view.Mat4(orbit.View())
		projection.Mat4(mgl32.Perspective(mgl32.DegToRad(45), world.Aspect(), 0.1, 100))

		for i, position := range mesh.CubePositions {
			angle := float32(20*i) + float32(world.Time)*25
			axis := mgl32.Vec3{1, 0.3, 0.5}.Normalize()
			model.Mat4(mgl32.Translate3D(position[0], position[1], position[2]).
				Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis)))
			cube.Draw()
		}
	})
}
