// Command triangle draws a colored triangle next to an indexed rectangle.
//
// Hold W to draw in wireframe.
package main

import (
	"embed"
	"flag"
	"log"
	"math"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfinit/learngl/app"
	"github.com/adinfinit/learngl/gldriver"
	"github.com/adinfinit/learngl/mesh"
	"github.com/adinfinit/learngl/shader"
)

//go:embed shaders
var shaders embed.FS

var shaderDir = flag.String("shaders", "", "load shader sources from this directory")

func init() { runtime.LockOSThread() }

func loadProgram(rc *shader.RenderContext, vert, frag string) (*shader.Program, error) {
	if *shaderDir != "" {
		return shader.Load(rc, filepath.Join(*shaderDir, vert), filepath.Join(*shaderDir, frag))
	}
	return shader.LoadFS(rc, shaders, "shaders/"+vert, "shaders/"+frag)
}

func main() {
	config := app.Config{Title: "Triangle", VSync: true}
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
	program, err := loadProgram(rc, "triangle.vert", "triangle.frag")
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Delete()

	offset, err := program.RequireUniform("offset")
	if err != nil {
		log.Fatalln(err)
	}

	triangle := gldriver.Upload(&mesh.Triangle)
	defer triangle.Delete()
	rectangle := gldriver.Upload(&mesh.Rectangle)
	defer rectangle.Delete()

	gl.ClearColor(0.275, 0.51, 0.706, 1.0)

	demo.Run(func(world *app.World) {
		if demo.Pressed(glfw.KeyW) {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		program.Use()
		program.SetFloat("brightness", float32(math.Sin(world.Time)*0.25+0.75))

		offset.Float(-0.5)
		rectangle.Draw()

		offset.Float(0.5)
		triangle.Draw()
	})
}
