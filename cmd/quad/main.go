// Command quad draws a rotating quad that blends two textures.
//
// Up and Down change the blend factor.
package main

import (
	"embed"
	"flag"
	"image"
	"image/color"
	"log"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/adinfinit/learngl/app"
	"github.com/adinfinit/learngl/gldriver"
	"github.com/adinfinit/learngl/mesh"
	"github.com/adinfinit/learngl/shader"
	"github.com/adinfinit/learngl/texture"
)

//go:embed shaders
var shaders embed.FS

var (
	shaderDir = flag.String("shaders", "", "load shader sources from this directory")
	texture1  = flag.String("texture1", "", "first texture, a checkerboard when empty")
	texture2  = flag.String("texture2", "", "second texture, a checkerboard when empty")
)

func init() { runtime.LockOSThread() }

func loadProgram(rc *shader.RenderContext, vert, frag string) (*shader.Program, error) {
	if *shaderDir != "" {
		return shader.Load(rc, filepath.Join(*shaderDir, vert), filepath.Join(*shaderDir, frag))
	}
	return shader.LoadFS(rc, shaders, "shaders/"+vert, "shaders/"+frag)
}

func loadImage(path string, fallback *image.RGBA) (*image.RGBA, error) {
	if path == "" {
		return fallback, nil
	}
	return texture.Load(path, true)
}

func main() {
	config := app.Config{Title: "Quad", VSync: true}
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
	program, err := loadProgram(rc, "quad.vert", "quad.frag")
	if err != nil {
		log.Fatalln(err)
	}
	defer program.Delete()

	transform, err := program.RequireUniform("transform")
	if err != nil {
		log.Fatalln(err)
	}

	first, err := loadImage(*texture1, texture.Checkerboard(256, 8,
		color.RGBA{0xc8, 0x96, 0x5a, 0xff}, color.RGBA{0x6e, 0x46, 0x28, 0xff}))
	if err != nil {
		log.Fatalln(err)
	}
	second, err := loadImage(*texture2, texture.Checkerboard(256, 2,
		color.RGBA{0xff, 0xff, 0xff, 0xff}, color.RGBA{0x00, 0x00, 0x00, 0x00}))
	if err != nil {
		log.Fatalln(err)
	}

	tex1 := gldriver.NewTexture(first, gldriver.Repeat)
	defer tex1.Delete()
	tex2 := gldriver.NewTexture(second, gldriver.Repeat)
	defer tex2.Delete()

	quad := gldriver.Upload(&mesh.Quad)
	defer quad.Delete()

	// texture units are best effort: a shader that samples only one
	// texture simply lacks texture2
	program.Use()
	program.SetInt("texture1", 0)
	program.SetInt("texture2", 1)

	mixValue := float32(0.2)
	gl.ClearColor(0.2, 0.3, 0.3, 1.0)

	demo.Run(func(world *app.World) {
		if demo.Pressed(glfw.KeyUp) {
			mixValue = mgl32.Clamp(mixValue+world.DeltaTime, 0, 1)
		}
		if demo.Pressed(glfw.KeyDown) {
			mixValue = mgl32.Clamp(mixValue-world.DeltaTime, 0, 1)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)

		tex1.Bind(0)
		tex2.Bind(1)

		program.Use()
		program.SetFloat("mixValue", mixValue)
		transform.Mat4(mgl32.Translate3D(0.5, -0.5, 0).
			Mul4(mgl32.HomogRotate3DZ(float32(world.Time))))

		quad.Draw()
	})
}
