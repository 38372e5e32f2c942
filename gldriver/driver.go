// Package gldriver implements shader.Driver and the buffer and texture
// plumbing of the demos on top of OpenGL 4.1 core.
//
// Every call must happen on the thread that owns the current context.
package gldriver

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/adinfinit/learngl/shader"
)

// Driver talks to the OpenGL context current on the calling thread.
type Driver struct{}

var _ shader.Driver = Driver{}

var shaderTypes = map[shader.Stage]uint32{
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
	shader.Geometry: gl.GEOMETRY_SHADER,
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(shaderTypes[stage])
}

// ShaderSource uploads source as a single chunk.
func (Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(id uint32, limit int) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	return shader.ReadInfoLog(logLength, limit, func(size int32, length *int32, buf *uint8) {
		gl.GetShaderInfoLog(id, size, length, buf)
	})
}

func (Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ProgramInfoLog(program uint32, limit int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return shader.ReadInfoLog(logLength, limit, func(size int32, length *int32, buf *uint8) {
		gl.GetProgramInfoLog(program, size, length, buf)
	})
}

func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }
func (Driver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }
func (Driver) Uniform2f(location int32, x, y float32) { gl.Uniform2f(location, x, y) }
func (Driver) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

func (Driver) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (Driver) UniformMatrix4(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
