package shader

// Driver is the part of the graphics driver that programs need.
//
// Handles are the driver's own object names; zero is never a valid handle.
// UniformLocation returns a negative value when the name does not resolve to
// an active uniform, the same as glGetUniformLocation. That sentinel never
// leaves this package.
type Driver interface {
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most limit bytes of the compile log.
	ShaderInfoLog(shader uint32, limit int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most limit bytes of the link log.
	ProgramInfoLog(program uint32, limit int) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4(location int32, m *[16]float32)
}
