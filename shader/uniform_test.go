package shader

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUniforms(t *testing.T) {
	driver, _, program := newTestProgram(t)
	program.Use()

	program.SetInt("texture1", 1)
	program.SetFloat("mixValue", 0.2)
	program.SetBool("grayscale", true)

	v, ok := driver.value(program.Handle(), "texture1")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)

	v, ok = driver.value(program.Handle(), "mixValue")
	require.True(t, ok)
	assert.Equal(t, float32(0.2), v)

	v, ok = driver.value(program.Handle(), "grayscale")
	require.True(t, ok)
	assert.Equal(t, int32(1), v)
}

func TestOptionalUniformMissingIsNoop(t *testing.T) {
	driver, _, program := newTestProgram(t)
	program.Use()
	program.SetFloat("mixValue", 0.5)

	assert.NotPanics(t, func() {
		program.SetInt("texture2", 1)
		program.SetFloat("missing", 3)
		program.SetBool("missing", true)
		program.SetVec3("missing", mgl32.Vec3{1, 2, 3})
		program.SetMat4("missing", mgl32.Ident4())
	})

	assert.Zero(t, driver.sentinelWrites, "missing names must never reach the driver")
	v, _ := driver.value(program.Handle(), "mixValue")
	assert.Equal(t, float32(0.5), v)
	assert.Len(t, driver.programs[program.Handle()].values, 1)

	u := program.Uniform("texture2")
	assert.False(t, u.Found())
	assert.Equal(t, "texture2", u.Name)
}

func TestRequiredUniformMissing(t *testing.T) {
	driver, _, program := newTestProgram(t)
	program.Use()

	err := program.RequireMat4("model", mgl32.Ident4())
	var missing *MissingUniformError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "model", missing.Name)

	assert.Error(t, program.RequireInt("model", 1))
	assert.Error(t, program.RequireFloat("model", 1))
	assert.Error(t, program.RequireVec3("model", mgl32.Vec3{}))

	_, err = program.RequireUniform("model")
	assert.Error(t, err)

	assert.Zero(t, driver.sentinelWrites)
	assert.Empty(t, driver.programs[program.Handle()].values)
}

func TestRequiredUniformPresent(t *testing.T) {
	driver, _, program := newTestProgram(t)
	program.Use()

	transform := mgl32.Translate3D(0.5, -0.5, 0).Mul4(mgl32.HomogRotate3DZ(1))
	require.NoError(t, program.RequireMat4("transform", transform))
	require.NoError(t, program.RequireFloat("offset", 0.25))

	v, ok := driver.value(program.Handle(), "transform")
	require.True(t, ok)
	assert.Equal(t, [16]float32(transform), v)

	v, ok = driver.value(program.Handle(), "offset")
	require.True(t, ok)
	assert.Equal(t, float32(0.25), v)
}

func TestUniformLocationsAreCached(t *testing.T) {
	driver, _, program := newTestProgram(t)
	program.Use()

	for i := 0; i < 5; i++ {
		program.SetFloat("offset", float32(i))
		program.SetFloat("missing", float32(i))
	}
	assert.Equal(t, 2, driver.lookups)
}

func TestUniformWritesGoToActiveProgram(t *testing.T) {
	driver, rc, first := newTestProgram(t)
	second, err := New(rc, Sources{Vertex: vertexSource, Fragment: fragmentSource})
	require.NoError(t, err)

	first.Use()
	first.SetFloat("mixValue", 0.1)
	second.Use()
	second.SetFloat("mixValue", 0.9)

	v, _ := driver.value(first.Handle(), "mixValue")
	assert.Equal(t, float32(0.1), v)
	v, _ = driver.value(second.Handle(), "mixValue")
	assert.Equal(t, float32(0.9), v)
}

const brightnessSource = `#version 330 core
in vec3 ourColor;
out vec4 FragColor;

uniform float brightness;

void main() {
	FragColor = vec4(ourColor * brightness, 1.0);
}
`

// newProgramPair returns two programs whose first uniforms share location 0.
func newProgramPair(t *testing.T) (*fakeDriver, *Program, *Program) {
	t.Helper()
	driver, rc, a := newTestProgram(t)
	b, err := New(rc, Sources{Vertex: "#version 330 core\nout vec3 ourColor;\nvoid main() {}\n", Fragment: brightnessSource})
	require.NoError(t, err)
	require.Equal(t, a.Uniform("transform").location, b.Uniform("brightness").location)
	return driver, a, b
}

func TestUniformOnInactiveProgramIsSkipped(t *testing.T) {
	driver, a, b := newProgramPair(t)

	a.Use()
	a.SetMat4("transform", mgl32.Ident4())

	b.SetFloat("brightness", 7)
	b.Uniform("brightness").Float(7)

	v, _ := driver.value(a.Handle(), "transform")
	assert.Equal(t, [16]float32(mgl32.Ident4()), v)
	_, ok := driver.value(b.Handle(), "brightness")
	assert.False(t, ok)

	b.Use()
	b.SetFloat("brightness", 7)
	v, _ = driver.value(b.Handle(), "brightness")
	assert.Equal(t, float32(7), v)
}

func TestRequiredUniformOnInactiveProgram(t *testing.T) {
	driver, a, b := newProgramPair(t)

	a.Use()
	a.SetMat4("transform", mgl32.Ident4())

	err := b.RequireFloat("brightness", 9)
	var writeErr *UniformWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "brightness", writeErr.Name)
	assert.ErrorIs(t, err, ErrNotActive)

	v, _ := driver.value(a.Handle(), "transform")
	assert.Equal(t, [16]float32(mgl32.Ident4()), v)

	// the lookup itself does not need the program to be active
	u, err := b.RequireUniform("brightness")
	require.NoError(t, err)
	assert.True(t, u.Found())
}

func TestUniformAfterDelete(t *testing.T) {
	driver, a, b := newProgramPair(t)

	u, err := b.RequireUniform("brightness")
	require.NoError(t, err)
	b.Use()
	b.Delete()

	a.Use()
	a.SetMat4("transform", mgl32.Ident4())
	u.Float(42)

	v, _ := driver.value(a.Handle(), "transform")
	assert.Equal(t, [16]float32(mgl32.Ident4()), v)

	b.Use()
	assert.ErrorIs(t, b.RequireFloat("brightness", 1), ErrDeleted)
}
