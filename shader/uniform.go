package shader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform is a resolved uniform location of one program.
//
// Setters only write while the owning program is alive and active in its
// RenderContext; otherwise they are no-ops. A Uniform whose name did not
// resolve is always inert.
type Uniform struct {
	Name string

	program  *Program
	location int32
	found    bool
}

// Found reports whether the name resolved to an active uniform.
func (u Uniform) Found() bool { return u.found }

func (u Uniform) driver() (Driver, bool) {
	if !u.found || u.program == nil || u.program.check() != nil {
		return nil, false
	}
	return u.program.rc.driver, true
}

// Int uploads an int or sampler unit.
func (u Uniform) Int(v int32) {
	if d, ok := u.driver(); ok {
		d.Uniform1i(u.location, v)
	}
}

// Float uploads a float.
func (u Uniform) Float(v float32) {
	if d, ok := u.driver(); ok {
		d.Uniform1f(u.location, v)
	}
}

// Bool uploads a bool as 0 or 1.
func (u Uniform) Bool(v bool) {
	var x int32
	if v {
		x = 1
	}
	u.Int(x)
}

// Vec2 uploads a vec2.
func (u Uniform) Vec2(v mgl32.Vec2) {
	if d, ok := u.driver(); ok {
		d.Uniform2f(u.location, v[0], v[1])
	}
}

// Vec3 uploads a vec3.
func (u Uniform) Vec3(v mgl32.Vec3) {
	if d, ok := u.driver(); ok {
		d.Uniform3f(u.location, v[0], v[1], v[2])
	}
}

// Vec4 uploads a vec4.
func (u Uniform) Vec4(v mgl32.Vec4) {
	if d, ok := u.driver(); ok {
		d.Uniform4f(u.location, v[0], v[1], v[2], v[3])
	}
}

// Mat4 uploads a column-major mat4.
func (u Uniform) Mat4(m mgl32.Mat4) {
	if d, ok := u.driver(); ok {
		values := [16]float32(m)
		d.UniformMatrix4(u.location, &values)
	}
}

// check reports whether uniform writes would reach this program.
func (program *Program) check() error {
	if program.handle == 0 {
		return ErrDeleted
	}
	if program.rc.active != program {
		return ErrNotActive
	}
	return nil
}

func (program *Program) uniformLocation(name string) int32 {
	location, ok := program.locationCache[name]
	if !ok {
		location = -1
		if program.handle != 0 {
			location = program.rc.driver.UniformLocation(program.handle, name)
		}
		program.locationCache[name] = location
	}
	return location
}

// Uniform looks up an optional uniform.
// When name is not an active uniform the result is inert.
func (program *Program) Uniform(name string) Uniform {
	location := program.uniformLocation(name)
	return Uniform{
		Name:     name,
		program:  program,
		location: location,
		found:    location >= 0,
	}
}

// RequireUniform looks up a uniform the caller cannot draw without.
// The program does not need to be active for the lookup.
func (program *Program) RequireUniform(name string) (Uniform, error) {
	u := program.Uniform(name)
	if !u.found {
		return u, &MissingUniformError{Name: name}
	}
	return u, nil
}

// Optional setters. Missing names, and programs that are not active, are
// silently skipped.

func (program *Program) SetInt(name string, v int32) { program.Uniform(name).Int(v) }
func (program *Program) SetFloat(name string, v float32) { program.Uniform(name).Float(v) }
func (program *Program) SetBool(name string, v bool) { program.Uniform(name).Bool(v) }
func (program *Program) SetVec3(name string, v mgl32.Vec3) { program.Uniform(name).Vec3(v) }
func (program *Program) SetMat4(name string, m mgl32.Mat4) { program.Uniform(name).Mat4(m) }

// Required setters. Missing names return *MissingUniformError, and a
// program that is deleted or not active returns ErrDeleted or
// ErrNotActive. Nothing is uploaded on error.

func (program *Program) require(name string) (Uniform, error) {
	if program.handle == 0 {
		return Uniform{Name: name}, &UniformWriteError{Name: name, Err: ErrDeleted}
	}
	u, err := program.RequireUniform(name)
	if err != nil {
		return u, err
	}
	if err := program.check(); err != nil {
		return u, &UniformWriteError{Name: name, Err: err}
	}
	return u, nil
}

func (program *Program) RequireInt(name string, v int32) error {
	u, err := program.require(name)
	if err != nil {
		return err
	}
	u.Int(v)
	return nil
}

func (program *Program) RequireFloat(name string, v float32) error {
	u, err := program.require(name)
	if err != nil {
		return err
	}
	u.Float(v)
	return nil
}

func (program *Program) RequireVec3(name string, v mgl32.Vec3) error {
	u, err := program.require(name)
	if err != nil {
		return err
	}
	u.Vec3(v)
	return nil
}

func (program *Program) RequireMat4(name string, m mgl32.Mat4) error {
	u, err := program.require(name)
	if err != nil {
		return err
	}
	u.Mat4(m)
	return nil
}
