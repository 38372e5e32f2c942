package shader

import (
	"errors"
	"fmt"
)

// FileReadError is returned when a stage source cannot be read.
type FileReadError struct {
	Stage Stage
	Path  string
	Err   error
}

func (err *FileReadError) Error() string {
	return fmt.Sprintf("unable to read %v shader %q: %v", err.Stage, err.Path, err.Err)
}

func (err *FileReadError) Unwrap() error { return err.Err }

// CompileError carries the driver log of a failed stage compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (err *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %v shader: %v", err.Stage, err.Log)
}

// LinkError carries the driver log of a failed program link.
type LinkError struct {
	Log string
}

func (err *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %v", err.Log)
}

// MissingUniformError is returned when a required uniform is not an active
// uniform of the program.
type MissingUniformError struct {
	Name string
}

func (err *MissingUniformError) Error() string {
	return fmt.Sprintf("required uniform %q not found", err.Name)
}

var (
	// ErrNotActive means the program is not the active one in its context.
	ErrNotActive = errors.New("program is not active")
	// ErrDeleted means the program was deleted.
	ErrDeleted = errors.New("program was deleted")
)

// UniformWriteError is returned when a required uniform exists but the
// program cannot currently receive writes.
type UniformWriteError struct {
	Name string
	Err  error
}

func (err *UniformWriteError) Error() string {
	return fmt.Sprintf("unable to set uniform %q: %v", err.Name, err.Err)
}

func (err *UniformWriteError) Unwrap() error { return err.Err }
