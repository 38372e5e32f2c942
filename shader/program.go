package shader

import (
	"io/fs"
	"os"
)

// MaxInfoLog bounds compile and link logs; excess is truncated.
const MaxInfoLog = 1024

// Sources holds the source text of each stage.
// Geometry is optional and skipped when empty.
type Sources struct {
	Vertex   string
	Fragment string
	Geometry string
}

// Program is a linked pipeline program.
//
// A Program is either fully linked or was never returned; construction
// failures leave no driver objects behind.
type Program struct {
	rc     *RenderContext
	handle uint32

	locationCache map[string]int32
}

// Load reads the vertex and fragment sources from disk and links them.
func Load(rc *RenderContext, vertexPath, fragmentPath string) (*Program, error) {
	return load(rc, os.ReadFile, vertexPath, fragmentPath)
}

// LoadFS is like Load, but reads the sources from fsys.
func LoadFS(rc *RenderContext, fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	return load(rc, func(path string) ([]byte, error) {
		return fs.ReadFile(fsys, path)
	}, vertexPath, fragmentPath)
}

func load(rc *RenderContext, read func(string) ([]byte, error), vertexPath, fragmentPath string) (*Program, error) {
	vertexSource, err := read(vertexPath)
	if err != nil {
		return nil, &FileReadError{Stage: Vertex, Path: vertexPath, Err: err}
	}
	fragmentSource, err := read(fragmentPath)
	if err != nil {
		return nil, &FileReadError{Stage: Fragment, Path: fragmentPath, Err: err}
	}

	logger.Printf("loaded %q and %q", vertexPath, fragmentPath)
	return New(rc, Sources{
		Vertex:   string(vertexSource),
		Fragment: string(fragmentSource),
	})
}

// New compiles and links sources into a program.
//
// Failures return *CompileError or *LinkError. Stage objects are released
// on every path, so they never outlive this call.
func New(rc *RenderContext, sources Sources) (*Program, error) {
	driver := rc.driver

	vertexShader, err := compileShader(driver, Vertex, sources.Vertex)
	if err != nil {
		return nil, err
	}
	defer driver.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(driver, Fragment, sources.Fragment)
	if err != nil {
		return nil, err
	}
	defer driver.DeleteShader(fragmentShader)

	var geometryShader uint32
	if sources.Geometry != "" {
		geometryShader, err = compileShader(driver, Geometry, sources.Geometry)
		if err != nil {
			return nil, err
		}
		defer driver.DeleteShader(geometryShader)
	}

	program := driver.CreateProgram()
	driver.AttachShader(program, vertexShader)
	driver.AttachShader(program, fragmentShader)
	if geometryShader != 0 {
		driver.AttachShader(program, geometryShader)
	}

	driver.LinkProgram(program)
	if !driver.ProgramLinked(program) {
		log := truncateLog(driver.ProgramInfoLog(program, MaxInfoLog))
		driver.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	logger.Printf("linked program %d", program)
	return &Program{
		rc:            rc,
		handle:        program,
		locationCache: map[string]int32{},
	}, nil
}

func compileShader(driver Driver, stage Stage, source string) (uint32, error) {
	shader := driver.CreateShader(stage)

	driver.ShaderSource(shader, source)
	driver.CompileShader(shader)

	if !driver.ShaderCompiled(shader) {
		log := truncateLog(driver.ShaderInfoLog(shader, MaxInfoLog))
		driver.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: log}
	}

	return shader, nil
}

func truncateLog(log string) string {
	if len(log) > MaxInfoLog {
		return log[:MaxInfoLog]
	}
	return log
}

// Handle returns the driver handle, or 0 after Delete.
func (program *Program) Handle() uint32 { return program.handle }

// Use makes the program active for subsequent draw and uniform calls.
func (program *Program) Use() { program.rc.Use(program) }

// Delete releases the program. Deleting twice is a no-op.
func (program *Program) Delete() {
	if program.handle == 0 {
		return
	}
	if program.rc.active == program {
		program.rc.Use(nil)
	}
	program.rc.driver.DeleteProgram(program.handle)
	program.handle = 0
	program.locationCache = map[string]int32{}
}
