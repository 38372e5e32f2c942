package shader

// RenderContext owns a driver and tracks which program is active.
//
// A RenderContext belongs to the thread that owns the graphics context and
// must not be used from other goroutines.
type RenderContext struct {
	driver Driver
	active *Program
}

// NewRenderContext returns a context without an active program.
func NewRenderContext(driver Driver) *RenderContext {
	return &RenderContext{driver: driver}
}

// Driver returns the underlying driver.
func (rc *RenderContext) Driver() Driver { return rc.driver }

// Active returns the program used by subsequent draw calls, or nil.
func (rc *RenderContext) Active() *Program { return rc.active }

// Use makes program active. Passing nil, or a deleted program, unbinds the
// current program.
func (rc *RenderContext) Use(program *Program) {
	if program == nil || program.handle == 0 {
		rc.driver.UseProgram(0)
		rc.active = nil
		return
	}
	rc.driver.UseProgram(program.handle)
	rc.active = program
}
