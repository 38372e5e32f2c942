package shader

import (
	"fmt"
	"regexp"
	"strings"
)

// fakeDriver emulates just enough of a GLSL driver: sources containing
// "syntax error" fail to compile, fragment inputs must match vertex outputs
// to link, and active uniforms are the ones declared in the sources.
type fakeDriver struct {
	next uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	active   uint32
	useCalls int
	lookups  int

	// sentinelWrites counts uploads to a negative location.
	sentinelWrites int
}

type fakeShader struct {
	stage    Stage
	source   string
	compiled bool
	log      string
}

type fakeProgram struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms map[string]int32
	values   map[int32]interface{}
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
	}
}

var (
	rxUniform = regexp.MustCompile(`uniform\s+\w+\s+(\w+)\s*;`)
	rxOut     = regexp.MustCompile(`(?m)^\s*out\s+(\w+)\s+(\w+)\s*;`)
	rxIn      = regexp.MustCompile(`(?m)^\s*in\s+(\w+)\s+(\w+)\s*;`)
)

func (d *fakeDriver) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	h := d.handle()
	d.shaders[h] = &fakeShader{stage: stage}
	return h
}

func (d *fakeDriver) ShaderSource(shader uint32, source string) { d.shaders[shader].source = source }

func (d *fakeDriver) CompileShader(shader uint32) {
	s := d.shaders[shader]
	var errs []string
	for i, line := range strings.Split(s.source, "\n") {
		if strings.Contains(line, "syntax error") {
			errs = append(errs, fmt.Sprintf("0:%d(1): error: syntax error, unexpected IDENTIFIER", i+1))
		}
	}
	if len(errs) > 0 {
		s.log = strings.Join(errs, "\n")
		return
	}
	s.compiled = true
}

func (d *fakeDriver) ShaderCompiled(shader uint32) bool { return d.shaders[shader].compiled }

func (d *fakeDriver) ShaderInfoLog(shader uint32, limit int) string {
	return clip(d.shaders[shader].log, limit)
}

func (d *fakeDriver) DeleteShader(shader uint32) { delete(d.shaders, shader) }

func (d *fakeDriver) CreateProgram() uint32 {
	h := d.handle()
	d.programs[h] = &fakeProgram{
		uniforms: map[string]int32{},
		values:   map[int32]interface{}{},
	}
	return h
}

func (d *fakeDriver) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.shaders = append(p.shaders, shader)
}

func (d *fakeDriver) LinkProgram(program uint32) {
	p := d.programs[program]

	outputs := map[string]string{}
	var fragment string
	var sources []string
	for _, h := range p.shaders {
		s := d.shaders[h]
		sources = append(sources, s.source)
		switch s.stage {
		case Vertex:
			for _, m := range rxOut.FindAllStringSubmatch(s.source, -1) {
				outputs[m[2]] = m[1]
			}
		case Fragment:
			fragment = s.source
		}
	}

	var errs []string
	for _, m := range rxIn.FindAllStringSubmatch(fragment, -1) {
		typ, ok := outputs[m[2]]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("error: fragment shader input `%s' has no matching output in the previous stage", m[2]))
		case typ != m[1]:
			errs = append(errs, fmt.Sprintf("error: `%s' declared as type `%s' and `%s'", m[2], typ, m[1]))
		}
	}
	if len(errs) > 0 {
		p.log = strings.Join(errs, "\n")
		return
	}

	for _, source := range sources {
		for _, m := range rxUniform.FindAllStringSubmatch(source, -1) {
			if _, ok := p.uniforms[m[1]]; !ok {
				p.uniforms[m[1]] = int32(len(p.uniforms))
			}
		}
	}
	p.linked = true
}

func (d *fakeDriver) ProgramLinked(program uint32) bool { return d.programs[program].linked }

func (d *fakeDriver) ProgramInfoLog(program uint32, limit int) string {
	return clip(d.programs[program].log, limit)
}

func (d *fakeDriver) DeleteProgram(program uint32) { delete(d.programs, program) }

func (d *fakeDriver) UseProgram(program uint32) {
	d.useCalls++
	d.active = program
}

func (d *fakeDriver) UniformLocation(program uint32, name string) int32 {
	d.lookups++
	p, ok := d.programs[program]
	if !ok {
		return -1
	}
	location, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	return location
}

func (d *fakeDriver) set(location int32, v interface{}) {
	if location < 0 {
		d.sentinelWrites++
		return
	}
	if p, ok := d.programs[d.active]; ok {
		p.values[location] = v
	}
}

func (d *fakeDriver) Uniform1i(location int32, v int32) { d.set(location, v) }
func (d *fakeDriver) Uniform1f(location int32, v float32) { d.set(location, v) }
func (d *fakeDriver) Uniform2f(location int32, x, y float32) { d.set(location, [2]float32{x, y}) }
func (d *fakeDriver) Uniform3f(location int32, x, y, z float32) {
	d.set(location, [3]float32{x, y, z})
}
func (d *fakeDriver) Uniform4f(location int32, x, y, z, w float32) {
	d.set(location, [4]float32{x, y, z, w})
}
func (d *fakeDriver) UniformMatrix4(location int32, m *[16]float32) { d.set(location, *m) }

// value returns the uniform value stored in program under name.
func (d *fakeDriver) value(program uint32, name string) (interface{}, bool) {
	p := d.programs[program]
	location, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[location]
	return v, ok
}

func clip(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
