package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	name     string
	id       uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a named program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, withProgram(err, name)
	}
	return newProgram(name, id), nil
}

func newProgram(name string, id uint32) *Program {
	return &Program{name: name, id: id, uniforms: make(map[string]int32)}
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// ID returns the GL program handle.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location returns the cached location of name. Missing uniforms are
// cached as -1, which GL ignores on upload.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	p.uniforms[name] = loc
	return loc
}

// SetBool sets a bool uniform.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3fv(p.location(name), 1, &v[0])
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(p.location(name), 1, &v[0])
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// swap installs a new handle, returning the old one. The uniform cache is
// reset since locations are per program object.
func (p *Program) swap(id uint32) uint32 {
	old := p.id
	p.id = id
	p.uniforms = make(map[string]int32)
	return old
}

// Delete releases the program. Safe to call more than once.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func withProgram(err error, name string) error {
	if ce, ok := err.(*CompileError); ok {
		cp := *ce
		cp.Program = name
		return &cp
	}
	return err
}
