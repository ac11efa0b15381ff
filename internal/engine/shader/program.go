package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/stencilpick/internal/logger"
)

// Program is a linked shader program with cached uniform locations.
type Program struct {
	Name string
	id   uint32

	uniforms map[string]int32
	log      *zap.Logger
}

// NewProgram compiles and links a named program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling %s program: %w", name, err)
	}
	return &Program{
		Name:     name,
		id:       id,
		uniforms: make(map[string]int32),
		log:      logger.Named("shader").With(zap.String("program", name)),
	}, nil
}

// ID returns the GL program object.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// location looks up and caches a uniform. Missing uniforms are reported once
// at debug level and then ignored by GL, since location -1 is a no-op.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		p.log.Debug("uniform not active", zap.String("uniform", name))
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform. The program must be bound.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform. The program must be bound.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

// SetFloat sets a float uniform. The program must be bound.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetInt sets an int uniform. The program must be bound.
func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetBool sets a bool uniform as 0 or 1. The program must be bound.
func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
