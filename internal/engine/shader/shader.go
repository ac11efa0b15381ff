// Package shader compiles GLSL programs and sets their uniforms.
package shader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError is a failed compile or link, with the offending source line
// when the driver log names one.
type CompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Line  int    // 1-based, 0 when unknown
	Code  string // source text of Line
	Log   string
}

func (e *CompileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s shader line %d (%s): %s", e.Stage, e.Line, e.Code, e.Log)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Log)
}

type stage struct {
	kind uint32
	name string
	src  string
}

// CompileProgram compiles a vertex and a fragment shader and links them.
// Failures are returned as *CompileError.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, "vertex", vertexSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	}

	program := gl.CreateProgram()
	for _, s := range stages {
		id, err := compileShader(s)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, id)
		// Flagged for deletion, freed with the program.
		gl.DeleteShader(id)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(program)
		gl.DeleteProgram(program)
		return 0, &CompileError{Stage: "link", Log: log}
	}
	return program, nil
}

func compileShader(s stage) (uint32, error) {
	id := gl.CreateShader(s.kind)
	csource, free := gl.Strs(s.src + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return id, nil
	}

	var logLen int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
	buf := make([]byte, logLen+1)
	gl.GetShaderInfoLog(id, logLen, nil, &buf[0])
	gl.DeleteShader(id)

	return 0, newCompileError(s.name, s.src, trimLog(buf))
}

func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	buf := make([]byte, logLen+1)
	gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
	return trimLog(buf)
}

// Driver logs start with "0:12(5):" (Mesa), "0:12:" or "ERROR: 0:12:" (others).
var logLineRE = regexp.MustCompile(`(?:^|\s)\d+:(\d+)[:(]`)

func newCompileError(stageName, src, log string) *CompileError {
	e := &CompileError{Stage: stageName, Log: log}
	if m := logLineRE.FindStringSubmatch(log); m != nil {
		e.Line, _ = strconv.Atoi(m[1])
		e.Code = sourceLine(src, e.Line)
	}
	return e
}

// sourceLine returns line n of src, trimmed, or "" when out of range.
func sourceLine(src string, n int) string {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[n-1])
}

// trimLog drops the NUL terminator, anything after it and trailing newlines.
func trimLog(log []byte) string {
	for i, b := range log {
		if b == 0 {
			log = log[:i]
			break
		}
	}
	return strings.TrimRight(string(log), "\n")
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
