package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type shaderStage struct {
	name string
	kind uint32
	src  string
}

// buildProgram compiles every stage and links them. Compiled stages are
// released whether or not linking succeeds.
func buildProgram(stages ...shaderStage) (uint32, error) {
	compiled := make([]uint32, 0, len(stages))
	defer func() {
		for _, sh := range compiled {
			gl.DeleteShader(sh)
		}
	}()
	for _, st := range stages {
		sh, err := compileStage(st)
		if err != nil {
			return 0, err
		}
		compiled = append(compiled, sh)
	}

	prog := gl.CreateProgram()
	for _, sh := range compiled {
		gl.AttachShader(prog, sh)
	}
	gl.LinkProgram(prog)
	for _, sh := range compiled {
		gl.DetachShader(prog, sh)
	}

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("gl: link program: %s", msg)
	}
	return prog, nil
}

func compileStage(st shaderStage) (uint32, error) {
	sh := gl.CreateShader(st.kind)
	csrc, free := gl.Strs(st.src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("gl: compile %s shader: %s", st.name, msg)
	}
	return sh, nil
}

// infoLog reads the driver log of a shader or program object.
func infoLog(obj uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n+1)
	read(obj, n, nil, &buf[0])
	return strings.TrimSpace(strings.TrimRight(string(buf), "\x00"))
}
