// Package glbackend implements core.Renderer on OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/hui/engine/core"
)

type RendererGL struct {
	win core.Window

	vendor, renderer, version string
}

type pipeline struct {
	program   uint32
	depthTest bool
	blend     bool
	uniforms  map[string]int32
}

type texture struct {
	id            uint32
	width, height int
}

type mesh struct {
	vao, vbo, ebo uint32
	vboSize       int // bytes
	eboSize       int // bytes
	indexCount    int32
}

// NewRendererGL expects the window's GL context to be current and loaded.
func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:      win,
		vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	gl.Disable(gl.CULL_FACE)
	return r, nil
}

func (r *RendererGL) GPUVendor() string   { return r.vendor }
func (r *RendererGL) GPURenderer() string { return r.renderer }
func (r *RendererGL) GPUVersion() string  { return r.version }

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	prog, err := buildProgram(
		shaderStage{name: "vertex", kind: gl.VERTEX_SHADER, src: desc.VertexSource},
		shaderStage{name: "fragment", kind: gl.FRAGMENT_SHADER, src: desc.FragmentSource},
	)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		program:   prog,
		depthTest: desc.DepthTest,
		blend:     desc.Blend,
		uniforms:  make(map[string]int32),
	}, nil
}

func (p *pipeline) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (r *RendererGL) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	if desc.Format != core.TextureRGBA8 {
		return nil, fmt.Errorf("gl: unsupported texture format %d", desc.Format)
	}
	if len(desc.Pixels) != 0 && len(desc.Pixels) != desc.Width*desc.Height*4 {
		return nil, fmt.Errorf("gl: texture %dx%d got %d bytes", desc.Width, desc.Height, len(desc.Pixels))
	}
	t := &texture{width: desc.Width, height: desc.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter(desc.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter(desc.MagFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap(desc.WrapU))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap(desc.WrapV))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var ptr unsafe.Pointer
	if len(desc.Pixels) > 0 {
		ptr = gl.Ptr(desc.Pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(desc.Width), int32(desc.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (r *RendererGL) UpdateTexture(tex core.Texture, pixels []byte) error {
	t, ok := tex.(*texture)
	if !ok {
		return fmt.Errorf("gl: foreign texture %T", tex)
	}
	if len(pixels) != t.width*t.height*4 {
		return fmt.Errorf("gl: texture %dx%d got %d bytes", t.width, t.height, len(pixels))
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.width), int32(t.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (r *RendererGL) DeleteTexture(tex core.Texture) {
	if t, ok := tex.(*texture); ok && t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

func (r *RendererGL) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	if len(desc.Vertices) == 0 || len(desc.Indices) == 0 {
		return nil, fmt.Errorf("gl: mesh needs initial vertices and indices")
	}
	m := &mesh{
		vboSize:    len(desc.Vertices) * 4,
		eboSize:    len(desc.Indices) * 4,
		indexCount: int32(len(desc.Indices)),
	}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, m.vboSize, gl.Ptr(desc.Vertices), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, m.eboSize, gl.Ptr(desc.Indices), gl.DYNAMIC_DRAW)

	for _, a := range desc.Layout.Attributes {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, a.Size, attribType(a.Type), false, desc.Layout.Stride, gl.PtrOffset(a.Offset))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m, nil
}

// UpdateMesh uploads new contents, growing the buffers when needed.
func (r *RendererGL) UpdateMesh(mh core.Mesh, vertices []float32, indices []uint32) error {
	m, ok := mh.(*mesh)
	if !ok {
		return fmt.Errorf("gl: foreign mesh %T", mh)
	}
	m.indexCount = int32(len(indices))
	if len(vertices) == 0 || len(indices) == 0 {
		return nil
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if n := len(vertices) * 4; n > m.vboSize {
		m.vboSize = n
		gl.BufferData(gl.ARRAY_BUFFER, n, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(vertices))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if n := len(indices) * 4; n > m.eboSize {
		m.eboSize = n
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n, gl.Ptr(indices), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n, gl.Ptr(indices))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

func (r *RendererGL) Draw(cmd core.DrawCmd) {
	p, ok := cmd.Pipe.(*pipeline)
	if !ok {
		panic(fmt.Sprintf("gl: foreign pipeline %T", cmd.Pipe))
	}
	m, ok := cmd.Mesh.(*mesh)
	if !ok {
		panic(fmt.Sprintf("gl: foreign mesh %T", cmd.Mesh))
	}
	if m.indexCount == 0 {
		return
	}

	if p.depthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if p.blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}

	gl.UseProgram(p.program)
	for name, v := range cmd.Uniforms {
		setUniform(p.location(name), v)
	}
	unit := int32(0)
	for name, tex := range cmd.Samplers {
		t, ok := tex.(*texture)
		if !ok {
			continue
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		gl.Uniform1i(p.location(name), unit)
		unit++
	}

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	switch x := v.(type) {
	case float32:
		gl.Uniform1f(loc, x)
	case int32:
		gl.Uniform1i(loc, x)
	case [2]float32:
		gl.Uniform2f(loc, x[0], x[1])
	case [4]float32:
		gl.Uniform4f(loc, x[0], x[1], x[2], x[3])
	case [16]float32:
		gl.UniformMatrix4fv(loc, 1, false, &x[0])
	case []int32:
		if len(x) > 0 {
			gl.Uniform1iv(loc, int32(len(x)), &x[0])
		}
	default:
		panic(fmt.Sprintf("gl: unsupported uniform type %T", v))
	}
}

func filter(f core.Filter) int32 {
	if f == core.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func wrap(w core.Wrap) int32 {
	if w == core.WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}

func attribType(t core.AttribType) uint32 {
	switch t {
	case core.AttribFloat32:
		return gl.FLOAT
	default:
		panic(fmt.Sprintf("gl: unsupported attribute type %d", t))
	}
}
