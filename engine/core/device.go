package core

// Renderer is the GPU device used by the 2D renderer.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)

	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateTexture(desc TextureDesc) (Texture, error)
	UpdateTexture(t Texture, pixels []byte) error
	DeleteTexture(t Texture)
	CreateMesh(desc MeshDesc) (Mesh, error)
	UpdateMesh(m Mesh, vertices []float32, indices []uint32) error
	Draw(cmd DrawCmd)

	GPUVendor() string
	GPURenderer() string
	GPUVersion() string

	Shutdown()
}

// Pipeline, Texture and Mesh are backend-owned handles.
type (
	Pipeline any
	Texture  any
	Mesh     any
)

type PipelineDesc struct {
	VertexSource   string // null-terminated GLSL
	FragmentSource string // null-terminated GLSL
	DepthTest      bool
	Blend          bool // straight alpha blending
}

type TextureFormat int

const (
	TextureRGBA8 TextureFormat = iota
)

type Filter string

const (
	FilterNearest Filter = "nearest"
	FilterLinear  Filter = "linear"
)

type Wrap string

const (
	WrapClamp  Wrap = "clamp"
	WrapRepeat Wrap = "repeat"
)

type TextureDesc struct {
	Width, Height int
	Format        TextureFormat
	Pixels        []byte // tightly packed, top-left origin
	MinFilter     Filter
	MagFilter     Filter
	WrapU, WrapV  Wrap
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location uint32
	Size     int32 // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int32 // bytes
	Attributes []VertexAttrib
}

// MeshDesc describes a dynamic indexed triangle mesh. The initial slices
// size the GPU buffers.
type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

// DrawCmd draws the indices last uploaded to Mesh.
type DrawCmd struct {
	Pipe Pipeline
	Mesh Mesh
	// Uniforms accepts float32, int32, [2]float32, [4]float32, [16]float32
	// and []int32 values.
	Uniforms map[string]any
	// Samplers binds each texture to its own texture unit and sets the named
	// sampler uniform to that unit.
	Samplers map[string]Texture
}
