// Package renderer2d batches colored and textured triangles for a
// core.Renderer and draws ui command buffers with them.
package renderer2d

import (
	"embed"
	"fmt"
	"math"
	"strconv"

	"github.com/hubastard/hui/engine/assets"
	"github.com/hubastard/hui/engine/colors"
	"github.com/hubastard/hui/engine/core"
	"github.com/hubastard/hui/engine/geom"
)

//go:embed shaders
var shaderFS embed.FS

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	ShapeCount   int // non-quad shapes such as rounded rectangles
	TextureCount int
	vertices     int
	indices      int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.vertices }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.indices }

// Vertex is one corner of a batched triangle.
type Vertex struct {
	Pos   geom.Vec2
	Color colors.Color
	UV    geom.Vec2
}

type Renderer2D struct {
	r      core.Renderer
	pipe   core.Pipeline
	white  core.Texture // 1x1 white (slot 0)
	texArr [maxTexSlots]core.Texture
	texCnt int

	verts    []float32
	inds     []uint32
	maxVerts int
	maxInds  int

	mesh     core.Mesh
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	vp            [16]float32
	stats         Statistics
	extraUniforms map[string]any
}

// NewDefault creates a renderer using the built-in shaders.
func NewDefault(r core.Renderer, maxQuads int) (*Renderer2D, error) {
	vs, err := assets.LoadShader(shaderFS, "shaders/renderer2d.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader(shaderFS, "shaders/renderer2d.frag")
	if err != nil {
		return nil, err
	}
	return New(r, vs, fs, maxQuads)
}

// New creates the renderer and compiles the shader pipeline. maxQuads sizes
// one batch; larger scenes flush several times per frame.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d: pipeline: %w", err)
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: core.FilterNearest, MagFilter: core.FilterNearest,
		WrapU: core.WrapClamp, WrapV: core.WrapClamp,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d: white texture: %w", err)
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, white: white,
		maxVerts: maxQuads * vertsPerQuad,
		maxInds:  maxQuads * indsPerQuad,
	}
	rd.verts = make([]float32, 0, rd.maxVerts*vStride)
	rd.inds = make([]uint32, 0, rd.maxInds)

	// The mesh is sized for the biggest batch up front.
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, rd.maxVerts*vStride),
		Indices:  make([]uint32, rd.maxInds),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d: mesh: %w", err)
	}
	rd.mesh = mesh

	rd.samplers = make(map[string]core.Texture, maxTexSlots)
	rd.uniforms = make(map[string]any, 4)
	for i := 0; i < maxTexSlots; i++ {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	rd.resetBatch()
	return rd, nil
}

// Device returns the GPU device the renderer draws with.
func (rd *Renderer2D) Device() core.Renderer { return rd.r }

// White returns the 1x1 white texture used for untextured shapes.
func (rd *Renderer2D) White() core.Texture { return rd.white }

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.resetBatch()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetUniform queues an additional uniform to be sent on every draw call.
// The uniform persists until overwritten; call with nil to remove.
func (rd *Renderer2D) SetUniform(name string, value any) {
	if rd.extraUniforms == nil {
		rd.extraUniforms = make(map[string]any)
	}
	if value == nil {
		delete(rd.extraUniforms, name)
		return
	}
	rd.extraUniforms[name] = value
}

// DrawQuad draws a solid quad centered at (x, y).
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.drawCentered(x, y, w, h, color, rotationRad, nil, 0, 0, 1, 1)
}

// DrawTexturedQuad draws tex over a quad centered at (x, y), tinted.
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32) {
	rd.drawCentered(x, y, w, h, tint, rotationRad, tex, 0, 0, 1, 1)
}

// DrawTexturedQuadUV draws the sub-rect u0,v0 -> u1,v1 of tex.
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex core.Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.drawCentered(x, y, w, h, tint, rotationRad, tex, u0, v0, u1, v1)
}

// DrawSubTexQuad draws a quad using a SubTexture2D.
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.drawCentered(x, y, w, h, tint, rotationRad, sub.Texture, sub.U0, sub.V0, sub.U1, sub.V1)
}

// DrawQuadVertices draws a quad from corners in top-left, top-right,
// bottom-left, bottom-right order. A nil tex draws untextured.
func (rd *Renderer2D) DrawQuadVertices(v [4]Vertex, tex core.Texture) {
	rd.ensureCapacity(vertsPerQuad, indsPerQuad)
	slot := rd.texSlot(tex)
	start := rd.appendVertices(v[:], slot)
	rd.inds = append(rd.inds,
		start+0, start+2, start+1,
		start+1, start+2, start+3,
	)
	rd.stats.QuadCount++
	rd.stats.vertices += vertsPerQuad
	rd.stats.indices += indsPerQuad
}

// DrawFan draws a convex polygon as a triangle fan around v[0]. The outline
// v[1:] is closed automatically.
func (rd *Renderer2D) DrawFan(v []Vertex, tex core.Texture) {
	n := len(v) - 1
	if n < 2 {
		return
	}
	nInds := 3 * n
	if len(v) > rd.maxVerts || nInds > rd.maxInds {
		panic(fmt.Sprintf("renderer2d: shape with %d vertices exceeds batch size", len(v)))
	}
	rd.ensureCapacity(len(v), nInds)
	slot := rd.texSlot(tex)
	center := rd.appendVertices(v, slot)
	for i := 1; i <= n; i++ {
		next := i + 1
		if next > n {
			next = 1
		}
		rd.inds = append(rd.inds, center, center+uint32(i), center+uint32(next))
	}
	rd.stats.ShapeCount++
	rd.stats.vertices += len(v)
	rd.stats.indices += nInds
}

// --- internals ---

func (rd *Renderer2D) drawCentered(x, y, w, h float32, color colors.Color, rotationRad float32, tex core.Texture, u0, v0, u1, v1 float32) {
	halfW := w * 0.5
	halfH := h * 0.5
	// Positive Y goes down so top is -halfH.
	local := [4]geom.Vec2{{X: -halfW, Y: -halfH}, {X: halfW, Y: -halfH}, {X: -halfW, Y: halfH}, {X: halfW, Y: halfH}}
	uvs := [4]geom.Vec2{{X: u0, Y: v0}, {X: u1, Y: v0}, {X: u0, Y: v1}, {X: u1, Y: v1}}
	sin, cos := math.Sincos(float64(rotationRad))
	c, s := float32(cos), float32(sin)

	var v [4]Vertex
	for i, p := range local {
		v[i] = Vertex{
			Pos:   geom.Vec2{X: p.X*c - p.Y*s + x, Y: p.X*s + p.Y*c + y},
			Color: color,
			UV:    uvs[i],
		}
	}
	rd.DrawQuadVertices(v, tex)
}

func (rd *Renderer2D) appendVertices(v []Vertex, slot float32) uint32 {
	start := uint32(len(rd.verts) / vStride)
	for _, p := range v {
		rd.verts = append(rd.verts,
			p.Pos.X, p.Pos.Y,
			p.Color[0], p.Color[1], p.Color[2], p.Color[3],
			p.UV.X, p.UV.Y,
			slot,
		)
	}
	return start
}

func (rd *Renderer2D) texSlot(t core.Texture) float32 {
	if t == nil {
		t = rd.white
	}
	for i := 0; i < rd.texCnt; i++ {
		if rd.texArr[i] == t {
			return float32(i)
		}
	}
	if rd.texCnt >= maxTexSlots {
		rd.flush()
	}
	rd.texArr[rd.texCnt] = t
	rd.texCnt++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.texCnt)
	return float32(rd.texCnt - 1)
}

func (rd *Renderer2D) ensureCapacity(nVerts, nInds int) {
	if len(rd.verts)/vStride+nVerts > rd.maxVerts || len(rd.inds)+nInds > rd.maxInds {
		rd.flush()
	}
}

func (rd *Renderer2D) flush() {
	if len(rd.inds) == 0 {
		return
	}

	if err := rd.r.UpdateMesh(rd.mesh, rd.verts, rd.inds); err != nil {
		panic(err)
	}

	clear(rd.samplers)
	for i := 0; i < rd.texCnt; i++ {
		rd.samplers[rd.texNames[i]] = rd.texArr[i]
	}

	clear(rd.uniforms)
	rd.uniforms["uVP"] = rd.vp
	for k, v := range rd.extraUniforms {
		rd.uniforms[k] = v
	}

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++

	rd.resetBatch()
}

func (rd *Renderer2D) resetBatch() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	for i := range rd.texArr {
		rd.texArr[i] = nil
	}
	rd.texArr[0] = rd.white
	rd.texCnt = 1
}
