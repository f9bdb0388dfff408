package renderer

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lahkro/snowfall/particles"
)

// raylib vertex buffer index for the texcoord channel, where the shared
// scale rides. Only this buffer is re-uploaded on viewport resize.
const texcoordBufferIndex = 1

// Field owns one particle batch's GPU buffers paired with a Material.
// Two instances coexist: the snow-dominant population and the sprite
// minority. Fields are rebuilt wholesale on parameter changes, never
// mutated per particle.
type Field struct {
	Mat *Material

	mesh  rl.Mesh
	model rl.Model
	count int

	// CPU-side copies backing the GPU buffers. Kept alive for the mesh
	// lifetime and for in-place scale rewrites.
	positions []float32
	texcoords []float32 // interleaved (scale, angle) per particle
	normals   []float32 // interleaved (velocityY, amplitudeX, 0) per particle
}

// NewField uploads a dynamic point mesh holding the batch attributes and
// pairs it with the given material. An empty batch yields a field that
// draws nothing.
func NewField(batch particles.Batch, mat *Material) *Field {
	f := &Field{
		Mat:   mat,
		count: batch.Count,
	}
	if batch.Count == 0 {
		return f
	}

	f.positions = batch.Positions
	f.texcoords = make([]float32, batch.Count*2)
	f.normals = make([]float32, batch.Count*3)
	for i := 0; i < batch.Count; i++ {
		f.texcoords[i*2+0] = batch.Scales[i]
		f.texcoords[i*2+1] = batch.Angles[i]
		f.normals[i*3+0] = batch.VelocitiesY[i]
		f.normals[i*3+1] = batch.AmplitudesX[i]
	}

	f.mesh = rl.Mesh{
		VertexCount:   int32(batch.Count),
		TriangleCount: 0,
	}
	f.mesh.Vertices = &f.positions[0]
	f.mesh.Texcoords = &f.texcoords[0]
	f.mesh.Normals = &f.normals[0]

	// Dynamic upload: the texcoord buffer is rewritten on every resize.
	rl.UploadMesh(&f.mesh, true)

	f.model = rl.LoadModelFromMesh(f.mesh)
	mats := f.model.GetMaterials()
	mats[0].Shader = mat.Shader
	rl.SetMaterialTexture(&mats[0], rl.MapDiffuse, mat.Texture)

	return f
}

// Count returns the number of particles in the field.
func (f *Field) Count() int {
	if f == nil {
		return 0
	}
	return f.count
}

// Draw issues one point-mode draw of the whole field. A nil or empty
// field draws nothing, so a degraded scene stays safe to render.
func (f *Field) Draw() {
	if f == nil || f.count == 0 {
		return
	}
	rl.BeginBlendMode(rl.BlendAlpha)
	rl.DrawModelPoints(f.model, rl.Vector3{}, 1.0, rl.White)
	rl.EndBlendMode()
}

// Rescale overwrites the shared scale slot of every particle with the new
// viewport height and re-uploads only the affected buffer. Positions and
// motion attributes are untouched.
func (f *Field) Rescale(viewportH float32) {
	if f == nil || f.count == 0 {
		return
	}
	for i := 0; i < f.count; i++ {
		f.texcoords[i*2] = viewportH
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(&f.texcoords[0])), len(f.texcoords)*4)
	rl.UpdateMeshBuffer(f.mesh, texcoordBufferIndex, data, 0)
}

// Unload frees the GPU vertex buffers. The material is owned by the scene
// and released separately, so a material rebuild can outlive its fields.
func (f *Field) Unload() {
	if f == nil || f.count == 0 {
		return
	}
	rl.UnloadMesh(&f.mesh)
	f.count = 0
	f.positions = nil
	f.texcoords = nil
	f.normals = nil
}
