// Package mesh holds the surface-extraction output types shared by every
// kernel in internal/extract: a flat vertex/index buffer (Mesh) and the
// opaque/transparent pair an extractor fills for one region (ChunkMesh).
package mesh

import (
	"voxelcore/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// NoNormal is the sentinel normalIndex meaning "no palette normal; use the
// computed per-vertex normal in Mesh.Normals instead."
const NoNormal uint8 = 255

// VoxelVertex is one emitted mesh vertex. Position is in the coordinate
// space of the volume it was extracted from; ColorIndex indexes the palette. NormalIndex is either a
// palette normal slot or NoNormal, in which case the extractor also pushes
// a computed vec3 onto the owning Mesh's Normals slice.
type VoxelVertex struct {
	X, Y, Z     float32
	ColorIndex  uint8
	NormalIndex uint8
	AO          uint8
	Flags       uint8
}

// Mesh is an indexed triangle list: one contiguous vertex buffer plus a
// triangle index buffer, with parallel optional UV/normal buffers. Extractors
// append to it monotonically; once added, a vertex is changed in this
// package only by SetNormal (NormalIndex), Translate (position) and
// RemoveUnusedVertices.
type Mesh struct {
	Vertices []VoxelVertex
	Indices  []uint32
	UVs      []mgl32.Vec2
	Normals  []mgl32.Vec3
}

// NewMesh returns an empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v VoxelVertex) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, v)
	return idx
}

// SetNormal records the computed normal for an already-added vertex (MC/DC).
// The Normals slice grows up to vertexIndex, zero-filling any gap; its
// length matches Vertices when the last added vertex has had its normal
// set, as MC and DC do for every vertex they add.
func (m *Mesh) SetNormal(vertexIndex uint32, n mgl32.Vec3) {
	for len(m.Normals) <= int(vertexIndex) {
		m.Normals = append(m.Normals, mgl32.Vec3{})
	}
	m.Normals[vertexIndex] = n
	m.Vertices[vertexIndex].NormalIndex = NoNormal
}

// AddTriangle appends one triangle referencing three existing vertices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddQuad appends two triangles (a,b,c) and (a,c,d) covering the
// quadrilateral a-b-c-d in winding order.
func (m *Mesh) AddQuad(a, b, c, d uint32) {
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool { return len(m.Indices) == 0 }

// Clear resets the mesh to empty while keeping the underlying arrays'
// capacity, so a ChunkMesh can be reused across successive region
// extractions without reallocating every call.
func (m *Mesh) Clear() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.UVs = m.UVs[:0]
	m.Normals = m.Normals[:0]
}

// Translate adds (dx,dy,dz) to every vertex position, e.g. to place a
// region-local mesh into world space. ChunkMesh.SetOffset applies it to
// both channels.
func (m *Mesh) Translate(dx, dy, dz float32) {
	defer profiling.Track("mesh.Translate")()
	for i := range m.Vertices {
		m.Vertices[i].X += dx
		m.Vertices[i].Y += dy
		m.Vertices[i].Z += dz
	}
}

// RemoveUnusedVertices drops vertices with no referencing index and
// remaps the index buffer accordingly. No extractor calls it itself;
// Dual Contouring can leave such vertices behind (a cell vertex none of
// whose surrounding edges emits a quad), which a caller can shed with
// this or Optimize.
func (m *Mesh) RemoveUnusedVertices() {
	defer profiling.Track("mesh.RemoveUnusedVertices")()
	used := make([]bool, len(m.Vertices))
	for _, idx := range m.Indices {
		used[idx] = true
	}
	remap := make([]uint32, len(m.Vertices))
	out := m.Vertices[:0]
	for i, v := range m.Vertices {
		if !used[i] {
			continue
		}
		remap[i] = uint32(len(out))
		out = append(out, v)
	}
	m.Vertices = out
	for i, idx := range m.Indices {
		m.Indices[i] = remap[idx]
	}
	if len(m.Normals) > 0 {
		normOut := m.Normals[:0]
		for i, n := range m.Normals {
			if used[i] {
				normOut = append(normOut, n)
			}
		}
		m.Normals = normOut
	}
	if len(m.UVs) > 0 {
		uvOut := m.UVs[:0]
		for i, uv := range m.UVs {
			if used[i] {
				uvOut = append(uvOut, uv)
			}
		}
		m.UVs = uvOut
	}
}

// CompressIndices returns the index buffer narrowed to uint16, matching
// the teacher's GPU upload path which prefers 16-bit indices when a mesh
// is small enough. The width is always 16 bits: the result is lossless
// only when FitsUint16 reports true, and indices above 0xFFFF are
// truncated. Each value widens back with uint32(v).
func (m *Mesh) CompressIndices() []uint16 {
	defer profiling.Track("mesh.CompressIndices")()
	out := make([]uint16, len(m.Indices))
	for i, idx := range m.Indices {
		out[i] = uint16(idx)
	}
	return out
}

// FitsUint16 reports whether every index fits in 16 bits, i.e. whether
// CompressIndices is lossless for this mesh.
func (m *Mesh) FitsUint16() bool {
	for _, idx := range m.Indices {
		if idx > 0xFFFF {
			return false
		}
	}
	return true
}

// Optimize performs the mesh's one post-processing pass: dropping any
// vertex no index references. Extractors that never allocate a sparse
// vertex slab (Cubic, Binary Greedy) have nothing to optimize and skip
// the call.
func (m *Mesh) Optimize() {
	m.RemoveUnusedVertices()
}

// ChunkMesh is the per-region extraction result, split into an opaque
// and a transparent mesh the way the teacher split solid vs liquid
// geometry into separate draw batches.
type ChunkMesh struct {
	Opaque      *Mesh
	Transparent *Mesh
}

// NewChunkMesh returns a ChunkMesh with both channels allocated and empty.
func NewChunkMesh() *ChunkMesh {
	return &ChunkMesh{Opaque: NewMesh(), Transparent: NewMesh()}
}

// Clear empties both channels for reuse.
func (cm *ChunkMesh) Clear() {
	cm.Opaque.Clear()
	cm.Transparent.Clear()
}

// IsEmpty reports whether neither channel has any triangles.
func (cm *ChunkMesh) IsEmpty() bool {
	return cm.Opaque.IsEmpty() && cm.Transparent.IsEmpty()
}

// SetOffset translates both channels by (dx,dy,dz), e.g. to move a
// region-local ChunkMesh into world space once filled.
func (cm *ChunkMesh) SetOffset(dx, dy, dz float32) {
	cm.Opaque.Translate(dx, dy, dz)
	cm.Transparent.Translate(dx, dy, dz)
}

// ForMaterial returns the channel an extractor should write a vertex into
// given whether the voxel it belongs to is transparent.
func (cm *ChunkMesh) ForMaterial(transparent bool) *Mesh {
	if transparent {
		return cm.Transparent
	}
	return cm.Opaque
}
