// Package extract implements the four interchangeable surface extraction
// kernels (binary greedy, cubic, marching cubes, dual contouring) behind a
// single dispatch entry point. Every extractor is a pure function over its
// inputs: it borrows volume and palette read-only and fills the caller's
// mesh.ChunkMesh.
package extract

import (
	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

// SurfaceExtractionType selects which of the four kernels Extract runs.
type SurfaceExtractionType int

const (
	Cubic SurfaceExtractionType = iota
	MarchingCubes
	BinaryGreedy
	DualContouring
)

// Options carries the recognized runtime flags (spec §6.4) that alter
// extractor behavior. Not every option applies to every kernel; unused
// fields are ignored by the extractors that don't read them.
type Options struct {
	MergeQuads       bool // Cubic: enable adjacent-quad merging
	ReuseVertices    bool // Cubic: enable per-slot vertex deduplication
	AmbientOcclusion bool // Cubic/BinaryGreedy: compute AO and use it in dedup
}

// DefaultOptions mirrors the teacher-style package defaults: merging,
// vertex reuse, and AO all on.
func DefaultOptions() Options {
	return Options{MergeQuads: true, ReuseVertices: true, AmbientOcclusion: true}
}

// Extract dispatches to one of the four kernels. Pre-conditions: region is
// valid (Mins <= Maxs), out is non-nil. Post-conditions: out is cleared
// and holds the extracted geometry; all-Air input yields an empty mesh.
// Every kernel emits vertices at the volume coordinates it sampled, so
// the mesh already starts at region.LowerCorner(); no separate offset is
// applied or stored.
func Extract(kind SurfaceExtractionType, vol volume.Volume, region volume.Region, pal *voxel.Palette, out *mesh.ChunkMesh, options Options) {
	out.Clear()
	if !region.Valid() {
		return
	}

	switch kind {
	case Cubic:
		extractCubic(vol, region, out, options)
	case BinaryGreedy:
		extractBinaryGreedy(vol, region, out, options)
	case MarchingCubes:
		extractMarchingCubes(vol, region, pal, out.Opaque)
	case DualContouring:
		extractDualContouring(vol, region, pal, out.Opaque)
	}
}

// vertexAO computes the 0-3 ambient occlusion level for one corner of a
// face from the two face-adjacent side samples and the diagonal corner
// sample (all booleans: true = blocked). Shared by the cubic extractor
// and the binary greedy mesher (spec §4.3/§4.4).
func vertexAO(side1, side2, corner bool) uint8 {
	if side1 && side2 {
		return 0
	}
	n := 0
	if side1 {
		n++
	}
	if side2 {
		n++
	}
	if corner {
		n++
	}
	return uint8(3 - n)
}

// isQuadFlipped picks the diagonal that minimizes AO anisotropy: true
// means the quad is split along the v10-v01 diagonal rather than the
// default v00-v11 diagonal (shared by cubic and greedy).
func isQuadFlipped(aoLB, aoRB, aoLF, aoRF uint8) bool {
	return int(aoLB)+int(aoRF) > int(aoRB)+int(aoLF)
}
