package extract

import (
	"testing"

	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

func TestIsQuadNeededOpaque(t *testing.T) {
	solid := voxel.Voxel{Material: voxel.Generic}
	air := voxel.Voxel{Material: voxel.Air}
	if !isQuadNeeded(solid, air, false) {
		t.Errorf("expected a quad between solid and air")
	}
	if isQuadNeeded(solid, solid, false) {
		t.Errorf("expected no quad between two solid voxels")
	}
	if isQuadNeeded(air, solid, false) {
		t.Errorf("expected no quad when the back voxel is air")
	}
}

func TestIsQuadNeededTransparent(t *testing.T) {
	glass := voxel.Voxel{Material: voxel.Transparent}
	air := voxel.Voxel{Material: voxel.Air}
	if !isQuadNeeded(glass, air, true) {
		t.Errorf("expected a transparent quad between glass and air")
	}
	if isQuadNeeded(glass, glass, true) {
		t.Errorf("expected no quad between two transparent voxels of the same class")
	}
}

// TestCubicSingleVoxelIsClosedSurface covers spec §8's single-voxel
// closed-surface property: a lone solid voxel produces exactly 6 quads
// (12 triangles), and every emitted index is in range.
func TestCubicSingleVoxelIsClosedSurface(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 0, 0, 0)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 4})
	out := mesh.NewChunkMesh()
	extractCubic(d, r, out, DefaultOptions())

	m := out.Opaque
	if m.TriangleCount() != 12 {
		t.Fatalf("TriangleCount() = %d, want 12 (6 faces x 2 triangles)", m.TriangleCount())
	}
	if m.VertexCount() > 8 {
		t.Errorf("VertexCount() = %d, want <= 8 (deduplicated cube corners)", m.VertexCount())
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range (VertexCount=%d)", idx, m.VertexCount())
		}
	}
	if !out.Transparent.IsEmpty() {
		t.Errorf("expected opaque-only geometry for a Generic voxel")
	}
}

func TestCubicTwoAdjacentVoxelsShareNoInternalFace(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 1, 0, 0)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	d.Set(1, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	out := mesh.NewChunkMesh()
	extractCubic(d, r, out, DefaultOptions())

	// Two same-material voxels fused along X behave like a single 2x1x1
	// box: the shared internal face never appears, and merging collapses
	// each of the box's 6 outer faces into one quad, for 12 triangles
	// total regardless of the box's footprint size.
	if m := out.Opaque; m.TriangleCount() != 12 {
		t.Fatalf("TriangleCount() = %d, want 12 (6 merged box faces x 2 triangles, no internal face)", m.TriangleCount())
	}
}

func TestCubicTransparentRoutedToTransparentMesh(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 0, 0, 0)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Transparent, ColorIndex: 2})
	out := mesh.NewChunkMesh()
	extractCubic(d, r, out, DefaultOptions())

	if out.Opaque.TriangleCount() != 0 {
		t.Errorf("expected no opaque triangles for a lone transparent voxel")
	}
	if out.Transparent.TriangleCount() != 12 {
		t.Errorf("TriangleCount() = %d, want 12 for a closed transparent cube", out.Transparent.TriangleCount())
	}
}

func TestCubicDeterministic(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 3, 3)
	d := volume.NewDense(r)
	for i := 0; i < 10; i++ {
		d.Set(i%4, (i*3)%4, (i*7)%4, voxel.Voxel{Material: voxel.Generic, ColorIndex: uint8(i)})
	}
	out1 := mesh.NewChunkMesh()
	out2 := mesh.NewChunkMesh()
	extractCubic(d, r, out1, DefaultOptions())
	extractCubic(d, r, out2, DefaultOptions())
	if out1.Opaque.TriangleCount() != out2.Opaque.TriangleCount() {
		t.Fatalf("non-deterministic triangle count: %d vs %d", out1.Opaque.TriangleCount(), out2.Opaque.TriangleCount())
	}
	if out1.Opaque.VertexCount() != out2.Opaque.VertexCount() {
		t.Errorf("non-deterministic vertex count: %d vs %d", out1.Opaque.VertexCount(), out2.Opaque.VertexCount())
	}
}
