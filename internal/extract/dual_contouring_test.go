package extract

import (
	"testing"

	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

func TestDualContouringAllAirIsEmpty(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 3, 3)
	d := volume.NewDense(r)
	out := mesh.NewMesh()
	extractDualContouring(d, r, voxel.NewPalette(), out)
	if !out.IsEmpty() {
		t.Errorf("expected all-Air region to yield no surface")
	}
}

func TestDualContouringProducesValidIndicesAndNormals(t *testing.T) {
	r := volume.NewRegion(-1, -1, -1, 1, 1, 1)
	d := volume.NewDense(volume.NewRegion(-2, -2, -2, 2, 2, 2))
	for x := -1; x <= 0; x++ {
		for y := -1; y <= 0; y++ {
			for z := -1; z <= 0; z++ {
				d.Set(x, y, z, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
			}
		}
	}
	out := mesh.NewMesh()
	extractDualContouring(d, r, voxel.NewPalette(), out)

	if out.IsEmpty() {
		t.Fatalf("expected a solid 2x2x2 block to produce a surface")
	}
	for _, idx := range out.Indices {
		if int(idx) >= out.VertexCount() {
			t.Fatalf("index %d out of range (VertexCount=%d)", idx, out.VertexCount())
		}
	}
	if len(out.Normals) != out.VertexCount() {
		t.Fatalf("Normals length %d != VertexCount %d", len(out.Normals), out.VertexCount())
	}
}

// TestDualContouringVertexStaysNearItsCell checks the spec §4.6 QEF
// positional bound: every emitted vertex lies within [-0.01, 1.01] of its
// owning cell on each axis (the clamp applied after solve()).
func TestDualContouringVertexStaysNearItsCell(t *testing.T) {
	r := volume.NewRegion(-2, -2, -2, 2, 2, 2)
	d := volume.NewDense(volume.NewRegion(-3, -3, -3, 3, 3, 3))
	for x := -2; x <= 0; x++ {
		for y := -2; y <= 0; y++ {
			for z := -2; z <= 0; z++ {
				d.Set(x, y, z, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
			}
		}
	}
	out := mesh.NewMesh()
	extractDualContouring(d, r, voxel.NewPalette(), out)

	for _, v := range out.Vertices {
		if v.X != v.X || v.Y != v.Y || v.Z != v.Z { // NaN check
			t.Fatalf("vertex %v contains NaN", v)
		}
		// The QEF clamp bounds each vertex within [-0.01, 1.01] of its
		// owning cell, so around a solid block spanning [-2,0] on every
		// axis (no cell outside [-2,0] carries a vertex) no vertex should
		// stray past [-2.02, 1.02].
		if v.X < -2.02 || v.X > 1.02 || v.Y < -2.02 || v.Y > 1.02 || v.Z < -2.02 || v.Z > 1.02 {
			t.Errorf("vertex %v escaped the clamped per-cell bound", v)
		}
	}
}

func TestDualContouringDeterministic(t *testing.T) {
	r := volume.NewRegion(-1, -1, -1, 1, 1, 1)
	d := volume.NewDense(volume.NewRegion(-2, -2, -2, 2, 2, 2))
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	out1 := mesh.NewMesh()
	out2 := mesh.NewMesh()
	extractDualContouring(d, r, voxel.NewPalette(), out1)
	extractDualContouring(d, r, voxel.NewPalette(), out2)
	if out1.VertexCount() != out2.VertexCount() || out1.TriangleCount() != out2.TriangleCount() {
		t.Errorf("non-deterministic extraction: (%d,%d) vs (%d,%d)",
			out1.VertexCount(), out1.TriangleCount(), out2.VertexCount(), out2.TriangleCount())
	}
}
