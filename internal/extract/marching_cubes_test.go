package extract

import (
	"testing"

	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

func TestMCDensityIsolevelSplit(t *testing.T) {
	if mcDensity(voxel.Voxel{Material: voxel.Air}) >= mcIsolevel {
		t.Errorf("Air density must fall below the isolevel")
	}
	if mcDensity(voxel.Voxel{Material: voxel.Generic}) < mcIsolevel {
		t.Errorf("solid density must fall at or above the isolevel")
	}
}

// TestMarchingCubesIsolatedVoxelProducesWellFormedMesh covers spec §8's "S4"
// scenario in spirit: a single solid sample surrounded by air, with the
// region expanded enough to visit every cube touching the transition,
// produces a well-formed mesh (non-empty, one normal per vertex, valid
// indices, a whole number of triangles).
func TestMarchingCubesIsolatedVoxelProducesWellFormedMesh(t *testing.T) {
	r := volume.NewRegion(-1, -1, -1, 0, 0, 0)
	d := volume.NewDense(volume.NewRegion(-2, -2, -2, 2, 2, 2))
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 5})
	pal := voxel.NewPalette()
	pal.Set(5, voxel.RGBA{R: 200, G: 0, B: 0, A: 255}, voxel.MaterialInfo{})

	out := mesh.NewMesh()
	extractMarchingCubes(d, r, pal, out)

	if out.IsEmpty() {
		t.Fatalf("expected an isolated solid sample to produce a surface")
	}
	if len(out.Normals) != out.VertexCount() {
		t.Fatalf("Normals length %d != VertexCount %d", len(out.Normals), out.VertexCount())
	}
	for _, idx := range out.Indices {
		if int(idx) >= out.VertexCount() {
			t.Fatalf("index %d out of range (VertexCount=%d)", idx, out.VertexCount())
		}
	}
	if len(out.Indices)%3 != 0 {
		t.Fatalf("triangle count must be a whole number of triangles")
	}
}

func TestMarchingCubesAllAirIsEmpty(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 3, 3)
	d := volume.NewDense(r)
	out := mesh.NewMesh()
	extractMarchingCubes(d, r, voxel.NewPalette(), out)
	if !out.IsEmpty() {
		t.Errorf("expected all-Air region to yield no surface")
	}
}

func TestMarchingCubesDeterministic(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 3, 3)
	d := volume.NewDense(r)
	d.Set(1, 1, 1, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	d.Set(2, 1, 1, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	pal := voxel.NewPalette()

	out1 := mesh.NewMesh()
	out2 := mesh.NewMesh()
	extractMarchingCubes(d, r, pal, out1)
	extractMarchingCubes(d, r, pal, out2)

	if out1.VertexCount() != out2.VertexCount() || out1.TriangleCount() != out2.TriangleCount() {
		t.Errorf("non-deterministic extraction: (%d,%d) vs (%d,%d)",
			out1.VertexCount(), out1.TriangleCount(), out2.VertexCount(), out2.TriangleCount())
	}
}

func TestMarchingCubesVertexPositionsWithinExpandedRegion(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 1, 1, 1)
	d := volume.NewDense(volume.NewRegion(-1, -1, -1, 2, 2, 2))
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	d.Set(1, 1, 1, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	out := mesh.NewMesh()
	extractMarchingCubes(d, r, voxel.NewPalette(), out)

	for _, v := range out.Vertices {
		if v.X < -1 || v.X > 3 || v.Y < -1 || v.Y > 3 || v.Z < -1 || v.Z > 3 {
			t.Errorf("vertex %v escaped the region's one-cell-expanded neighborhood", v)
		}
	}
}
