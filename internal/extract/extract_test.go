package extract

import (
	"testing"

	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

func singleVoxelVolume() (*volume.Dense, volume.Region) {
	r := volume.NewRegion(0, 0, 0, 0, 0, 0)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	return d, r
}

func TestExtractInvalidRegionYieldsEmptyMesh(t *testing.T) {
	d, _ := singleVoxelVolume()
	bad := volume.NewRegion(0, 0, 0, -1, 0, 0)
	out := mesh.NewChunkMesh()
	for _, kind := range []SurfaceExtractionType{Cubic, BinaryGreedy, MarchingCubes, DualContouring} {
		out.Opaque.AddVertex(mesh.VoxelVertex{}) // dirty the mesh so Clear is exercised
		Extract(kind, d, bad, voxel.NewPalette(), out, DefaultOptions())
		if !out.IsEmpty() {
			t.Errorf("kind %v: expected invalid region to yield empty mesh", kind)
		}
	}
}

func TestExtractAllAirYieldsEmptyMesh(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 3, 3)
	d := volume.NewDense(r)
	out := mesh.NewChunkMesh()
	for _, kind := range []SurfaceExtractionType{Cubic, BinaryGreedy, MarchingCubes, DualContouring} {
		Extract(kind, d, r, voxel.NewPalette(), out, DefaultOptions())
		if !out.IsEmpty() {
			t.Errorf("kind %v: expected all-Air volume to yield empty mesh", kind)
		}
	}
}

func TestExtractSetsOffsetToLowerCorner(t *testing.T) {
	r := volume.NewRegion(5, 5, 5, 5, 5, 5)
	d := volume.NewDense(r)
	d.Set(5, 5, 5, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	out := mesh.NewChunkMesh()
	Extract(Cubic, d, r, voxel.NewPalette(), out, DefaultOptions())
	if out.Opaque.IsEmpty() {
		t.Fatalf("expected a solid single-voxel volume to produce geometry")
	}
	for _, v := range out.Opaque.Vertices {
		if v.X < 5 || v.X > 6 || v.Y < 5 || v.Y > 6 || v.Z < 5 || v.Z > 6 {
			t.Errorf("vertex %v not translated into world space by the region's lower corner", v)
		}
	}
}

func TestVertexAO(t *testing.T) {
	if got := vertexAO(true, true, false); got != 0 {
		t.Errorf("vertexAO(true,true,false) = %d, want 0", got)
	}
	if got := vertexAO(false, false, false); got != 3 {
		t.Errorf("vertexAO(false,false,false) = %d, want 3", got)
	}
	if got := vertexAO(true, false, false); got != 2 {
		t.Errorf("vertexAO(true,false,false) = %d, want 2", got)
	}
	if got := vertexAO(false, false, true); got != 2 {
		t.Errorf("vertexAO(false,false,true) = %d, want 2", got)
	}
}

func TestIsQuadFlipped(t *testing.T) {
	if isQuadFlipped(3, 3, 3, 3) {
		t.Errorf("uniform AO should never flip the diagonal")
	}
	if !isQuadFlipped(3, 0, 0, 3) {
		t.Errorf("expected anisotropic AO (3,0,0,3) to flip the diagonal")
	}
}
