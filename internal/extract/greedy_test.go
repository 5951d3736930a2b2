package extract

import (
	"testing"

	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

func TestBitColumnSetGet(t *testing.T) {
	c := newBitColumn(70) // spans two 64-bit words
	c.set(0)
	c.set(63)
	c.set(64)
	c.set(69)
	for _, i := range []int{0, 63, 64, 69} {
		if !c.get(i) {
			t.Errorf("bit %d expected set", i)
		}
	}
	for _, i := range []int{1, 62, 65, 68} {
		if c.get(i) {
			t.Errorf("bit %d expected clear", i)
		}
	}
	if c.get(-1) || c.get(70) {
		t.Errorf("out-of-range get must return false")
	}
}

func TestBitColumnShiftRight1(t *testing.T) {
	c := newBitColumn(8)
	c.set(3)
	s := c.shiftRight1()
	if !s.get(2) {
		t.Errorf("shiftRight1: expected bit 2 set (was bit 3)")
	}
	if s.get(3) {
		t.Errorf("shiftRight1: expected bit 3 clear")
	}
}

func TestBitColumnAndNot(t *testing.T) {
	a := newBitColumn(4)
	a.set(0)
	a.set(1)
	b := newBitColumn(4)
	b.set(1)
	r := a.andNot(b)
	if !r.get(0) || r.get(1) {
		t.Errorf("andNot result wrong: bit0=%v bit1=%v, want true/false", r.get(0), r.get(1))
	}
}

func TestBitColumnStripBorder(t *testing.T) {
	c := newBitColumn(5)
	for i := 0; i < 5; i++ {
		c.set(i)
	}
	s := c.stripBorder()
	if s.get(0) || s.get(4) {
		t.Errorf("stripBorder must clear bit 0 and bit n-1")
	}
	for i := 1; i < 4; i++ {
		if !s.get(i) {
			t.Errorf("stripBorder must not touch interior bit %d", i)
		}
	}
}

func TestReverseColumn(t *testing.T) {
	c := newBitColumn(4)
	c.set(0)
	r := reverseColumn(c)
	if !r.get(3) || r.get(0) {
		t.Errorf("reverseColumn: bit0=%v bit3=%v, want false/true", r.get(0), r.get(3))
	}
}

// TestBinaryGreedySingleVoxelIsClosedSurface mirrors the cubic extractor's
// single-voxel property (spec §8): one solid voxel meshes to a closed
// 12-triangle box with valid indices.
func TestBinaryGreedySingleVoxelIsClosedSurface(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 0, 0, 0)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 2})
	out := mesh.NewChunkMesh()
	extractBinaryGreedy(d, r, out, DefaultOptions())

	m := out.Opaque
	if m.TriangleCount() != 12 {
		t.Fatalf("TriangleCount() = %d, want 12", m.TriangleCount())
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range (VertexCount=%d)", idx, m.VertexCount())
		}
	}
}

func TestBinaryGreedyMergesLargeSlab(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 3, 0, 3)
	d := volume.NewDense(r)
	for x := 0; x <= 3; x++ {
		for z := 0; z <= 3; z++ {
			d.Set(x, 0, z, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
		}
	}
	out := mesh.NewChunkMesh()
	extractBinaryGreedy(d, r, out, DefaultOptions())

	// A flat 4x1x4 slab is a closed box: 6 faces, merged to 6 quads = 12
	// triangles, independent of the 16-cell footprint.
	if got := out.Opaque.TriangleCount(); got != 12 {
		t.Errorf("TriangleCount() = %d, want 12 for a fully-merged flat slab", got)
	}
}

func TestBinaryGreedyAndCubicAgreeOnTriangleCount(t *testing.T) {
	r := volume.NewRegion(0, 0, 0, 2, 2, 2)
	d := volume.NewDense(r)
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	d.Set(1, 0, 0, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	d.Set(2, 2, 2, voxel.Voxel{Material: voxel.Generic, ColorIndex: 3})

	cubicOut := mesh.NewChunkMesh()
	greedyOut := mesh.NewChunkMesh()
	extractCubic(d, r, cubicOut, DefaultOptions())
	extractBinaryGreedy(d, r, greedyOut, DefaultOptions())

	if cubicOut.Opaque.TriangleCount() != greedyOut.Opaque.TriangleCount() {
		t.Errorf("cubic/greedy triangle count mismatch: %d vs %d", cubicOut.Opaque.TriangleCount(), greedyOut.Opaque.TriangleCount())
	}
}
