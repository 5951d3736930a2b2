package volume

import (
	"testing"

	"voxelcore/internal/voxel"
)

func TestSamplerVoxelAtCursor(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 3, 3, 3))
	want := voxel.Voxel{Material: voxel.Generic, ColorIndex: 3}
	d.Set(1, 1, 1, want)
	s := NewSampler(d, 1, 1, 1)
	if got := s.Voxel(); got != want {
		t.Errorf("Voxel() = %v, want %v", got, want)
	}
}

func TestSamplerPeekDoesNotMove(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 3, 3, 3))
	d.Set(2, 1, 1, voxel.Voxel{Material: voxel.Generic})
	s := NewSampler(d, 1, 1, 1)
	_ = s.Peek(1, 0, 0)
	x, y, z := s.Position()
	if x != 1 || y != 1 || z != 1 {
		t.Errorf("Peek moved the cursor: position = (%d,%d,%d)", x, y, z)
	}
}

func TestSamplerFaceWrappersMatchPeek(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 3, 3, 3))
	d.Set(2, 1, 1, voxel.Voxel{Material: voxel.Generic, ColorIndex: 1})
	s := NewSampler(d, 1, 1, 1)
	if s.PeekPositiveX() != s.Peek(1, 0, 0) {
		t.Errorf("PeekPositiveX mismatched Peek(1,0,0)")
	}
	if s.PeekNegativeX() != s.Peek(-1, 0, 0) {
		t.Errorf("PeekNegativeX mismatched Peek(-1,0,0)")
	}
	if s.PeekPositiveY() != s.Peek(0, 1, 0) {
		t.Errorf("PeekPositiveY mismatched Peek(0,1,0)")
	}
	if s.PeekNegativeY() != s.Peek(0, -1, 0) {
		t.Errorf("PeekNegativeY mismatched Peek(0,-1,0)")
	}
	if s.PeekPositiveZ() != s.Peek(0, 0, 1) {
		t.Errorf("PeekPositiveZ mismatched Peek(0,0,1)")
	}
	if s.PeekNegativeZ() != s.Peek(0, 0, -1) {
		t.Errorf("PeekNegativeZ mismatched Peek(0,0,-1)")
	}
}

func TestSamplerMoveMethods(t *testing.T) {
	d := NewDense(NewRegion(-2, -2, -2, 2, 2, 2))
	s := NewSampler(d, 0, 0, 0)
	s.MovePositiveX()
	s.MovePositiveY()
	s.MovePositiveZ()
	if x, y, z := s.Position(); x != 1 || y != 1 || z != 1 {
		t.Fatalf("after positive moves, position = (%d,%d,%d), want (1,1,1)", x, y, z)
	}
	s.MoveNegativeX()
	s.MoveNegativeY()
	s.MoveNegativeZ()
	if x, y, z := s.Position(); x != 0 || y != 0 || z != 0 {
		t.Fatalf("after negative moves, position = (%d,%d,%d), want (0,0,0)", x, y, z)
	}
}

func TestSamplerOutOfRangePeekIsAir(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 1, 1, 1))
	s := NewSampler(d, 0, 0, 0)
	if got := s.Peek(-5, -5, -5); !voxel.IsAir(got) {
		t.Errorf("expected out-of-range peek to resolve to Air, got %v", got)
	}
}
