package volume

import (
	"testing"

	"voxelcore/internal/voxel"
)

func TestDenseDefaultsToAir(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 3, 3, 3))
	v := d.Voxel(1, 1, 1)
	if !voxel.IsAir(v) {
		t.Errorf("expected fresh Dense volume to default to Air, got %v", v)
	}
}

func TestDenseSetAndGet(t *testing.T) {
	r := NewRegion(0, 0, 0, 3, 3, 3)
	d := NewDense(r)
	want := voxel.Voxel{Material: voxel.Generic, ColorIndex: 9}
	d.Set(2, 1, 3, want)
	if got := d.Voxel(2, 1, 3); got != want {
		t.Errorf("Voxel(2,1,3) = %v, want %v", got, want)
	}
	if got := d.Voxel(0, 0, 0); !voxel.IsAir(got) {
		t.Errorf("expected unrelated cell to remain Air, got %v", got)
	}
}

func TestDenseOutOfRangeReadsAir(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 1, 1, 1))
	d.Set(0, 0, 0, voxel.Voxel{Material: voxel.Generic})
	if got := d.Voxel(5, 5, 5); !voxel.IsAir(got) {
		t.Errorf("expected out-of-range read to be Air, got %v", got)
	}
}

func TestDenseOutOfRangeWriteIsNoop(t *testing.T) {
	d := NewDense(NewRegion(0, 0, 0, 1, 1, 1))
	d.Set(99, 99, 99, voxel.Voxel{Material: voxel.Generic})
	if got := d.Voxel(0, 0, 0); !voxel.IsAir(got) {
		t.Errorf("out-of-range write leaked into in-range cell: %v", got)
	}
}

func TestDenseRegion(t *testing.T) {
	r := NewRegion(1, 2, 3, 4, 5, 6)
	d := NewDense(r)
	if d.Region() != r {
		t.Errorf("Region() = %v, want %v", d.Region(), r)
	}
}
