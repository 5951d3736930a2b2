package voxel

import "testing"

func TestIsAirIsBlocked(t *testing.T) {
	air := Voxel{Material: Air}
	solid := Voxel{Material: Generic}
	if !IsAir(air) || IsBlocked(air) {
		t.Errorf("Air voxel misclassified: IsAir=%v IsBlocked=%v", IsAir(air), IsBlocked(air))
	}
	if IsAir(solid) || !IsBlocked(solid) {
		t.Errorf("Generic voxel misclassified: IsAir=%v IsBlocked=%v", IsAir(solid), IsBlocked(solid))
	}
}

func TestIsTransparent(t *testing.T) {
	if !IsTransparent(Voxel{Material: Transparent}) {
		t.Errorf("Transparent voxel not reported transparent")
	}
	if IsTransparent(Voxel{Material: Generic}) {
		t.Errorf("Generic voxel reported transparent")
	}
}

func TestIsSame(t *testing.T) {
	a := Voxel{Material: Generic, ColorIndex: 5, Flags: 1}
	b := Voxel{Material: Generic, ColorIndex: 5, Flags: 1}
	c := Voxel{Material: Generic, ColorIndex: 6, Flags: 1}
	d := Voxel{Material: Generic, ColorIndex: 5, Flags: 0}

	if !a.IsSame(b) {
		t.Errorf("expected identical voxels to compare same")
	}
	if a.IsSame(c) {
		t.Errorf("expected differing color index to compare different")
	}
	if a.IsSame(d) {
		t.Errorf("expected differing flags to compare different")
	}
}

func TestZeroValueVoxelIsAir(t *testing.T) {
	var v Voxel
	if !IsAir(v) {
		t.Errorf("zero-value Voxel must be Air (out-of-range Volume reads rely on this)")
	}
}
