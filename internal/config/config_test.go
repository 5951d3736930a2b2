package config

import "testing"

func TestMeshModeRoundTrip(t *testing.T) {
	orig := GetMeshMode()
	defer SetMeshMode(orig)

	SetMeshMode(MeshModeDualContouring)
	if got := GetMeshMode(); got != MeshModeDualContouring {
		t.Errorf("GetMeshMode() = %v, want MeshModeDualContouring", got)
	}
}

func TestExtractionToggles(t *testing.T) {
	origMerge, origReuse, origAO := GetMergeQuads(), GetReuseVertices(), GetAmbientOcclusion()
	defer func() {
		SetMergeQuads(origMerge)
		SetReuseVertices(origReuse)
		SetAmbientOcclusion(origAO)
	}()

	SetMergeQuads(false)
	SetReuseVertices(false)
	SetAmbientOcclusion(false)
	if GetMergeQuads() || GetReuseVertices() || GetAmbientOcclusion() {
		t.Fatalf("expected all three toggles to read back false")
	}

	SetMergeQuads(true)
	if !GetMergeQuads() {
		t.Errorf("expected MergeQuads to read back true")
	}
}
