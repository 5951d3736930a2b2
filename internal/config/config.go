// Package config holds the runtime-tunable extraction settings (§6.4):
// the mesh_mode algorithm selector and the per-algorithm toggles. It
// follows the same package-level, mutex-guarded settings struct the
// teacher used for its render settings.
package config

import "sync"

// MeshMode selects which of the four extraction kernels a caller wants.
type MeshMode int

const (
	MeshModeCubic MeshMode = iota
	MeshModeMarchingCubes
	MeshModeBinaryGreedy
	MeshModeDualContouring
)

// ExtractionSettings holds the recognized runtime flags that alter
// extractor behavior.
type ExtractionSettings struct {
	mu               sync.RWMutex
	meshMode         MeshMode
	mergeQuads       bool // Cubic: enable adjacent-quad merging
	reuseVertices    bool // Cubic: enable per-slot vertex deduplication
	ambientOcclusion bool // Cubic/BinaryGreedy: compute 2-bit AO per vertex
}

var globalExtractionSettings = &ExtractionSettings{
	meshMode:         MeshModeBinaryGreedy,
	mergeQuads:       true,
	reuseVertices:    true,
	ambientOcclusion: true,
}

// GetMeshMode returns the configured extraction algorithm.
func GetMeshMode() MeshMode {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.meshMode
}

// SetMeshMode selects the extraction algorithm used by the dispatcher.
func SetMeshMode(mode MeshMode) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()
	globalExtractionSettings.meshMode = mode
}

// GetMergeQuads returns whether the cubic extractor merges adjacent quads.
func GetMergeQuads() bool {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.mergeQuads
}

// SetMergeQuads toggles adjacent-quad merging in the cubic extractor.
func SetMergeQuads(enabled bool) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()
	globalExtractionSettings.mergeQuads = enabled
}

// GetReuseVertices returns whether the cubic extractor deduplicates
// vertices through its per-slot slab.
func GetReuseVertices() bool {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.reuseVertices
}

// SetReuseVertices toggles per-slot vertex deduplication.
func SetReuseVertices(enabled bool) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()
	globalExtractionSettings.reuseVertices = enabled
}

// GetAmbientOcclusion returns whether AO is computed (and merged on) by
// the cubic and binary-greedy extractors.
func GetAmbientOcclusion() bool {
	globalExtractionSettings.mu.RLock()
	defer globalExtractionSettings.mu.RUnlock()
	return globalExtractionSettings.ambientOcclusion
}

// SetAmbientOcclusion toggles ambient occlusion.
func SetAmbientOcclusion(enabled bool) {
	globalExtractionSettings.mu.Lock()
	defer globalExtractionSettings.mu.Unlock()
	globalExtractionSettings.ambientOcclusion = enabled
}
