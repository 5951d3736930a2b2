package volume

import (
	"voxelcore/internal/registry"
	"voxelcore/internal/voxel"
	"voxelcore/internal/world"
)

// WorldVolume adapts a live world.World into a Volume, translating each
// world.BlockType into the voxel.Voxel the extraction kernels expect via
// the block registry. Flags are always zero; callers that need selection
// or outline marks should wrap WorldVolume and override Voxel.
type WorldVolume struct {
	W *world.World
}

// Voxel returns the voxel at world-space (x,y,z), Air outside any loaded
// chunk.
func (wv WorldVolume) Voxel(x, y, z int) voxel.Voxel {
	bt := wv.W.Get(x, y, z)
	if bt == world.BlockTypeAir {
		return voxel.Voxel{}
	}
	return voxel.Voxel{
		Material:    registry.MaterialFor(bt),
		ColorIndex:  uint8(bt),
		NormalIndex: voxel.NoNormal,
	}
}
