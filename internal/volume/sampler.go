package volume

import "voxelcore/internal/voxel"

// Sampler is a cursor over a Volume. It tracks the current position and
// offers bounds-safe neighbor peeks without advancing the cursor.
//
// The design note on the original sampler names 26 hand-named peek
// methods (peekVoxel1nx1py1pz, etc). That is a readability DSL only; here
// it collapses to the single branch-free Peek(dx,dy,dz), plus named
// wrappers for the six face-adjacent neighbors the extractors reach for
// most often. Sampler is a small value type so nested loops can snapshot
// it at row/slice boundaries (copy it by assignment) to avoid accumulated
// arithmetic error when stepping through a padded column.
type Sampler struct {
	vol        Volume
	x, y, z    int
}

// NewSampler returns a Sampler positioned at (x,y,z) over vol.
func NewSampler(vol Volume, x, y, z int) Sampler {
	return Sampler{vol: vol, x: x, y: y, z: z}
}

// SetPosition repositions the cursor without changing the backing Volume.
func (s *Sampler) SetPosition(x, y, z int) {
	s.x, s.y, s.z = x, y, z
}

// Position returns the cursor's current coordinates.
func (s Sampler) Position() (int, int, int) {
	return s.x, s.y, s.z
}

// Voxel returns the voxel at the cursor's current position.
func (s Sampler) Voxel() voxel.Voxel {
	return s.vol.Voxel(s.x, s.y, s.z)
}

// MovePositiveX advances the cursor one cell in +X.
func (s *Sampler) MovePositiveX() { s.x++ }

// MoveNegativeX retreats the cursor one cell in -X.
func (s *Sampler) MoveNegativeX() { s.x-- }

// MovePositiveY advances the cursor one cell in +Y.
func (s *Sampler) MovePositiveY() { s.y++ }

// MoveNegativeY retreats the cursor one cell in -Y.
func (s *Sampler) MoveNegativeY() { s.y-- }

// MovePositiveZ advances the cursor one cell in +Z.
func (s *Sampler) MovePositiveZ() { s.z++ }

// MoveNegativeZ retreats the cursor one cell in -Z.
func (s *Sampler) MoveNegativeZ() { s.z-- }

// Peek reads the voxel at an offset from the cursor without moving it.
// Out-of-range offsets resolve to Air via the underlying Volume's own
// bounds handling.
func (s Sampler) Peek(dx, dy, dz int) voxel.Voxel {
	return s.vol.Voxel(s.x+dx, s.y+dy, s.z+dz)
}

// The six face-adjacent peeks, named the way the original 26-method DSL
// would have: peekVoxel1px0py0pz etc, shortened here to the face name.

func (s Sampler) PeekPositiveX() voxel.Voxel { return s.Peek(1, 0, 0) }
func (s Sampler) PeekNegativeX() voxel.Voxel { return s.Peek(-1, 0, 0) }
func (s Sampler) PeekPositiveY() voxel.Voxel { return s.Peek(0, 1, 0) }
func (s Sampler) PeekNegativeY() voxel.Voxel { return s.Peek(0, -1, 0) }
func (s Sampler) PeekPositiveZ() voxel.Voxel { return s.Peek(0, 0, 1) }
func (s Sampler) PeekNegativeZ() voxel.Voxel { return s.Peek(0, 0, -1) }
