package volume

import "voxelcore/internal/voxel"

// Volume is the read-only contract extractors consult: a dense mapping
// from a position to a voxel. Implementations must return Air for any
// position outside the volume's backing storage rather than failing.
type Volume interface {
	Voxel(x, y, z int) voxel.Voxel
}

// Dense is an in-memory Volume over exactly one Region, stored row-major
// (X fastest, then Y, then Z). It is the Volume implementation the
// extractor tests build directly; WorldVolume (see worldvolume.go), which
// the demo CLI uses, adapts a live world.World instead.
type Dense struct {
	region Region
	sx, sy int
	voxels []voxel.Voxel
}

// NewDense allocates a Dense volume covering region, with every cell
// defaulted to Air.
func NewDense(region Region) *Dense {
	w, h, d := region.Width()
	return &Dense{
		region: region,
		sx:     w,
		sy:     h,
		voxels: make([]voxel.Voxel, w*h*d),
	}
}

func (d *Dense) index(x, y, z int) (int, bool) {
	if !d.region.Contains(x, y, z) {
		return 0, false
	}
	lx := x - d.region.Mins[0]
	ly := y - d.region.Mins[1]
	lz := z - d.region.Mins[2]
	return lx + ly*d.sx + lz*d.sx*d.sy, true
}

// Voxel returns the voxel at (x,y,z), or Air when out of range.
func (d *Dense) Voxel(x, y, z int) voxel.Voxel {
	i, ok := d.index(x, y, z)
	if !ok {
		return voxel.Voxel{}
	}
	return d.voxels[i]
}

// Set writes the voxel at (x,y,z). Writes outside the region are no-ops.
func (d *Dense) Set(x, y, z int, v voxel.Voxel) {
	i, ok := d.index(x, y, z)
	if !ok {
		return
	}
	d.voxels[i] = v
}

// Region returns the region this Dense volume covers.
func (d *Dense) Region() Region {
	return d.region
}
