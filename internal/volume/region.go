// Package volume provides the dense voxel grid (Volume), the region AABB
// it is addressed by, and the bounds-safe 26-neighbor Sampler cursor the
// extraction kernels step through it with.
package volume

// Region is a closed-interval AABB in integer voxel space: Mins <= Maxs
// on every axis.
type Region struct {
	Mins, Maxs [3]int
}

// NewRegion builds a Region from corner coordinates.
func NewRegion(minX, minY, minZ, maxX, maxY, maxZ int) Region {
	return Region{Mins: [3]int{minX, minY, minZ}, Maxs: [3]int{maxX, maxY, maxZ}}
}

// Valid reports whether Mins <= Maxs on every axis.
func (r Region) Valid() bool {
	return r.Mins[0] <= r.Maxs[0] && r.Mins[1] <= r.Maxs[1] && r.Mins[2] <= r.Maxs[2]
}

// Width returns (width, height, depth) = Maxs - Mins + 1 per axis.
func (r Region) Width() (int, int, int) {
	return r.Maxs[0] - r.Mins[0] + 1, r.Maxs[1] - r.Mins[1] + 1, r.Maxs[2] - r.Mins[2] + 1
}

// LowerCorner returns Mins, the offset a ChunkMesh is anchored at.
func (r Region) LowerCorner() [3]int {
	return r.Mins
}

// Contains reports whether (x,y,z) lies within the closed interval.
func (r Region) Contains(x, y, z int) bool {
	return x >= r.Mins[0] && x <= r.Maxs[0] &&
		y >= r.Mins[1] && y <= r.Maxs[1] &&
		z >= r.Mins[2] && z <= r.Maxs[2]
}

// Expand returns a Region grown by n voxels on every side.
func (r Region) Expand(n int) Region {
	return Region{
		Mins: [3]int{r.Mins[0] - n, r.Mins[1] - n, r.Mins[2] - n},
		Maxs: [3]int{r.Maxs[0] + n, r.Maxs[1] + n, r.Maxs[2] + n},
	}
}
