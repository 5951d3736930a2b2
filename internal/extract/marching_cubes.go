package extract

import (
	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// mcIsolevel is the fixed density threshold (spec §4.5): densities are
// either 0 (Air) or 255 (blocked), so the midpoint never lands exactly on
// a sample.
const mcIsolevel = 127.5

func mcDensity(v voxel.Voxel) float64 {
	if voxel.IsAir(v) {
		return 0
	}
	return 255
}

// mcCorner lists the 8 cube corner offsets in the standard MC winding.
var mcCorner = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// mcEdgeCorners maps each of the 12 edges to its two endpoint corners.
var mcEdgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// extractMarchingCubes implements the Marching Cubes Extractor (spec §4.5):
// a cellIndex built from all eight corner samples of each cell (no bits
// are carried over from neighboring cells), edge/tri table lookup, palette color
// blending, and central-difference gradient normals. It writes to the
// opaque mesh only (the kernel does not route any output to Transparent).
func extractMarchingCubes(vol volume.Volume, region volume.Region, pal *voxel.Palette, out *mesh.Mesh) {
	// Expand by one cell so the caller's region gets a full neighborhood
	// (spec: "the extractor internally expands by one to ensure a 1-cell
	// border is visited").
	minX, minY, minZ := region.Mins[0], region.Mins[1], region.Mins[2]
	maxX, maxY, maxZ := region.Maxs[0]+1, region.Maxs[1]+1, region.Maxs[2]+1

	density := func(x, y, z int) float64 { return mcDensity(vol.Voxel(x, y, z)) }
	color := func(x, y, z int) voxel.RGBA {
		v := vol.Voxel(x, y, z)
		if voxel.IsAir(v) {
			return voxel.RGBA{}
		}
		return pal.Color(v.ColorIndex)
	}
	gradient := func(x, y, z int) mgl32.Vec3 {
		dx := density(x-1, y, z) - density(x+1, y, z)
		dy := density(x, y-1, z) - density(x, y+1, z)
		dz := density(x, y, z-1) - density(x, y, z+1)
		return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
	}

	// edgeVert memoizes the mesh vertex index for each (cell, edge)
	// combination already visited, keyed by the cell corner that "owns"
	// the edge plus its axis, so cells sharing an edge reuse one vertex.
	type edgeKey struct {
		x, y, z, axis int // axis: 0=X edge,1=Y edge,2=Z edge, owned by the cell at (x,y,z)
	}
	edgeVert := make(map[edgeKey]uint32)

	// Only edges 0 (X, corner0-1), 3 (Y, corner0-3), 8 (Z, corner0-4) are
	// "owned" by a cell in the +axis sense; the other 9 edges belong to a
	// neighboring cell's owned edge and are looked up there.
	ownerOf := func(cellX, cellY, cellZ, edge int) (edgeKey, bool) {
		switch edge {
		case 0:
			return edgeKey{cellX, cellY, cellZ, 0}, true
		case 2:
			return edgeKey{cellX, cellY + 1, cellZ, 0}, true
		case 4:
			return edgeKey{cellX, cellY, cellZ + 1, 0}, true
		case 6:
			return edgeKey{cellX, cellY + 1, cellZ + 1, 0}, true
		case 3:
			return edgeKey{cellX, cellY, cellZ, 1}, true
		case 1:
			return edgeKey{cellX + 1, cellY, cellZ, 1}, true
		case 7:
			return edgeKey{cellX, cellY, cellZ + 1, 1}, true
		case 5:
			return edgeKey{cellX + 1, cellY, cellZ + 1, 1}, true
		case 8:
			return edgeKey{cellX, cellY, cellZ, 2}, true
		case 9:
			return edgeKey{cellX + 1, cellY, cellZ, 2}, true
		case 11:
			return edgeKey{cellX, cellY + 1, cellZ, 2}, true
		case 10:
			return edgeKey{cellX + 1, cellY + 1, cellZ, 2}, true
		}
		return edgeKey{}, false
	}

	for z := minZ; z < maxZ; z++ {
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				var cellIndex int
				var densities [8]float64
				for i, c := range mcCorner {
					d := density(x+c[0], y+c[1], z+c[2])
					densities[i] = d
					if d < mcIsolevel {
						cellIndex |= 1 << uint(i)
					}
				}
				edges := mcEdgeTable[cellIndex]
				if edges == 0 {
					continue
				}

				vertOf := func(edge int) uint32 {
					key, _ := ownerOf(x, y, z, edge)
					if idx, ok := edgeVert[key]; ok {
						return idx
					}
					c0, c1 := mcEdgeCorners[edge][0], mcEdgeCorners[edge][1]
					p0 := mcCorner[c0]
					p1 := mcCorner[c1]
					ax, ay, az := x+p0[0], y+p0[1], z+p0[2]
					bx, by, bz := x+p1[0], y+p1[1], z+p1[2]
					vA, vB := densities[c0], densities[c1]
					denom := vA - vB
					t := 0.0
					if denom != 0 {
						t = (mcIsolevel - vA) / denom
					}
					pos := mgl32.Vec3{
						float32(ax) + float32(bx-ax)*float32(t),
						float32(ay) + float32(by-ay)*float32(t),
						float32(az) + float32(bz-az)*float32(t),
					}
					gA := gradient(ax, ay, az)
					gB := gradient(bx, by, bz)
					n := gA.Mul(float32(1 - t)).Add(gB.Mul(float32(t)))
					if n.Len() > 1e-6 {
						n = n.Normalize()
					}
					cA := color(ax, ay, az)
					cB := color(bx, by, bz)
					mixed := voxel.Mix(cA, cB, t)
					colorIdx := pal.GetClosestMatch(mixed)

					idx := out.AddVertex(mesh.VoxelVertex{
						X: pos.X(), Y: pos.Y(), Z: pos.Z(),
						ColorIndex: colorIdx,
					})
					out.SetNormal(idx, n)
					edgeVert[key] = idx
					return idx
				}

				tris := mcTriTable[cellIndex]
				for i := 0; i+2 < len(tris); i += 3 {
					a := vertOf(tris[i])
					b := vertOf(tris[i+1])
					c := vertOf(tris[i+2])
					out.AddTriangle(a, b, c)
				}
			}
		}
	}
}
