package extract

import (
	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// dcEdgeData is the intersection record for one +axis cell edge (spec
// §4.6): whether the isosurface crosses it, the parametric fraction, and
// the blended unit normal at the crossing.
type dcEdgeData struct {
	crossed bool
	t       float64
	normal  [3]float64
	point   [3]float64 // cell-local 0..1 position of the crossing
}

// extractDualContouring implements the Dual Contouring Extractor (spec
// §4.6): central-difference gradients computed on demand (no padded
// gradient grid is built), per-cell QEF vertex placement, and
// two-triangle emission per crossed edge across its four surrounding
// cells. Writes to the opaque mesh only.
func extractDualContouring(vol volume.Volume, region volume.Region, pal *voxel.Palette, out *mesh.Mesh) {
	_ = pal // color blending is MC-specific; DC emits geometry + normal only per spec §4.6
	w, h, d := region.Width()
	lo := region.Mins

	density := func(x, y, z int) float64 { return mcDensity(vol.Voxel(x, y, z)) }
	// Central-difference gradient at a corner, recomputed each time it is
	// needed; no gradient grid is stored.
	gradAt := func(x, y, z int) mgl32.Vec3 {
		dx := density(x-1, y, z) - density(x+1, y, z)
		dy := density(x, y-1, z) - density(x, y+1, z)
		dz := density(x, y, z-1) - density(x, y, z+1)
		return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
	}

	// edgeAt computes the EdgeData for the +axis edge owned by corner
	// (x,y,z): axis 0=+X, 1=+Y, 2=+Z.
	edgeAt := func(x, y, z, axis int) dcEdgeData {
		dx, dy, dz := 0, 0, 0
		switch axis {
		case 0:
			dx = 1
		case 1:
			dy = 1
		case 2:
			dz = 1
		}
		vA := density(x, y, z)
		vB := density(x+dx, y+dy, z+dz)
		crossed := (vA < mcIsolevel) != (vB < mcIsolevel)
		if !crossed {
			return dcEdgeData{}
		}
		denom := vA - vB
		t := 0.5
		if denom != 0 {
			t = (mcIsolevel - vA) / denom
		}
		gA := gradAt(x, y, z)
		gB := gradAt(x+dx, y+dy, z+dz)
		n := gA.Mul(float32(1 - t)).Add(gB.Mul(float32(t)))
		if n.Len() > 1e-6 {
			n = n.Normalize()
		}
		return dcEdgeData{
			crossed: true,
			t:       t,
			normal:  [3]float64{float64(n.X()), float64(n.Y()), float64(n.Z())},
			point:   [3]float64{float64(dx) * t, float64(dy) * t, float64(dz) * t},
		}
	}

	// One vertex slot per cell in the region (a cell spans [x,x+1] etc).
	type cellKey struct{ x, y, z int }
	vertexOf := make(map[cellKey]uint32)

	cellHasVertex := func(x, y, z int) (uint32, bool) {
		idx, ok := vertexOf[cellKey{x, y, z}]
		return idx, ok
	}

	for z := lo[2]; z < lo[2]+d; z++ {
		for y := lo[1]; y < lo[1]+h; y++ {
			for x := lo[0]; x < lo[0]+w; x++ {
				own := [3]dcEdgeData{
					edgeAt(x, y, z, 0),
					edgeAt(x, y, z, 1),
					edgeAt(x, y, z, 2),
				}
				// Nine more edges from the +axis neighbors that touch
				// this cell's cube (the cell's own 12 edges minus the 3
				// already computed, each belonging to a neighbor's
				// "owned" +axis edge by the same convention MC uses).
				// Each crossing point is shifted by its owning corner's
				// offset so it is local to this cell.
				shifted := func(e dcEdgeData, ox, oy, oz int) dcEdgeData {
					e.point[0] += float64(ox)
					e.point[1] += float64(oy)
					e.point[2] += float64(oz)
					return e
				}
				neighborEdges := []dcEdgeData{
					shifted(edgeAt(x+1, y, z, 1), 1, 0, 0), shifted(edgeAt(x+1, y, z, 2), 1, 0, 0),
					shifted(edgeAt(x, y+1, z, 0), 0, 1, 0), shifted(edgeAt(x, y+1, z, 2), 0, 1, 0),
					shifted(edgeAt(x, y, z+1, 0), 0, 0, 1), shifted(edgeAt(x, y, z+1, 1), 0, 0, 1),
					shifted(edgeAt(x+1, y+1, z, 2), 1, 1, 0), shifted(edgeAt(x+1, y, z+1, 1), 1, 0, 1), shifted(edgeAt(x, y+1, z+1, 0), 0, 1, 1),
				}

				var q qef
				var normalSum [3]float64
				any := false
				for _, e := range own {
					if e.crossed {
						q.add(e.point, e.normal)
						normalSum[0] += e.normal[0]
						normalSum[1] += e.normal[1]
						normalSum[2] += e.normal[2]
						any = true
					}
				}
				for _, e := range neighborEdges {
					if e.crossed {
						q.add(e.point, e.normal)
						normalSum[0] += e.normal[0]
						normalSum[1] += e.normal[1]
						normalSum[2] += e.normal[2]
						any = true
					}
				}
				if !any {
					continue
				}

				massPoint, xSol := q.solve()
				pos := [3]float64{massPoint[0] + xSol[0], massPoint[1] + xSol[1], massPoint[2] + xSol[2]}
				for i := range pos {
					if pos[i] < -0.01 {
						pos[i] = -0.01
					}
					if pos[i] > 1.01 {
						pos[i] = 1.01
					}
				}

				idx := out.AddVertex(mesh.VoxelVertex{
					X: float32(x) + float32(pos[0]),
					Y: float32(y) + float32(pos[1]),
					Z: float32(z) + float32(pos[2]),
				})
				n := mgl32.Vec3{float32(normalSum[0]), float32(normalSum[1]), float32(normalSum[2])}
				if n.Len() > 1e-6 {
					n = n.Normalize()
				}
				out.SetNormal(idx, n)
				vertexOf[cellKey{x, y, z}] = idx
			}
		}
	}

	// Triangle emission: for each crossed +axis edge, connect the four
	// cells that surround it with two triangles.
	emit := func(cells [4]cellKey, flip bool) {
		var idx [4]uint32
		for i, c := range cells {
			v, ok := cellHasVertex(c.x, c.y, c.z)
			if !ok {
				return
			}
			idx[i] = v
		}
		if flip {
			out.AddTriangle(idx[0], idx[2], idx[1])
			out.AddTriangle(idx[3], idx[2], idx[0])
		} else {
			out.AddTriangle(idx[0], idx[1], idx[2])
			out.AddTriangle(idx[3], idx[2], idx[0])
		}
	}

	for z := lo[2]; z < lo[2]+d; z++ {
		for y := lo[1]; y < lo[1]+h; y++ {
			for x := lo[0]; x < lo[0]+w; x++ {
				// +X edge at (x,y,z): surrounded by the 4 cells offset
				// in (-1/0, -1/0) over (Y,Z).
				if e := edgeAt(x, y, z, 0); e.crossed {
					emit([4]cellKey{{x, y - 1, z - 1}, {x, y, z - 1}, {x, y, z}, {x, y - 1, z}}, e.normal[0] < 0)
				}
				if e := edgeAt(x, y, z, 1); e.crossed {
					emit([4]cellKey{{x - 1, y, z - 1}, {x, y, z - 1}, {x, y, z}, {x - 1, y, z}}, e.normal[1] < 0)
				}
				if e := edgeAt(x, y, z, 2); e.crossed {
					emit([4]cellKey{{x - 1, y - 1, z}, {x, y - 1, z}, {x, y, z}, {x - 1, y, z}}, e.normal[2] < 0)
				}
			}
		}
	}
}
