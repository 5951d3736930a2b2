package extract

import (
	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

// faceDir is one of the six cube face directions a cell is tested against.
type faceDir struct {
	axis  int // 0=x, 1=y, 2=z
	sign  int // +1 or -1
	dx, dy, dz int
}

var cubicFaces = [6]faceDir{
	{axis: 0, sign: 1, dx: 1, dy: 0, dz: 0},
	{axis: 0, sign: -1, dx: -1, dy: 0, dz: 0},
	{axis: 1, sign: 1, dx: 0, dy: 1, dz: 0},
	{axis: 1, sign: -1, dx: 0, dy: -1, dz: 0},
	{axis: 2, sign: 1, dx: 0, dy: 0, dz: 1},
	{axis: 2, sign: -1, dx: 0, dy: 0, dz: -1},
}

// isQuadNeeded implements spec §4.4's two passes: a quad is emitted between
// a "back" voxel (the one supplying the face) and the "front" voxel (its
// neighbor in the face direction) when back is solid and front isn't, for
// either the opaque or the transparent material class.
func isQuadNeeded(back, front voxel.Voxel, transparentPass bool) bool {
	if transparentPass {
		return voxel.IsTransparent(back) && !voxel.IsTransparent(front)
	}
	return back.Material == voxel.Generic && front.Material <= voxel.Transparent && front.Material != voxel.Generic
}

// cubicQuad is one emitted face before triangulation: its plane, its unit
// footprint in the region, and the per-corner attributes used both for the
// dedup key and for the optional greedy-style merge pass.
type cubicQuad struct {
	axis, sign   int
	depth        int // coordinate along axis
	u0, v0       int // footprint in the two in-plane axes, inclusive
	u1, v1       int
	material     voxel.Material
	colorIndex   uint8
	flags        uint8
	normalIndex  uint8
	ao           [4]uint8 // corners in (u0v0, u1v0, u0v1, u1v1) order
	transparent  bool
}

// extractCubic implements the Cubic Surface Extractor (spec §4.4): per-cell
// six-direction quad testing, an optional greedy-style merge of same-plane
// adjacent quads, AO, and opaque/transparent routing.
func extractCubic(vol volume.Volume, region volume.Region, out *mesh.ChunkMesh, options Options) {
	groups := make(map[groupKey][]*cubicQuad)

	for z := region.Mins[2]; z <= region.Maxs[2]; z++ {
		for y := region.Mins[1]; y <= region.Maxs[1]; y++ {
			for x := region.Mins[0]; x <= region.Maxs[0]; x++ {
				back := vol.Voxel(x, y, z)
				if voxel.IsAir(back) {
					continue
				}
				for _, f := range cubicFaces {
					front := vol.Voxel(x+f.dx, y+f.dy, z+f.dz)
					transparentVoxel := voxel.IsTransparent(back)
					if !isQuadNeeded(back, front, transparentVoxel) {
						continue
					}
					q := buildUnitQuad(vol, x, y, z, f, back, transparentVoxel, options.AmbientOcclusion)
					k := groupKey{axis: f.axis, sign: f.sign, depth: q.depth, material: q.material, colorIndex: q.colorIndex, flags: q.flags, transparent: transparentVoxel}
					groups[k] = append(groups[k], q)
				}
			}
		}
	}

	dedup := newVertexSlab()
	for k, quads := range groups {
		if options.MergeQuads {
			quads = mergeCoplanarQuads(quads, options.AmbientOcclusion)
		}
		target := out.ForMaterial(k.transparent)
		for _, q := range quads {
			if !options.ReuseVertices {
				// A fresh slab per quad: no vertex is shared between quads.
				dedup = newVertexSlab()
			}
			emitQuad(target, q, dedup)
		}
	}
}

type groupKey struct {
	axis, sign, depth int
	material          voxel.Material
	colorIndex        uint8
	flags             uint8
	transparent       bool
}

// buildUnitQuad computes the single-cell quad for cell (x,y,z) facing f,
// including its four corner AO samples when requested.
func buildUnitQuad(vol volume.Volume, x, y, z int, f faceDir, back voxel.Voxel, transparent, ao bool) *cubicQuad {
	q := &cubicQuad{
		axis:        f.axis,
		sign:        f.sign,
		material:    back.Material,
		colorIndex:  back.ColorIndex,
		flags:       back.Flags,
		normalIndex: back.NormalIndex,
		transparent: transparent,
	}
	switch f.axis {
	case 0:
		q.depth = x + (f.sign+1)/2
		q.u0, q.u1 = y, y
		q.v0, q.v1 = z, z
	case 1:
		q.depth = y + (f.sign+1)/2
		q.u0, q.u1 = x, x
		q.v0, q.v1 = z, z
	case 2:
		q.depth = z + (f.sign+1)/2
		q.u0, q.u1 = x, x
		q.v0, q.v1 = y, y
	}
	if ao {
		q.ao = cornerAO(vol, x, y, z, f)
	} else {
		q.ao = [4]uint8{3, 3, 3, 3}
	}
	return q
}

// cornerAO samples the three neighbors above each of the face's four
// corners and applies vertexAO (spec §4.3/§4.4 share this formula).
func cornerAO(vol volume.Volume, x, y, z int, f faceDir) [4]uint8 {
	// uAxis/vAxis are unit vectors spanning the face plane; nAxis points
	// out of the face.
	var uAx, vAx [3]int
	switch f.axis {
	case 0:
		uAx, vAx = [3]int{0, 1, 0}, [3]int{0, 0, 1}
	case 1:
		uAx, vAx = [3]int{1, 0, 0}, [3]int{0, 0, 1}
	case 2:
		uAx, vAx = [3]int{1, 0, 0}, [3]int{0, 1, 0}
	}
	base := [3]int{x + f.dx, y + f.dy, z + f.dz}
	blocked := func(p [3]int) bool {
		return voxel.IsBlocked(vol.Voxel(p[0], p[1], p[2]))
	}
	add := func(p [3]int, s int, ax [3]int) [3]int {
		return [3]int{p[0] + s*ax[0], p[1] + s*ax[1], p[2] + s*ax[2]}
	}
	var corners [4]uint8
	signs := [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	for i, s := range signs {
		side1 := add(base, s[0], uAx)
		side2 := add(base, s[1], vAx)
		corner := add(side1, s[1], vAx)
		corners[i] = vertexAO(blocked(side1), blocked(side2), blocked(corner))
	}
	return corners
}

// mergeCoplanarQuads runs a classic greedy rectangle merge over the unit
// quads of one (axis, sign, depth, material) group: it builds a 2D
// occupancy grid from their footprints, then grows rectangles the way the
// binary greedy mesher does, generalized from bitmask rows to a boolean
// grid since a cubic-extractor group is typically far smaller than a full
// chunk column. Quads whose AO corners don't all agree are never grouped
// together when ambient occlusion is enabled, matching the "identical full
// vertex keys" merge condition in spec §4.4.
func mergeCoplanarQuads(quads []*cubicQuad, aoSensitive bool) []*cubicQuad {
	if len(quads) <= 1 {
		return quads
	}
	uMin, vMin := quads[0].u0, quads[0].v0
	uMax, vMax := quads[0].u0, quads[0].v0
	for _, q := range quads {
		if q.u0 < uMin {
			uMin = q.u0
		}
		if q.u0 > uMax {
			uMax = q.u0
		}
		if q.v0 < vMin {
			vMin = q.v0
		}
		if q.v0 > vMax {
			vMax = q.v0
		}
	}
	w := uMax - uMin + 1
	h := vMax - vMin + 1
	grid := make([]*cubicQuad, w*h)
	for _, q := range quads {
		grid[(q.v0-vMin)*w+(q.u0-uMin)] = q
	}
	used := make([]bool, w*h)
	var out []*cubicQuad
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			idx := v*w + u
			q := grid[idx]
			if q == nil || used[idx] {
				continue
			}
			if !aoSensitive {
				q.ao = [4]uint8{3, 3, 3, 3}
			}
			// Grow along u.
			eu := u
			for eu+1 < w {
				nIdx := v*w + eu + 1
				n := grid[nIdx]
				if n == nil || used[nIdx] || !sameGroupCell(q, n) || (aoSensitive && n.ao != q.ao) {
					break
				}
				eu++
			}
			// Grow along v while every cell in [u,eu] at row ev+1 matches.
			ev := v
		growV:
			for ev+1 < h {
				for uu := u; uu <= eu; uu++ {
					nIdx := (ev+1)*w + uu
					n := grid[nIdx]
					if n == nil || used[nIdx] || !sameGroupCell(q, n) || (aoSensitive && n.ao != q.ao) {
						break growV
					}
				}
				ev++
			}
			for vv := v; vv <= ev; vv++ {
				for uu := u; uu <= eu; uu++ {
					used[vv*w+uu] = true
				}
			}
			merged := *q
			merged.u0, merged.u1 = uMin+u, uMin+eu
			merged.v0, merged.v1 = vMin+v, vMin+ev
			merged.ao = [4]uint8{
				grid[v*w+u].ao[0],
				grid[v*w+eu].ao[1],
				grid[ev*w+u].ao[2],
				grid[ev*w+eu].ao[3],
			}
			out = append(out, &merged)
		}
	}
	return out
}

func sameGroupCell(a, b *cubicQuad) bool {
	return a.material == b.material && a.colorIndex == b.colorIndex && a.flags == b.flags && a.normalIndex == b.normalIndex
}

// vertexSlab deduplicates vertices across quads that share a grid corner,
// generalizing the teacher's windowed 8-slot-per-position array into a
// whole-extraction hash map: any later quad whose corner has the same
// position, material, color, flags and AO reuses the earlier vertex
// instead of the per-direction-window lookup spec §4.4 describes.
type vertexSlab struct {
	slots map[vertexKey]uint32
}

type vertexKey struct {
	x, y, z    int
	material   voxel.Material
	colorIndex uint8
	flags      uint8
	ao         uint8
}

func newVertexSlab() *vertexSlab {
	return &vertexSlab{slots: make(map[vertexKey]uint32)}
}

func (s *vertexSlab) get(m *mesh.Mesh, x, y, z int, mat voxel.Material, color, flags, normalIndex, ao uint8) uint32 {
	k := vertexKey{x: x, y: y, z: z, material: mat, colorIndex: color, flags: flags, ao: ao}
	if idx, ok := s.slots[k]; ok {
		return idx
	}
	idx := m.AddVertex(mesh.VoxelVertex{
		X: float32(x), Y: float32(y), Z: float32(z),
		ColorIndex: color, NormalIndex: normalIndex, AO: ao, Flags: flags,
	})
	s.slots[k] = idx
	return idx
}

// emitQuad triangulates one merged quad into four (possibly deduplicated)
// vertices and two triangles with CCW winding viewed from outside, picking
// the diagonal that minimizes AO anisotropy.
func emitQuad(m *mesh.Mesh, q *cubicQuad, dedup *vertexSlab) {
	// Corner positions in (u,v) -> world xyz depending on axis, at
	// footprint bounds [u0,u1+1) x [v0,v1+1) (unit cells span +1).
	corner := func(u, v int) (int, int, int) {
		switch q.axis {
		case 0:
			return q.depth, u, v
		case 1:
			return u, q.depth, v
		default:
			return u, v, q.depth
		}
	}
	x00, y00, z00 := corner(q.u0, q.v0)
	x10, y10, z10 := corner(q.u1+1, q.v0)
	x01, y01, z01 := corner(q.u0, q.v1+1)
	x11, y11, z11 := corner(q.u1+1, q.v1+1)

	v00 := dedup.get(m, x00, y00, z00, q.material, q.colorIndex, q.flags, q.normalIndex, q.ao[0])
	v10 := dedup.get(m, x10, y10, z10, q.material, q.colorIndex, q.flags, q.normalIndex, q.ao[1])
	v01 := dedup.get(m, x01, y01, z01, q.material, q.colorIndex, q.flags, q.normalIndex, q.ao[2])
	v11 := dedup.get(m, x11, y11, z11, q.material, q.colorIndex, q.flags, q.normalIndex, q.ao[3])

	outward := (q.axis == 0 && q.sign > 0) || (q.axis == 1 && q.sign > 0) || (q.axis == 2 && q.sign > 0)
	ccw := outward
	if q.axis == 1 {
		// +Y faces upward; the u/v basis (x,z) needs the opposite
		// handedness from +X/+Z to stay CCW from outside.
		ccw = !ccw
	}

	flip := isQuadFlipped(q.ao[0], q.ao[1], q.ao[2], q.ao[3])
	if ccw {
		if flip {
			m.AddTriangle(v00, v10, v01)
			m.AddTriangle(v10, v11, v01)
		} else {
			m.AddTriangle(v00, v10, v11)
			m.AddTriangle(v00, v11, v01)
		}
	} else {
		if flip {
			m.AddTriangle(v00, v01, v10)
			m.AddTriangle(v10, v01, v11)
		} else {
			m.AddTriangle(v00, v11, v10)
			m.AddTriangle(v00, v01, v11)
		}
	}
}
