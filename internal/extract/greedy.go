package extract

import (
	"voxelcore/internal/mesh"
	"voxelcore/internal/volume"
	"voxelcore/internal/voxel"
)

// bitColumn is an arbitrary-length bitset stored as little-endian uint64
// words, generalizing the teacher's fixed uint64 column (spec §4.3 assumes
// a 64-voxel padded column; here the padded depth is whatever the caller's
// region needs, so columns spill into extra words when it exceeds 64).
type bitColumn struct {
	words []uint64
	n     int
}

func newBitColumn(n int) bitColumn {
	return bitColumn{words: make([]uint64, (n+63)/64), n: n}
}

func (b bitColumn) set(i int) {
	b.words[i/64] |= 1 << uint(i%64)
}

func (b bitColumn) get(i int) bool {
	if i < 0 || i >= b.n {
		return false
	}
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// shiftRight1 returns a column where result bit i = b bit (i+1): the value
// "what sits one step in the +direction from i".
func (b bitColumn) shiftRight1() bitColumn {
	out := newBitColumn(b.n)
	for i := 0; i < b.n-1; i++ {
		if b.get(i + 1) {
			out.set(i)
		}
	}
	return out
}

func (b bitColumn) andNot(o bitColumn) bitColumn {
	out := newBitColumn(b.n)
	for i, w := range b.words {
		out.words[i] = w &^ o.words[i]
	}
	return out
}

// stripBorder clears bit 0 and bit n-1: the one-voxel padding never emits
// a face regardless of what the face-culling math computes for it.
func (b bitColumn) stripBorder() bitColumn {
	out := newBitColumn(b.n)
	copy(out.words, b.words)
	if b.n > 0 {
		out.words[0] &^= 1
		last := b.n - 1
		out.words[last/64] &^= 1 << uint(last%64)
	}
	return out
}

// extractBinaryGreedy implements the Binary Greedy Mesher (spec §4.3): load
// a one-voxel-padded copy of region, build per-axis column bitmasks, cull
// faces via self & ~neighbor, then greedily expand exposed faces into the
// largest same-material same-AO rectangles.
func extractBinaryGreedy(vol volume.Volume, region volume.Region, out *mesh.ChunkMesh, options Options) {
	w, h, d := region.Width()
	pw, ph, pd := w+2, h+2, d+2
	lo := region.Mins

	at := func(lx, ly, lz int) voxel.Voxel {
		return vol.Voxel(lo[0]+lx-1, lo[1]+ly-1, lo[2]+lz-1)
	}

	// Axis 0 = X (columns run along x, indexed by (y,z)); axis 1 = Y;
	// axis 2 = Z. For each axis build the "solid" bitmask per column.
	xCols := make([]bitColumn, ph*pd)
	for z := 0; z < pd; z++ {
		for y := 0; y < ph; y++ {
			col := newBitColumn(pw)
			for x := 0; x < pw; x++ {
				if voxel.IsBlocked(at(x, y, z)) {
					col.set(x)
				}
			}
			xCols[z*ph+y] = col
		}
	}
	yCols := make([]bitColumn, pw*pd)
	for z := 0; z < pd; z++ {
		for x := 0; x < pw; x++ {
			col := newBitColumn(ph)
			for y := 0; y < ph; y++ {
				if voxel.IsBlocked(at(x, y, z)) {
					col.set(y)
				}
			}
			yCols[z*pw+x] = col
		}
	}
	zCols := make([]bitColumn, pw*ph)
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			col := newBitColumn(pd)
			for z := 0; z < pd; z++ {
				if voxel.IsBlocked(at(x, y, z)) {
					col.set(z)
				}
			}
			zCols[y*pw+x] = col
		}
	}

	adapted := worldFromPadded{at: at, lo: lo}
	groups := make(map[groupKey][]*cubicQuad)
	collect := func(axis, sign, x, y, z int) {
		back := at(x, y, z)
		var dx, dy, dz int
		switch axis {
		case 0:
			dx = sign
		case 1:
			dy = sign
		case 2:
			dz = sign
		}
		f := faceDir{axis: axis, sign: sign, dx: dx, dy: dy, dz: dz}
		wx, wy, wz := lo[0]+x-1, lo[1]+y-1, lo[2]+z-1
		q := buildUnitQuad(adapted, wx, wy, wz, f, back, false, options.AmbientOcclusion)
		k := groupKey{axis: axis, sign: sign, depth: q.depth, material: q.material, colorIndex: q.colorIndex, flags: q.flags}
		groups[k] = append(groups[k], q)
	}

	// X faces: for each (y,z) column, positive exposure = col & ~shiftRight1(col); negative exposure is found the same way on the reversed column.
	for z := 1; z < pd-1; z++ {
		for y := 1; y < ph-1; y++ {
			col := xCols[z*ph+y]
			posExposed := col.andNot(col.shiftRight1()).stripBorder()
			for x := 1; x < pw-1; x++ {
				if posExposed.get(x) {
					collect(0, 1, x, y, z)
				}
			}
			mirror := reverseColumn(col)
			negExposedRev := mirror.andNot(mirror.shiftRight1()).stripBorder()
			for xr := 1; xr < pw-1; xr++ {
				if negExposedRev.get(xr) {
					collect(0, -1, pw-1-xr, y, z)
				}
			}
		}
	}
	for z := 1; z < pd-1; z++ {
		for x := 1; x < pw-1; x++ {
			col := yCols[z*pw+x]
			posExposed := col.andNot(col.shiftRight1()).stripBorder()
			for y := 1; y < ph-1; y++ {
				if posExposed.get(y) {
					collect(1, 1, x, y, z)
				}
			}
			mirror := reverseColumn(col)
			negExposedRev := mirror.andNot(mirror.shiftRight1()).stripBorder()
			for yr := 1; yr < ph-1; yr++ {
				if negExposedRev.get(yr) {
					collect(1, -1, x, ph-1-yr, z)
				}
			}
		}
	}
	for y := 1; y < ph-1; y++ {
		for x := 1; x < pw-1; x++ {
			col := zCols[y*pw+x]
			posExposed := col.andNot(col.shiftRight1()).stripBorder()
			for z := 1; z < pd-1; z++ {
				if posExposed.get(z) {
					collect(2, 1, x, y, z)
				}
			}
			mirror := reverseColumn(col)
			negExposedRev := mirror.andNot(mirror.shiftRight1()).stripBorder()
			for zr := 1; zr < pd-1; zr++ {
				if negExposedRev.get(zr) {
					collect(2, -1, x, y, pd-1-zr)
				}
			}
		}
	}

	dedup := newVertexSlab()
	for _, quads := range groups {
		merged := mergeCoplanarQuads(quads, options.AmbientOcclusion)
		for _, q := range merged {
			emitQuad(out.Opaque, q, dedup)
		}
	}
}

func reverseColumn(c bitColumn) bitColumn {
	out := newBitColumn(c.n)
	for i := 0; i < c.n; i++ {
		if c.get(i) {
			out.set(c.n - 1 - i)
		}
	}
	return out
}

// worldFromPadded adapts the padded-local (x,y,z)->Voxel accessor built
// over region into the volume.Volume interface buildUnitQuad/cornerAO
// expect, which query in world space.
type worldFromPadded struct {
	at func(int, int, int) voxel.Voxel
	lo [3]int
}

func (w worldFromPadded) Voxel(x, y, z int) voxel.Voxel {
	return w.at(x-w.lo[0]+1, y-w.lo[1]+1, z-w.lo[2]+1)
}
