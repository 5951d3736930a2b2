package voxel

// PaletteSize is the fixed number of entries a Palette holds.
const PaletteSize = 256

// RGBA is an 8-bit-per-channel color.
type RGBA struct {
	R, G, B, A uint8
}

// Mix linearly interpolates between a and b by t in [0,1].
func Mix(a, b RGBA, t float64) RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// MaterialKind is the per-index material record kind consulted by
// renderers downstream of the mesh; the extractors themselves only read
// colors, but they carry the kind through so callers can reconstruct
// material behavior (e.g. whether a color index is emissive).
type MaterialKind uint8

const (
	MaterialDiffuse MaterialKind = iota
	MaterialMetal
	MaterialGlass
	MaterialEmit
)

// MaterialInfo is the per-index material metadata paired with each color.
type MaterialInfo struct {
	Kind     MaterialKind
	Metal    float32 // 0..1 metalness, meaningful when Kind == MaterialMetal
	Glass    float32 // 0..1 transmission, meaningful when Kind == MaterialGlass
	Emit     float32 // emissive intensity, meaningful when Kind == MaterialEmit
	Specular float32
}

// Palette is an ordered mapping of 256 indices to colors plus a material
// record per index. Index 0 is the fallback used for malformed voxels.
type Palette struct {
	colors    [PaletteSize]RGBA
	materials [PaletteSize]MaterialInfo
}

// NewPalette returns a Palette with every entry defaulted to opaque black
// diffuse material.
func NewPalette() *Palette {
	p := &Palette{}
	for i := range p.colors {
		p.colors[i] = RGBA{A: 255}
	}
	return p
}

// Size returns the fixed palette capacity (always 256).
func (p *Palette) Size() int {
	return PaletteSize
}

// Set installs the color and material for index i. Indices outside
// [0,255] are ignored (malformed callers are neither clamped nor panicked).
func (p *Palette) Set(i int, c RGBA, m MaterialInfo) {
	if i < 0 || i >= PaletteSize {
		return
	}
	p.colors[i] = c
	p.materials[i] = m
}

// Color returns the RGBA color for index i. An out-of-range index is
// treated as index 0, matching the "unknown palette index" recovery rule.
func (p *Palette) Color(i uint8) RGBA {
	return p.colors[i]
}

// Material returns the material record for index i.
func (p *Palette) Material(i uint8) MaterialInfo {
	return p.materials[i]
}

// GetClosestMatch returns the palette index whose color is nearest c in
// squared RGB distance. Alpha is ignored: transparency is a material
// property of the voxel, not of the palette color.
func (p *Palette) GetClosestMatch(c RGBA) uint8 {
	best := 0
	bestDist := int64(-1)
	for i, pc := range p.colors {
		dr := int64(pc.R) - int64(c.R)
		dg := int64(pc.G) - int64(c.G)
		db := int64(pc.B) - int64(c.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
			if dist == 0 {
				break
			}
		}
	}
	return uint8(best)
}
