package world

// TerrainGenerator produces terrain for chunks on demand. Implementations:
// Generator (simple octave heightmap), ChunkProvider189 (authentic 1.8.9
// noise), BioGenerator (biome-aware), DensityGenerator (3D density field),
// and FlatGenerator below.
type TerrainGenerator interface {
	// HeightAt returns the world surface height (block Y) at world X,Z.
	HeightAt(worldX, worldZ int) int
	// PopulateChunk fills a chunk's blocks in place.
	PopulateChunk(c *Chunk)
}

// FlatGenerator produces a flat world: bedrock at y=0, dirt up to one
// below the surface, grass at the surface, air above. It is the
// deterministic, dependency-free generator used by tests and by the
// extraction demo to build predictable volumes.
type FlatGenerator struct {
	height int
}

// NewFlatGenerator returns a FlatGenerator whose grass surface sits at
// world Y = height.
func NewFlatGenerator(height int) TerrainGenerator {
	return &FlatGenerator{height: height}
}

// HeightAt always returns the configured flat height.
func (g *FlatGenerator) HeightAt(_, _ int) int {
	return g.height
}

// PopulateChunk fills every column up to g.height with bedrock/dirt/grass.
func (g *FlatGenerator) PopulateChunk(c *Chunk) {
	chunkBaseY := c.Y * ChunkSizeY
	topLocal := g.height - chunkBaseY
	if topLocal < 0 || topLocal >= ChunkSizeY {
		return
	}
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			for ly := 0; ly < topLocal; ly++ {
				if chunkBaseY+ly == 0 {
					c.SetBlock(lx, ly, lz, BlockTypeBedrock)
				} else {
					c.SetBlock(lx, ly, lz, BlockTypeDirt)
				}
			}
			if chunkBaseY+topLocal == 0 {
				c.SetBlock(lx, topLocal, lz, BlockTypeBedrock)
			} else {
				c.SetBlock(lx, topLocal, lz, BlockTypeGrass)
			}
		}
	}
	c.dirty = true
}
