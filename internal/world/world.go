package world

import "github.com/go-gl/mathgl/mgl32"

// World represents the game world, composed of chunks generated on demand
// by a TerrainGenerator and addressed in world-space block coordinates.
type World struct {
	store *ChunkStore
	gen   TerrainGenerator
}

// ChunkCoord is a unique identifier for a chunk based on its position.
type ChunkCoord struct {
	X, Y, Z int
}

// New creates a new world backed by the authentic Minecraft 1.8.9 noise
// generator.
func New() *World {
	return NewWithGenerator(NewChunkProvider189(1337))
}

// NewWithGenerator creates a new world backed by an arbitrary generator.
func NewWithGenerator(gen TerrainGenerator) *World {
	return &World{
		store: NewChunkStore(),
		gen:   gen,
	}
}

// NewEmpty creates a world whose generator is a height-0 FlatGenerator, so
// generating a chunk lays down only a bedrock floor at y=0. As in every
// World, GetChunk(create=true) yields empty, unpopulated chunks, which is
// the convenient starting point for tests and for building synthetic
// volumes by hand.
func NewEmpty() *World {
	return &World{store: NewChunkStore(), gen: NewFlatGenerator(0)}
}

// GetChunk returns the chunk at the specified chunk coordinates.
func (w *World) GetChunk(chunkX, chunkY, chunkZ int, create bool) *Chunk {
	return w.store.GetChunk(chunkX, chunkY, chunkZ, create)
}

// GetChunkFromBlockCoords returns the chunk containing the block at the
// specified world coordinates.
func (w *World) GetChunkFromBlockCoords(x, y, z int, create bool) *Chunk {
	return w.store.GetChunkFromBlockCoords(x, y, z, create)
}

// GenerateChunk populates an existing chunk using the world's terrain
// generator.
func (w *World) GenerateChunk(c *Chunk) {
	w.populateChunk(c)
}

func (w *World) populateChunk(c *Chunk) {
	if w.gen == nil || c == nil {
		return
	}
	w.gen.PopulateChunk(c)
}

// Get returns the block type at the specified world coordinates.
func (w *World) Get(x, y, z int) BlockType {
	return w.store.Get(x, y, z)
}

// IsAir checks if the block at the specified world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.store.IsAir(x, y, z)
}

// Set sets the block type at the specified world coordinates.
func (w *World) Set(x, y, z int, val BlockType) {
	w.store.Set(x, y, z, val)
}

// GetActiveBlocks returns a list of positions of all non-air blocks in the
// world.
func (w *World) GetActiveBlocks() []mgl32.Vec3 {
	return w.store.GetActiveBlocks()
}

// ChunkWithCoord pairs a chunk with its coordinates.
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// GetAllChunks returns a slice of all chunks in the world with their
// coordinates.
func (w *World) GetAllChunks() []ChunkWithCoord {
	return w.store.GetAllChunks()
}

// SurfaceHeightAt exposes the terrain surface height used for generation
// at world (x,z).
func (w *World) SurfaceHeightAt(x, z int) int {
	if w.gen == nil {
		return 0
	}
	return w.gen.HeightAt(x, z)
}

// AppendChunksInRadiusXZ appends all loaded chunks within a radius.
func (w *World) AppendChunksInRadiusXZ(cx, cz, radius int, dst []ChunkWithCoord) []ChunkWithCoord {
	return w.store.AppendChunksInRadiusXZ(cx, cz, radius, dst)
}

// GetModCount returns the current modification count of the chunk map.
func (w *World) GetModCount() uint64 {
	return w.store.GetModCount()
}

// GenerateRegionXZ fills every chunk in the given chunk-coordinate X/Z
// rectangle (bounds inclusive) at chunk-Y 0, using the world's terrain
// generator. It is the synchronous substitute for the teacher's
// background chunk streamer, which this core drops: extraction operates
// on whole regions handed to it by the caller (see spec Non-goals), not
// on a live-streamed world.
func (w *World) GenerateRegionXZ(minCX, minCZ, maxCX, maxCZ int) {
	for cx := minCX; cx <= maxCX; cx++ {
		for cz := minCZ; cz <= maxCZ; cz++ {
			c := w.store.GetChunk(cx, 0, cz, true)
			if c != nil {
				w.populateChunk(c)
			}
		}
	}
}

// Helper functions for coordinate conversion.

// floorDiv performs integer division that rounds down for negative numbers.
func floorDiv(a, b int) int {
	if a < 0 {
		return (a - b + 1) / b
	}
	return a / b
}

// mod returns the remainder of a/b, always positive.
func mod(a, b int) int {
	result := a % b
	if result < 0 {
		result += b
	}
	return result
}
