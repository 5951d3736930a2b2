// Command extract is a small CLI that drives the surface extraction core
// end to end: it generates a region of world terrain, runs the configured
// mesh kernel over it, and reports the resulting mesh's stats. It has no
// GPU upload path (see spec's Non-goals) and exists only to exercise the
// pipeline the way the teacher's cmd/triangle did for its renderer.
package main

import (
	"flag"
	"log"
	"time"

	"voxelcore/internal/config"
	"voxelcore/internal/extract"
	"voxelcore/internal/mesh"
	"voxelcore/internal/profiling"
	"voxelcore/internal/registry"
	"voxelcore/internal/volume"
	"voxelcore/internal/world"
)

func main() {
	var (
		mode     = flag.String("mode", "binary-greedy", "extraction kernel: cubic, marching-cubes, binary-greedy, dual-contouring")
		size     = flag.Int("size", 32, "width/depth of the generated flat region, in blocks")
		height   = flag.Int("height", 4, "grass surface height of the generated flat world")
		mergeAO  = flag.Bool("ao", true, "enable ambient occlusion (cubic/binary-greedy)")
		mergeQ   = flag.Bool("merge", true, "enable adjacent quad merging (cubic; binary-greedy always merges)")
		reuseVtx = flag.Bool("reuse", true, "enable vertex slot reuse (cubic)")
	)
	flag.Parse()

	kind := parseMode(*mode)
	config.SetAmbientOcclusion(*mergeAO)
	config.SetMergeQuads(*mergeQ)
	config.SetReuseVertices(*reuseVtx)

	registry.InitRegistry()
	pal := registry.BuildPalette()

	w := world.NewWithGenerator(world.NewFlatGenerator(*height))
	chunkRadius := (*size)/world.ChunkSizeX + 1
	w.GenerateRegionXZ(-chunkRadius, -chunkRadius, chunkRadius, chunkRadius)

	vol := volume.WorldVolume{W: w}
	region := volume.NewRegion(-*size/2, 0, -*size/2, -*size/2+*size-1, *height+1, -*size/2+*size-1)

	out := mesh.NewChunkMesh()
	options := extract.Options{
		MergeQuads:       *mergeQ,
		ReuseVertices:    *reuseVtx,
		AmbientOcclusion: *mergeAO,
	}

	start := time.Now()
	defer profiling.Track("cmd.extract.Run")()
	extract.Extract(kind, vol, region, pal, out, options)
	elapsed := time.Since(start)

	log.Printf("mode=%s region=%dx%dx%d elapsed=%s", *mode, *size, *height+2, *size, elapsed)
	log.Printf("opaque: %d vertices, %d triangles", out.Opaque.VertexCount(), out.Opaque.TriangleCount())
	log.Printf("transparent: %d vertices, %d triangles", out.Transparent.VertexCount(), out.Transparent.TriangleCount())
}

func parseMode(s string) extract.SurfaceExtractionType {
	switch s {
	case "cubic":
		return extract.Cubic
	case "marching-cubes":
		return extract.MarchingCubes
	case "binary-greedy":
		return extract.BinaryGreedy
	case "dual-contouring":
		return extract.DualContouring
	default:
		log.Printf("unknown mode %q, defaulting to binary-greedy", s)
		return extract.BinaryGreedy
	}
}
