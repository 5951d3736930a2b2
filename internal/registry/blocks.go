// Package registry is the block definition table: the mapping from a
// world.BlockType to the display color, material kind, and solidity the
// voxel extraction core needs to turn a chunk into a voxel.Palette.
package registry

import (
	"voxelcore/internal/voxel"
	"voxelcore/internal/world"
)

// BlockDefinition defines the properties of a block type.
type BlockDefinition struct {
	ID            world.BlockType
	Name          string
	Color         voxel.RGBA
	IsSolid       bool
	IsTransparent bool
	Material      voxel.MaterialInfo
	Hardness      float32 // seconds to break (approximate)
}

// Global registry, keyed by BlockType.
var (
	Blocks     = make(map[world.BlockType]*BlockDefinition)
	BlockNames = make(map[string]world.BlockType)
)

func RegisterBlock(def *BlockDefinition) {
	Blocks[def.ID] = def
	BlockNames[def.Name] = def.ID
}

func InitRegistry() {
	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeAir,
		Name:          "air",
		IsSolid:       false,
		IsTransparent: true,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeGrass,
		Name:     "grass",
		Color:    voxel.RGBA{R: 0x6A, G: 0xA6, B: 0x3A, A: 255},
		IsSolid:  true,
		Hardness: 0.6,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeDirt,
		Name:     "dirt",
		Color:    voxel.RGBA{R: 0x8B, G: 0x5A, B: 0x2B, A: 255},
		IsSolid:  true,
		Hardness: 0.5,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeStone,
		Name:     "stone",
		Color:    voxel.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255},
		IsSolid:  true,
		Hardness: 1.5,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeBedrock,
		Name:     "bedrock",
		Color:    voxel.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255},
		IsSolid:  true,
		Hardness: -1.0, // unbreakable
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypeStoneBrick,
		Name:     "stonebrick",
		Color:    voxel.RGBA{R: 0x7A, G: 0x7A, B: 0x7A, A: 255},
		IsSolid:  true,
		Hardness: 1.5,
	})

	RegisterBlock(&BlockDefinition{
		ID:            world.BlockTypeWater,
		Name:          "water",
		Color:         voxel.RGBA{R: 0x3F, G: 0x76, B: 0xE4, A: 200},
		IsSolid:       true,
		IsTransparent: true,
		Material:      voxel.MaterialInfo{Kind: voxel.MaterialGlass, Glass: 0.85},
		Hardness:      -1.0,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypePlanksOak,
		Name:     "planks_oak",
		Color:    voxel.RGBA{R: 0xA0, G: 0x7A, B: 0x42, A: 255},
		IsSolid:  true,
		Hardness: 2.0,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypePlanksBirch,
		Name:     "planks_birch",
		Color:    voxel.RGBA{R: 0xC8, G: 0xB8, B: 0x80, A: 255},
		IsSolid:  true,
		Hardness: 2.0,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypePlanksSpruce,
		Name:     "planks_spruce",
		Color:    voxel.RGBA{R: 0x6B, G: 0x4A, B: 0x2C, A: 255},
		IsSolid:  true,
		Hardness: 2.0,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypePlanksJungle,
		Name:     "planks_jungle",
		Color:    voxel.RGBA{R: 0xA5, G: 0x6B, B: 0x43, A: 255},
		IsSolid:  true,
		Hardness: 2.0,
	})

	RegisterBlock(&BlockDefinition{
		ID:       world.BlockTypePlanksAcacia,
		Name:     "planks_acacia",
		Color:    voxel.RGBA{R: 0xB4, G: 0x59, B: 0x33, A: 255},
		IsSolid:  true,
		Hardness: 2.0,
	})
}

// BuildPalette assembles a 256-entry voxel.Palette from the registered
// block definitions, indexed by BlockType so a Chunk's block IDs can be
// used directly as voxel.Voxel.ColorIndex values.
func BuildPalette() *voxel.Palette {
	p := voxel.NewPalette()
	for bt, def := range Blocks {
		if int(bt) >= voxel.PaletteSize {
			continue
		}
		p.Set(int(bt), def.Color, def.Material)
	}
	return p
}

// MaterialFor maps a block type to the voxel.Material class the
// extractors key their decisions on.
func MaterialFor(bt world.BlockType) voxel.Material {
	def, ok := Blocks[bt]
	if !ok || bt == world.BlockTypeAir {
		return voxel.Air
	}
	if def.IsTransparent {
		return voxel.Transparent
	}
	return voxel.Generic
}
