package raster

import (
	"github.com/sirupsen/logrus"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

// RenderVoxels walks a voxel definition layer by layer (layer 0 lowest),
// row by row (depth), character by character (horizontal) and emits one
// placement per block. scale > 1 turns every character into a cube of side
// scale anchored at origin + index*scale. Built-in library objects and
// AI-supplied definitions both come through here; there is no second path.
func RenderVoxels(def define.VoxelDefinition, ox, oy, oz int, scale int) []define.Instruction {
	if scale < 1 {
		scale = 1
	}
	out := make([]define.Instruction, 0, 64)
	for ly, layer := range def.Layers {
		for row, line := range layer {
			col := -1
			for _, c := range line {
				col++
				if define.SkipChar(c) {
					continue
				}
				block, ok := def.Palette[string(c)]
				if !ok {
					logrus.Warnf("Raster-RenderVoxels: char (%q) not in palette, skipped", string(c))
					continue
				}
				x := ox + col*scale
				y := oy + ly*scale
				z := oz + row*scale
				if scale == 1 {
					out = append(out, define.SetBlock(x, y, z, block))
				} else {
					out = append(out, define.Fill(x, y, z, x+scale-1, y+scale-1, z+scale-1, block))
				}
			}
		}
	}
	return out
}
