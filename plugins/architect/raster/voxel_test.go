package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

func TestRenderVoxelsPlacesPerCharacter(t *testing.T) {
	def := define.VoxelDefinition{
		Palette: map[string]string{"#": "stone", "o": "glass"},
		Layers: [][]string{
			{"#.o", "_#?"},
		},
	}
	ins := RenderVoxels(def, 10, 64, -5, 1)
	require.Len(t, ins, 3)
	assert.Equal(t, "setblock 10 64 -5 stone", ins[0].Text)
	assert.Equal(t, "setblock 12 64 -5 glass", ins[1].Text)
	// '?' is not in the palette and is skipped, '_' never places
	assert.Equal(t, "setblock 11 64 -4 stone", ins[2].Text)
}

func TestRenderVoxelsStacksLayersUpward(t *testing.T) {
	def := define.VoxelDefinition{
		Palette: map[string]string{"#": "stone"},
		Layers:  [][]string{{"#"}, {"#"}},
	}
	ins := RenderVoxels(def, 0, 64, 0, 1)
	require.Len(t, ins, 2)
	assert.Equal(t, "setblock 0 64 0 stone", ins[0].Text)
	assert.Equal(t, "setblock 0 65 0 stone", ins[1].Text)
}

func TestRenderVoxelsScaleExpandsToCubes(t *testing.T) {
	def := define.VoxelDefinition{
		Palette: map[string]string{"#": "stone"},
		Layers:  [][]string{{"##"}},
	}
	ins := RenderVoxels(def, 0, 0, 0, 2)
	require.Len(t, ins, 2)
	assert.Equal(t, "fill 0 0 0 1 1 1 stone", ins[0].Text)
	assert.Equal(t, "fill 2 0 0 3 1 1 stone", ins[1].Text)
}

func TestRenderVoxelsScaleBelowOneIsOne(t *testing.T) {
	def := define.VoxelDefinition{
		Palette: map[string]string{"#": "stone"},
		Layers:  [][]string{{"#"}},
	}
	ins := RenderVoxels(def, 0, 0, 0, 0)
	require.Len(t, ins, 1)
	assert.Equal(t, "setblock 0 0 0 stone", ins[0].Text)
}

func TestLookupVoxelObjectNormalizesNames(t *testing.T) {
	_, ok := LookupVoxelObject("tower")
	assert.True(t, ok)
	_, ok = LookupVoxelObject("Mushroom House")
	assert.True(t, ok)
	_, ok = LookupVoxelObject("mushroomhouse")
	assert.True(t, ok)
	_, ok = LookupVoxelObject("battlecruiser")
	assert.False(t, ok)
}

func TestVoxelObjectNamesIsSorted(t *testing.T) {
	names := VoxelObjectNames()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "tower")
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestLibraryObjectsRender(t *testing.T) {
	for _, name := range VoxelObjectNames() {
		def, ok := LookupVoxelObject(name)
		require.True(t, ok)
		ins := RenderVoxels(def, 0, 64, 0, 1)
		assert.NotEmpty(t, ins, "object %v rendered to nothing", name)
	}
}
