package define

import (
	"github.com/lucasb-eyer/go-colorful"
)

// PaletteBlock binds a console block id to the reference color used for
// nearest-color quantization.
type PaletteBlock struct {
	Name  string
	Color colorful.Color
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// BlockPalette is read-only after process start. The list order is the
// tie-break for nearest-color search: the first entry at minimal distance
// wins.
var BlockPalette = []PaletteBlock{
	{Name: "white_concrete", Color: rgb(207, 213, 214)},
	{Name: "orange_concrete", Color: rgb(224, 97, 0)},
	{Name: "magenta_concrete", Color: rgb(169, 48, 159)},
	{Name: "light_blue_concrete", Color: rgb(35, 137, 198)},
	{Name: "yellow_concrete", Color: rgb(240, 175, 21)},
	{Name: "lime_concrete", Color: rgb(94, 168, 24)},
	{Name: "pink_concrete", Color: rgb(213, 101, 142)},
	{Name: "gray_concrete", Color: rgb(54, 57, 61)},
	{Name: "light_gray_concrete", Color: rgb(125, 125, 115)},
	{Name: "cyan_concrete", Color: rgb(21, 119, 136)},
	{Name: "purple_concrete", Color: rgb(100, 31, 156)},
	{Name: "blue_concrete", Color: rgb(44, 46, 143)},
	{Name: "brown_concrete", Color: rgb(96, 59, 31)},
	{Name: "green_concrete", Color: rgb(73, 91, 36)},
	{Name: "red_concrete", Color: rgb(142, 33, 33)},
	{Name: "black_concrete", Color: rgb(8, 10, 15)},
	{Name: "white_wool", Color: rgb(233, 236, 236)},
	{Name: "orange_wool", Color: rgb(240, 118, 19)},
	{Name: "magenta_wool", Color: rgb(189, 68, 179)},
	{Name: "light_blue_wool", Color: rgb(58, 175, 217)},
	{Name: "yellow_wool", Color: rgb(248, 197, 39)},
	{Name: "lime_wool", Color: rgb(112, 185, 25)},
	{Name: "pink_wool", Color: rgb(237, 141, 172)},
	{Name: "gray_wool", Color: rgb(62, 68, 71)},
	{Name: "light_gray_wool", Color: rgb(142, 142, 134)},
	{Name: "cyan_wool", Color: rgb(21, 137, 145)},
	{Name: "purple_wool", Color: rgb(121, 42, 172)},
	{Name: "blue_wool", Color: rgb(53, 57, 157)},
	{Name: "brown_wool", Color: rgb(114, 71, 40)},
	{Name: "green_wool", Color: rgb(84, 109, 27)},
	{Name: "red_wool", Color: rgb(160, 39, 34)},
	{Name: "black_wool", Color: rgb(20, 21, 25)},
	{Name: "white_terracotta", Color: rgb(209, 178, 161)},
	{Name: "orange_terracotta", Color: rgb(161, 83, 37)},
	{Name: "magenta_terracotta", Color: rgb(149, 88, 108)},
	{Name: "light_blue_terracotta", Color: rgb(113, 108, 137)},
	{Name: "yellow_terracotta", Color: rgb(186, 133, 35)},
	{Name: "lime_terracotta", Color: rgb(103, 117, 52)},
	{Name: "pink_terracotta", Color: rgb(161, 78, 78)},
	{Name: "gray_terracotta", Color: rgb(57, 42, 35)},
	{Name: "light_gray_terracotta", Color: rgb(135, 106, 97)},
	{Name: "cyan_terracotta", Color: rgb(86, 91, 91)},
	{Name: "purple_terracotta", Color: rgb(118, 70, 86)},
	{Name: "blue_terracotta", Color: rgb(74, 59, 91)},
	{Name: "brown_terracotta", Color: rgb(77, 51, 35)},
	{Name: "green_terracotta", Color: rgb(76, 83, 42)},
	{Name: "red_terracotta", Color: rgb(143, 61, 46)},
	{Name: "black_terracotta", Color: rgb(37, 22, 16)},
	{Name: "stone", Color: rgb(125, 125, 125)},
	{Name: "cobblestone", Color: rgb(110, 110, 110)},
	{Name: "stone_bricks", Color: rgb(122, 121, 122)},
	{Name: "mossy_cobblestone", Color: rgb(108, 118, 94)},
	{Name: "bricks", Color: rgb(150, 97, 83)},
	{Name: "grass_block", Color: rgb(127, 178, 56)},
	{Name: "dirt", Color: rgb(134, 96, 67)},
	{Name: "sand", Color: rgb(219, 207, 163)},
	{Name: "sandstone", Color: rgb(216, 203, 155)},
	{Name: "oak_planks", Color: rgb(162, 130, 78)},
	{Name: "spruce_planks", Color: rgb(114, 84, 48)},
	{Name: "birch_planks", Color: rgb(192, 175, 121)},
	{Name: "dark_oak_planks", Color: rgb(66, 43, 20)},
	{Name: "oak_log", Color: rgb(109, 85, 50)},
	{Name: "oak_leaves", Color: rgb(58, 95, 29)},
	{Name: "glass", Color: rgb(175, 213, 219)},
	{Name: "glowstone", Color: rgb(249, 212, 156)},
	{Name: "gold_block", Color: rgb(246, 208, 61)},
	{Name: "iron_block", Color: rgb(220, 220, 220)},
	{Name: "diamond_block", Color: rgb(98, 237, 228)},
	{Name: "emerald_block", Color: rgb(81, 217, 117)},
	{Name: "lapis_block", Color: rgb(30, 67, 140)},
	{Name: "obsidian", Color: rgb(15, 10, 24)},
	{Name: "netherrack", Color: rgb(97, 38, 38)},
	{Name: "snow_block", Color: rgb(248, 246, 251)},
	{Name: "ice", Color: rgb(145, 183, 253)},
	{Name: "quartz_block", Color: rgb(235, 229, 222)},
	{Name: "prismarine", Color: rgb(99, 156, 151)},
	{Name: "dark_prismarine", Color: rgb(51, 91, 75)},
	{Name: "sea_lantern", Color: rgb(172, 199, 190)},
	{Name: "magma_block", Color: rgb(142, 63, 31)},
	{Name: "amethyst_block", Color: rgb(133, 97, 191)},
	{Name: "copper_block", Color: rgb(192, 107, 79)},
	{Name: "moss_block", Color: rgb(89, 109, 45)},
}

// Closest returns the palette index nearest to the given color by squared
// euclidean RGB distance. Earlier entries win ties.
func Closest(r, g, b uint8) int {
	best := 0
	bestD := 1 << 30
	for i, p := range BlockPalette {
		pr := int(p.Color.R*255.0 + 0.5)
		pg := int(p.Color.G*255.0 + 0.5)
		pb := int(p.Color.B*255.0 + 0.5)
		dr, dg, db := int(r)-pr, int(g)-pg, int(b)-pb
		d := dr*dr + dg*dg + db*db
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

// ClosestBlock is Closest but returns the block id directly.
func ClosestBlock(r, g, b uint8) string {
	return BlockPalette[Closest(r, g, b)].Name
}
