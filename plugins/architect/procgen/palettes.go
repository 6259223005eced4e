package procgen

import "strings"

// MaterialPalette is a themed bundle of block-id lists. All palettes are
// read-only after process start.
type MaterialPalette struct {
	Name      string
	Primary   []string
	Secondary []string
	Detail    []string
	Light     []string
	Organic   []string
	Special   []string
}

var materialPalettes = map[string]MaterialPalette{
	"volcanic": {
		Name:      "volcanic",
		Primary:   []string{"blackstone", "basalt", "smooth_basalt"},
		Secondary: []string{"netherrack", "magma_block", "polished_blackstone"},
		Detail:    []string{"obsidian", "crying_obsidian", "gilded_blackstone"},
		Light:     []string{"magma_block", "lava", "shroomlight"},
		Organic:   []string{"crimson_roots", "fire"},
		Special:   []string{"ancient_debris", "gold_block"},
	},
	"frozen": {
		Name:      "frozen",
		Primary:   []string{"snow_block", "packed_ice", "blue_ice"},
		Secondary: []string{"ice", "white_concrete", "light_blue_concrete"},
		Detail:    []string{"prismarine", "diorite", "calcite"},
		Light:     []string{"sea_lantern", "glowstone"},
		Organic:   []string{"spruce_leaves", "fern"},
		Special:   []string{"diamond_block", "blue_stained_glass"},
	},
	"desert": {
		Name:      "desert",
		Primary:   []string{"sandstone", "smooth_sandstone", "sand"},
		Secondary: []string{"cut_sandstone", "terracotta", "orange_terracotta"},
		Detail:    []string{"chiseled_sandstone", "red_sandstone", "yellow_terracotta"},
		Light:     []string{"glowstone", "lantern"},
		Organic:   []string{"cactus", "dead_bush"},
		Special:   []string{"gold_block", "gilded_blackstone"},
	},
	"jungle": {
		Name:      "jungle",
		Primary:   []string{"mossy_cobblestone", "mossy_stone_bricks", "moss_block"},
		Secondary: []string{"jungle_planks", "jungle_log", "stone_bricks"},
		Detail:    []string{"vine", "azalea_leaves", "chiseled_stone_bricks"},
		Light:     []string{"glowstone", "shroomlight"},
		Organic:   []string{"jungle_leaves", "grass_block", "flowering_azalea"},
		Special:   []string{"emerald_block", "gold_block"},
	},
	"ocean": {
		Name:      "ocean",
		Primary:   []string{"prismarine", "prismarine_bricks", "dark_prismarine"},
		Secondary: []string{"cyan_concrete", "light_blue_concrete", "tube_coral_block"},
		Detail:    []string{"sea_lantern", "brain_coral_block", "blue_stained_glass"},
		Light:     []string{"sea_lantern", "glowstone"},
		Organic:   []string{"kelp", "seagrass"},
		Special:   []string{"sponge", "heart_of_the_sea"},
	},
	"infernal": {
		Name:      "infernal",
		Primary:   []string{"nether_bricks", "netherrack", "red_nether_bricks"},
		Secondary: []string{"blackstone", "soul_sand", "crimson_planks"},
		Detail:    []string{"chiseled_nether_bricks", "obsidian", "bone_block"},
		Light:     []string{"glowstone", "soul_lantern", "shroomlight"},
		Organic:   []string{"crimson_stem", "weeping_vines"},
		Special:   []string{"gold_block", "crying_obsidian"},
	},
	"medieval": {
		Name:      "medieval",
		Primary:   []string{"stone_bricks", "cobblestone", "andesite"},
		Secondary: []string{"oak_planks", "spruce_planks", "oak_log"},
		Detail:    []string{"mossy_stone_bricks", "chiseled_stone_bricks", "cracked_stone_bricks"},
		Light:     []string{"lantern", "torch", "glowstone"},
		Organic:   []string{"oak_leaves", "grass_block"},
		Special:   []string{"gold_block", "banner"},
	},
	"futuristic": {
		Name:      "futuristic",
		Primary:   []string{"white_concrete", "light_gray_concrete", "quartz_block"},
		Secondary: []string{"iron_block", "cyan_concrete", "gray_concrete"},
		Detail:    []string{"light_blue_stained_glass", "sea_lantern", "smooth_quartz"},
		Light:     []string{"sea_lantern", "end_rod", "beacon"},
		Organic:   []string{"moss_block"},
		Special:   []string{"diamond_block", "amethyst_block"},
	},
	"candy": {
		Name:      "candy",
		Primary:   []string{"pink_concrete", "white_concrete", "magenta_concrete"},
		Secondary: []string{"pink_wool", "purple_concrete", "red_concrete"},
		Detail:    []string{"pink_stained_glass", "honey_block", "cake"},
		Light:     []string{"glowstone", "froglight"},
		Organic:   []string{"cherry_leaves", "pink_petals"},
		Special:   []string{"gold_block", "amethyst_block"},
	},
	"ethereal": {
		Name:      "ethereal",
		Primary:   []string{"white_concrete", "quartz_block", "end_stone_bricks"},
		Secondary: []string{"purpur_block", "amethyst_block", "light_gray_concrete"},
		Detail:    []string{"white_stained_glass", "purple_stained_glass", "chiseled_quartz_block"},
		Light:     []string{"end_rod", "sea_lantern", "glowstone"},
		Organic:   []string{"chorus_plant", "azalea_leaves"},
		Special:   []string{"diamond_block", "enchanting_table"},
	},
}

// paletteKeywords is matched first-to-last against the lowercased theme
// text; the first hit wins, so order is part of the contract.
var paletteKeywords = []struct {
	keyword string
	palette string
}{
	{"volcan", "volcanic"},
	{"lava", "volcanic"},
	{"magma", "volcanic"},
	{"frozen", "frozen"},
	{"ice", "frozen"},
	{"snow", "frozen"},
	{"arctic", "frozen"},
	{"desert", "desert"},
	{"sand", "desert"},
	{"egypt", "desert"},
	{"jungle", "jungle"},
	{"forest", "jungle"},
	{"nature", "jungle"},
	{"overgrown", "jungle"},
	{"ocean", "ocean"},
	{"sea", "ocean"},
	{"water", "ocean"},
	{"atlantis", "ocean"},
	{"nether", "infernal"},
	{"hell", "infernal"},
	{"infernal", "infernal"},
	{"demon", "infernal"},
	{"medieval", "medieval"},
	{"castle", "medieval"},
	{"kingdom", "medieval"},
	{"fantasy", "medieval"},
	{"future", "futuristic"},
	{"cyber", "futuristic"},
	{"neon", "futuristic"},
	{"sci-fi", "futuristic"},
	{"space", "futuristic"},
	{"candy", "candy"},
	{"sweet", "candy"},
	{"pastel", "candy"},
}

// PaletteForTheme maps free theme text to a material palette by
// case-insensitive substring match, defaulting to ethereal.
func PaletteForTheme(theme string) MaterialPalette {
	t := strings.ToLower(theme)
	for _, kw := range paletteKeywords {
		if strings.Contains(t, kw.keyword) {
			return materialPalettes[kw.palette]
		}
	}
	return materialPalettes["ethereal"]
}
