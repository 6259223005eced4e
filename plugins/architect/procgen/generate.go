package procgen

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

type Category string

const (
	CategoryTower         Category = "tower"
	CategoryFloating      Category = "floating"
	CategoryArchitectural Category = "architectural"
	CategoryMonument      Category = "monument"
	CategoryTerrain       Category = "terrain"
	CategoryDecoration    Category = "decoration"
	CategoryMegastructure Category = "megastructure"
	CategoryUnderground   Category = "underground"
	CategoryWater         Category = "water"
	CategoryOrganic       Category = "organic"
)

// Position is world-relative to spawn when RelativeToSpawn is set.
type Position struct {
	X, Y, Z         int
	RelativeToSpawn bool
}

// Structure is one generated build. Immutable once returned; the caller
// that requested generation owns it.
type Structure struct {
	ID              string
	Name            string
	Description     string
	Position        Position
	Category        Category
	Instructions    []define.Instruction
	EstimatedBlocks int
	Tags            []string
}

// categoryWeights is the ordered base table for weighted sampling. Order
// matters: sampling walks it front to back, so it must stay a slice.
type weightedCategory struct {
	cat    Category
	weight float64
}

func baseWeights() []weightedCategory {
	return []weightedCategory{
		{CategoryTower, 1.0},
		{CategoryArchitectural, 0.9},
		{CategoryDecoration, 1.0},
		{CategoryFloating, 0.8},
		{CategoryTerrain, 0.8},
		{CategoryMonument, 0.7},
		{CategoryOrganic, 0.6},
		{CategoryUnderground, 0.4},
		{CategoryWater, 0.4},
		{CategoryMegastructure, 0.3},
	}
}

// themeBias multiplies weights for categories the theme text asks for.
var themeBias = []struct {
	keyword string
	cat     Category
	factor  float64
}{
	{"tower", CategoryTower, 2.5},
	{"spire", CategoryTower, 2.0},
	{"float", CategoryFloating, 2.5},
	{"sky", CategoryFloating, 2.0},
	{"island", CategoryFloating, 2.0},
	{"city", CategoryArchitectural, 2.0},
	{"village", CategoryArchitectural, 2.0},
	{"ruin", CategoryMonument, 2.0},
	{"ancient", CategoryMonument, 2.0},
	{"temple", CategoryMonument, 2.5},
	{"mountain", CategoryTerrain, 2.5},
	{"canyon", CategoryTerrain, 2.0},
	{"garden", CategoryDecoration, 2.5},
	{"park", CategoryDecoration, 2.0},
	{"cave", CategoryUnderground, 2.5},
	{"underground", CategoryUnderground, 3.0},
	{"ocean", CategoryWater, 2.0},
	{"water", CategoryWater, 2.0},
	{"tree", CategoryOrganic, 2.0},
	{"organic", CategoryOrganic, 2.5},
	{"mega", CategoryMegastructure, 3.0},
	{"colossal", CategoryMegastructure, 2.5},
}

func clampCount(complexity float64) int {
	n := int(math.Floor(complexity * 1.5))
	if n < 3 {
		return 3
	}
	if n > 10 {
		return 10
	}
	return n
}

// sampleCategories draws count categories. Each draw halves the chosen
// category's weight, promoting variety without excluding repeats. A
// monument-class centerpiece is injected with 70% probability first.
func sampleCategories(rng *Source, theme string, count int) []Category {
	weights := baseWeights()
	lower := strings.ToLower(theme)
	for i := range weights {
		for _, bias := range themeBias {
			if weights[i].cat == bias.cat && strings.Contains(lower, bias.keyword) {
				weights[i].weight *= bias.factor
			}
		}
	}
	picked := make([]Category, 0, count)
	if rng.Chance(0.7) {
		picked = append(picked, CategoryMonument)
		halve(weights, CategoryMonument)
	}
	for len(picked) < count {
		total := 0.0
		for _, w := range weights {
			total += w.weight
		}
		roll := rng.Next() * total
		chosen := weights[len(weights)-1].cat
		for _, w := range weights {
			roll -= w.weight
			if roll < 0 {
				chosen = w.cat
				break
			}
		}
		picked = append(picked, chosen)
		halve(weights, chosen)
	}
	return picked[:count]
}

func halve(weights []weightedCategory, cat Category) {
	for i := range weights {
		if weights[i].cat == cat {
			weights[i].weight /= 2
		}
	}
}

// layoutPositions spreads structures on an expanding ring around spawn.
// The first sits near the origin, offset +30 along one horizontal axis.
func layoutPositions(rng *Source, count int) []Position {
	out := make([]Position, 0, count)
	for i := 0; i < count; i++ {
		if i == 0 {
			if rng.Chance(0.5) {
				out = append(out, Position{X: 30, RelativeToSpawn: true})
			} else {
				out = append(out, Position{Z: 30, RelativeToSpawn: true})
			}
			continue
		}
		dist := 100.0 + 50.0*float64(i) + rng.Range(-20, 20)
		angle := 2.0*math.Pi*float64(i)/float64(count) + rng.Range(-0.3, 0.3)
		// Rotate3DY sweeps +X toward -Z; negate to wind toward +Z
		p := mgl64.Rotate3DY(-angle).Mul3x1(mgl64.Vec3{dist, 0, 0})
		out = append(out, Position{
			X:               int(p.X()),
			Y:               int(rng.Range(-8, 20)),
			Z:               int(p.Z()),
			RelativeToSpawn: true,
		})
	}
	return out
}

// Generate composes count structures for the theme, fully determined by
// seed. Instruction sequences replay byte-for-byte for equal inputs; only
// the uuids differ between runs.
func Generate(seed, theme string, scale, complexity float64) []Structure {
	rng := NewSource(seed)
	pal := PaletteForTheme(theme)
	if scale <= 0 {
		scale = 1.0
	}
	count := clampCount(complexity)
	categories := sampleCategories(rng, theme, count)
	positions := layoutPositions(rng, count)

	out := make([]Structure, 0, count)
	for i, cat := range categories {
		s := buildStructure(rng, cat, pal, positions[i], scale)
		s.ID = uuid.New().String()
		s.Category = cat
		s.Position = positions[i]
		out = append(out, s)
	}
	return out
}
