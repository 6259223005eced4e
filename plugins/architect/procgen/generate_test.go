package procgen

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instructionTexts(structures []Structure) []string {
	out := make([]string, 0)
	for _, s := range structures {
		for _, in := range s.Instructions {
			out = append(out, in.Text)
		}
	}
	return out
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate("ancient ruins", "volcanic wasteland", 1.0, 5.0)
	b := Generate("ancient ruins", "volcanic wasteland", 1.0, 5.0)
	require.Equal(t, len(a), len(b))
	assert.Equal(t, instructionTexts(a), instructionTexts(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.Equal(t, a[i].Category, b[i].Category)
		assert.Equal(t, a[i].Position, b[i].Position)
		// ids are the one thing allowed to differ
		assert.NotEqual(t, a[i].ID, b[i].ID)
	}
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	a := Generate("seed one", "frozen peaks", 1.0, 5.0)
	b := Generate("seed two", "frozen peaks", 1.0, 5.0)
	assert.NotEqual(t, instructionTexts(a), instructionTexts(b))
}

func TestGenerateCountBounds(t *testing.T) {
	assert.Len(t, Generate("s", "t", 1.0, -100.0), 3)
	assert.Len(t, Generate("s", "t", 1.0, 0.0), 3)
	assert.Len(t, Generate("s", "t", 1.0, 4.0), 6)
	assert.Len(t, Generate("s", "t", 1.0, 1e9), 10)
}

func TestGenerateFirstStructureSitsNearSpawn(t *testing.T) {
	structures := Generate("near spawn", "desert", 1.0, 3.0)
	first := structures[0].Position
	assert.True(t, first.RelativeToSpawn)
	assert.True(t, (first.X == 30 && first.Z == 0) || (first.X == 0 && first.Z == 30))
	assert.Equal(t, 0, first.Y)
}

func TestGenerateRingDistancesExpand(t *testing.T) {
	structures := Generate("ring layout", "medieval town", 1.0, 6.0)
	for i, s := range structures[1:] {
		d := math.Hypot(float64(s.Position.X), float64(s.Position.Z))
		base := 100.0 + 50.0*float64(i+1)
		// +-20 distance jitter plus integer truncation
		assert.InDelta(t, base, d, 22.0, "structure %v", i+1)
		assert.GreaterOrEqual(t, s.Position.Y, -8)
		assert.LessOrEqual(t, s.Position.Y, 20)
	}
}

func TestGenerateEmitsOnlyConsoleVocabulary(t *testing.T) {
	for _, text := range instructionTexts(Generate("vocab", "ethereal dream", 1.0, 6.0)) {
		ok := strings.HasPrefix(text, "fill ") ||
			strings.HasPrefix(text, "setblock ") ||
			strings.HasPrefix(text, "forceload add ")
		assert.True(t, ok, "unexpected instruction %q", text)
	}
}

func TestPaletteForTheme(t *testing.T) {
	assert.Equal(t, "volcanic", PaletteForTheme("lava fortress").Name)
	assert.Equal(t, "frozen", PaletteForTheme("ICE caves").Name)
	assert.Equal(t, "ethereal", PaletteForTheme("completely unknown words").Name)
}

func TestSourceReplaysPerSeed(t *testing.T) {
	a, b := NewSource("same"), NewSource("same")
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next())
	}
}

func TestSourceBounds(t *testing.T) {
	s := NewSource("bounds")
	for i := 0; i < 1000; i++ {
		v := s.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		r := s.Range(-20, 20)
		require.GreaterOrEqual(t, r, -20.0)
		require.Less(t, r, 20.0)
		n := s.IntN(7)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 7)
	}
	assert.Equal(t, 0, s.IntN(0))
	assert.Equal(t, "", s.Pick(nil))
}

func TestHashEmptySeedIsNonZero(t *testing.T) {
	assert.NotZero(t, Hash(""))
	assert.NotEqual(t, Hash("ab"), Hash("ba"), "seed folding is order-sensitive")
}
