package architect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

func TestResolveDropsCommentsButNotWorldEditLines(t *testing.T) {
	r := NewResolver()
	ins := r.Resolve([]string{
		"//",
		"// set the base first",
		"// fill 0 0 0 1 1 1 stone",
		"//pos1 1 2 3",
		"fill 0 64 0 5 64 5 stone",
	}, nil)
	// "//pos1" is not a comment; it falls through to parsing, fails, and is
	// dropped as unrecognized rather than filtered.
	require.Len(t, ins, 1)
	assert.Equal(t, "fill 0 64 0 5 64 5 stone", ins[0].Text)
}

func TestResolvePassesThroughPrimitivesVerbatim(t *testing.T) {
	r := NewResolver()
	lines := []string{
		"setblock 1 2 3 stone",
		"forceload add 0 0 16 16",
		"FILL 0 0 0 1 1 1 stone",
		"summon creeper 0 64 0",
	}
	ins := r.Resolve(lines, nil)
	require.Len(t, ins, 3)
	// prefix match is case-insensitive but the line itself is untouched
	assert.Equal(t, "FILL 0 0 0 1 1 1 stone", ins[2].Text)
}

func TestResolveBogusShapeNeverFails(t *testing.T) {
	r := NewResolver()
	assert.Empty(t, r.Resolve([]string{"blorbus(1, 2, 3)"}, nil))
	assert.Empty(t, r.Resolve([]string{"sphere 1 2 3"}, nil))
	assert.Empty(t, r.Resolve([]string{""}, nil))
}

func TestResolveShapeCall(t *testing.T) {
	r := NewResolver()
	ins := r.Resolve([]string{`sphere(0, 64, 0, 2, "sea_lantern")`}, nil)
	require.Len(t, ins, 5)
	assert.Contains(t, ins[2].Text, "sea_lantern")
}

func TestResolveCustomVoxelWinsOverLibrary(t *testing.T) {
	r := NewResolver()
	custom := map[string]define.VoxelDefinition{
		"tower": {
			Palette: map[string]string{"#": "diamond_block"},
			Layers:  [][]string{{"#"}},
		},
	}
	ins := r.Resolve([]string{"tower(5, 70, 5)"}, custom)
	require.Len(t, ins, 1)
	assert.Equal(t, "setblock 5 70 5 diamond_block", ins[0].Text)
}

func TestResolveCustomVoxelNormalizedName(t *testing.T) {
	r := NewResolver()
	custom := map[string]define.VoxelDefinition{
		"crystal spire": {
			Palette: map[string]string{"#": "amethyst_block"},
			Layers:  [][]string{{"#"}},
		},
	}
	ins := r.Resolve([]string{"crystal_spire(0, 64, 0)"}, custom)
	require.Len(t, ins, 1)
	assert.Equal(t, "setblock 0 64 0 amethyst_block", ins[0].Text)
}

func TestResolveComponentCall(t *testing.T) {
	r := NewResolver()
	direct := r.Resolve([]string{"lamp_post(0, 64, 0)"}, nil)
	require.Len(t, direct, 2)
	assert.Equal(t, "setblock 0 68 0 glowstone", direct[1].Text)

	prefixed := r.Resolve([]string{`component("lamp_post", 0, 64, 0)`}, nil)
	assert.Equal(t, direct, prefixed)
}

func TestParseShapeCommand(t *testing.T) {
	cmd, ok := ParseShapeCommand(`Sphere(0, 64, 0, 5, "stone")`)
	require.True(t, ok)
	assert.Equal(t, "sphere", cmd.Name)
	require.Len(t, cmd.Args, 5)
	assert.Equal(t, 64, cmd.Args.Int(1))
	assert.Equal(t, "stone", cmd.Args.Str(4))

	_, ok = ParseShapeCommand("just words")
	assert.False(t, ok)
	_, ok = ParseShapeCommand("(1, 2)")
	assert.False(t, ok)
	_, ok = ParseShapeCommand("sphere(1, 2")
	assert.False(t, ok)
}

func TestParseShapeCommandQuotedCommas(t *testing.T) {
	cmd, ok := ParseShapeCommand(`image("https://x/a,b.png", 1, true)`)
	require.True(t, ok)
	require.Len(t, cmd.Args, 3)
	assert.Equal(t, "https://x/a,b.png", cmd.Args.Str(0))
	assert.Equal(t, 1, cmd.Args.Int(1))
	assert.True(t, cmd.Args.Bool(2))
}

func TestArgListDegradesSilently(t *testing.T) {
	a := define.ArgList{1.0, "x"}
	assert.Equal(t, 0, a.Int(5))
	assert.Equal(t, "", a.Str(5))
	assert.Equal(t, 0, a.Int(1))
	assert.Equal(t, "fallback", a.StrOr(5, "fallback"))
	assert.False(t, a.Bool(5))
}
