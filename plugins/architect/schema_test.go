package architect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomVoxelsAcceptsValidDefinitions(t *testing.T) {
	raw := []byte(`{
		"Crystal Tower": {
			"palette": {"#": "amethyst_block", "o": "glass"},
			"layers": [["#o", "o#"], ["##", ".."]]
		}
	}`)
	defs, err := ParseCustomVoxels(raw)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	def, ok := defs["crystal tower"]
	require.True(t, ok, "names are stored lowercased")
	assert.Equal(t, "amethyst_block", def.Palette["#"])
	assert.Len(t, def.Layers, 2)
}

func TestParseCustomVoxelsSkipsInvalidEntries(t *testing.T) {
	raw := []byte(`{
		"good": {
			"palette": {"#": "stone"},
			"layers": [["#"]]
		},
		"bad_palette_key": {
			"palette": {"##": "stone"},
			"layers": [["#"]]
		},
		"missing_layers": {
			"palette": {"#": "stone"}
		}
	}`)
	defs, err := ParseCustomVoxels(raw)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	_, ok := defs["good"]
	assert.True(t, ok)
}

func TestParseCustomVoxelsRejectsNonJSON(t *testing.T) {
	_, err := ParseCustomVoxels([]byte("not json at all"))
	assert.Error(t, err)

	_, err = ParseCustomVoxels([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
}
