package raster

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

//go:embed library.yaml
var libraryData []byte

// voxelLibrary maps object names to hand-authored definitions. Read-only
// after init.
var voxelLibrary map[string]define.VoxelDefinition

func init() {
	voxelLibrary = make(map[string]define.VoxelDefinition)
	if err := yaml.Unmarshal(libraryData, &voxelLibrary); err != nil {
		panic(fmt.Sprintf("Raster-Library: broken embedded library (%v)", err))
	}
	libraryData = nil
}

// normalizeName folds the spellings callers use for the same object:
// "mushroom house", "Mushroom_House" and "mushroomhouse" all resolve alike.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	return name
}

// LookupVoxelObject finds a built-in object by exact or
// underscore-normalized name.
func LookupVoxelObject(name string) (define.VoxelDefinition, bool) {
	if def, ok := voxelLibrary[name]; ok {
		return def, true
	}
	key := normalizeName(name)
	if def, ok := voxelLibrary[key]; ok {
		return def, true
	}
	// Last try without separators at all.
	flat := strings.ReplaceAll(key, "_", "")
	for k, def := range voxelLibrary {
		if strings.ReplaceAll(k, "_", "") == flat {
			return def, true
		}
	}
	return define.VoxelDefinition{}, false
}

// VoxelObjectNames lists the built-in object names, sorted.
func VoxelObjectNames() []string {
	names := make([]string, 0, len(voxelLibrary))
	for k := range voxelLibrary {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
