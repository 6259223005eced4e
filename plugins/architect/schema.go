package architect

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sirupsen/logrus"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

//go:embed voxel_schema.json
var voxelSchemaData string

var voxelSchema *jsonschema.Schema

func init() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("voxel_schema.json", strings.NewReader(voxelSchemaData)); err != nil {
		panic(fmt.Sprintf("Architect-Schema: add resource (%v)", err))
	}
	voxelSchema = c.MustCompile("voxel_schema.json")
}

// ParseCustomVoxels decodes an AI-supplied JSON payload of named voxel
// definitions. The payload is validated against the embedded schema first;
// entries that fail validation are skipped with a diagnostic so one bad
// definition never sinks the rest of the request. The error is non-nil
// only when the bytes are not JSON at all.
func ParseCustomVoxels(raw []byte) (map[string]define.VoxelDefinition, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("custom voxels: %w", err)
	}
	obj, ok := generic.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("custom voxels: payload is not an object")
	}
	out := make(map[string]define.VoxelDefinition, len(obj))
	for name, entry := range obj {
		if err := voxelSchema.Validate(map[string]interface{}{name: entry}); err != nil {
			logrus.Warnf("Architect-Schema: definition (%v) rejected: %v", name, err)
			continue
		}
		single, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		var def define.VoxelDefinition
		if err := json.Unmarshal(single, &def); err != nil {
			logrus.Warnf("Architect-Schema: definition (%v) did not decode: %v", name, err)
			continue
		}
		out[strings.ToLower(name)] = def
	}
	return out, nil
}
