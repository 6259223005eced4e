package define

import (
	"fmt"
	"strings"
)

// Instruction is one primitive world-editing directive. Text is one of the
// three console forms (fill / setblock / forceload) unless the caller
// injected a raw passthrough line. Order of instructions is significant
// end-to-end and must never be rearranged.
type Instruction struct {
	Text        string
	Description string
	DelayMS     int
	// Optional instructions may fail downstream without aborting the batch.
	Optional bool
}

func Fill(x1, y1, z1, x2, y2, z2 int, block string) Instruction {
	return Instruction{Text: fmt.Sprintf("fill %v %v %v %v %v %v %v", x1, y1, z1, x2, y2, z2, block)}
}

func FillMode(x1, y1, z1, x2, y2, z2 int, block string, mode string) Instruction {
	if mode == "" {
		return Fill(x1, y1, z1, x2, y2, z2, block)
	}
	return Instruction{Text: fmt.Sprintf("fill %v %v %v %v %v %v %v %v", x1, y1, z1, x2, y2, z2, block, mode)}
}

func SetBlock(x, y, z int, block string) Instruction {
	return Instruction{Text: fmt.Sprintf("setblock %v %v %v %v", x, y, z, block)}
}

func ForceLoad(x1, z1, x2, z2 int) Instruction {
	return Instruction{Text: fmt.Sprintf("forceload add %v %v %v %v", x1, z1, x2, z2)}
}

// VoxelDefinition describes an arbitrary custom object as a character grid
// plus palette. Layers[0] is the lowest layer; within a layer the row index
// is the depth offset and the character index the horizontal offset.
type VoxelDefinition struct {
	Palette map[string]string `json:"palette" yaml:"palette"`
	Layers  [][]string        `json:"layers" yaml:"layers"`
}

// SkipChar reports whether c never places a block, regardless of palette.
func SkipChar(c rune) bool {
	return c == ' ' || c == '.' || c == '_'
}

// ShapeCommand is a parsed name(args...) textual call.
type ShapeCommand struct {
	Name string
	Args ArgList
}

// ArgList holds positional parameters of a shape call. Accessors degrade
// silently: indexing past the end, or reading a mismatched type, yields the
// zero value. Arity is deliberately not validated.
type ArgList []interface{}

func (a ArgList) Int(i int) int {
	if i < 0 || i >= len(a) {
		return 0
	}
	switch v := a[i].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func (a ArgList) Float(i int) float64 {
	if i < 0 || i >= len(a) {
		return 0
	}
	switch v := a[i].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (a ArgList) Str(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	switch v := a[i].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	case bool:
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// StrOr returns the string at i, or fallback when absent or empty.
func (a ArgList) StrOr(i int, fallback string) string {
	s := a.Str(i)
	if s == "" {
		return fallback
	}
	return s
}

func (a ArgList) Bool(i int) bool {
	if i < 0 || i >= len(a) {
		return false
	}
	switch v := a[i].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	case float64:
		return v != 0
	}
	return false
}
