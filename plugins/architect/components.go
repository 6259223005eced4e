package architect

import (
	"github.com/sirupsen/logrus"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

// componentLibrary holds parameterized architectural fragments. Unlike the
// voxel library these are generated, not hand-drawn, so they live as
// functions over the same primitives the rasterizer uses.
var componentLibrary = map[string]func(a define.ArgList) []define.Instruction{
	"window":     compWindow,
	"door":       compDoor,
	"lamp_post":  compLampPost,
	"fountain":   compFountain,
	"garden_bed": compGardenBed,
}

// IsComponent reports whether name resolves in the component library.
func IsComponent(name string) bool {
	_, ok := componentLibrary[name]
	return ok
}

// RenderComponent renders a named component. Unknown names degrade to an
// empty list with a diagnostic, same contract as Rasterize.
func RenderComponent(name string, a define.ArgList) []define.Instruction {
	fn, ok := componentLibrary[name]
	if !ok {
		logrus.Warnf("Architect-RenderComponent: unknown component (%v)", name)
		return nil
	}
	return fn(a)
}

// compWindow: window(x, y, z, width, height, frameBlock)
func compWindow(a define.ArgList) []define.Instruction {
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	w, h := a.Int(3), a.Int(4)
	frame := a.StrOr(5, "oak_planks")
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	return []define.Instruction{
		define.FillMode(x-1, y-1, z, x+w, y+h, z, frame, "hollow"),
		define.Fill(x, y, z, x+w-1, y+h-1, z, "glass"),
	}
}

// compDoor: door(x, y, z, frameBlock)
func compDoor(a define.ArgList) []define.Instruction {
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	frame := a.StrOr(3, "stone_bricks")
	return []define.Instruction{
		define.FillMode(x-1, y, z, x+1, y+3, z, frame, "hollow"),
		define.Fill(x, y, z, x, y+2, z, "air"),
	}
}

// compLampPost: lamp_post(x, y, z, postBlock, lightBlock)
func compLampPost(a define.ArgList) []define.Instruction {
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	post := a.StrOr(3, "oak_log")
	light := a.StrOr(4, "glowstone")
	return []define.Instruction{
		define.Fill(x, y, z, x, y+3, z, post),
		define.SetBlock(x, y+4, z, light),
	}
}

// compFountain: fountain(x, y, z, radius, block)
func compFountain(a define.ArgList) []define.Instruction {
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	r := a.Int(3)
	block := a.StrOr(4, "stone_bricks")
	if r < 2 {
		r = 2
	}
	out := []define.Instruction{
		define.Fill(x-r, y, z-r, x+r, y, z+r, block),
		define.Fill(x-r+1, y, z-r+1, x+r-1, y, z+r-1, "water"),
		define.Fill(x, y, z, x, y+2, z, block),
	}
	out = append(out, define.Instruction{
		Text:     define.SetBlock(x, y+3, z, "sea_lantern").Text,
		Optional: true,
	})
	return out
}

// compGardenBed: garden_bed(x, y, z, width, depth)
func compGardenBed(a define.ArgList) []define.Instruction {
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	w, d := a.Int(3), a.Int(4)
	if w < 2 {
		w = 2
	}
	if d < 2 {
		d = 2
	}
	return []define.Instruction{
		define.Fill(x, y, z, x+w-1, y, z+d-1, "grass_block"),
		define.FillMode(x-1, y, z-1, x+w, y, z+d, "oak_log", "outline"),
	}
}
