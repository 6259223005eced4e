package raster

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
)

// Rasterize turns one primitive shape call into ordered instructions.
// It is total: an unrecognized shape name logs a diagnostic and yields an
// empty list. Parameter arity is not validated; missing parameters read as
// zero values (see ArgList).
func Rasterize(name string, args define.ArgList) []define.Instruction {
	switch name {
	case "sphere", "ball":
		return rasterSphere(args, false, false)
	case "hollow_sphere", "hollowsphere":
		return rasterSphere(args, true, false)
	case "dome", "hemisphere":
		return rasterSphere(args, false, true)
	case "hollow_dome", "hollowdome":
		return rasterSphere(args, true, true)
	case "cylinder", "tube":
		return rasterCylinder(args, false)
	case "hollow_cylinder", "hollowcylinder":
		return rasterCylinder(args, true)
	case "pyramid":
		return rasterPyramid(args, false)
	case "hollow_pyramid", "hollowpyramid":
		return rasterPyramid(args, true)
	case "cone", "spire":
		return rasterCone(args)
	case "arch", "archway":
		return rasterArch(args)
	case "box", "building", "cube":
		return rasterBox(args)
	case "stairs", "staircase":
		return rasterStairs(args)
	case "ring", "donut":
		return rasterRing(args)
	case "floor", "platform":
		return rasterFloor(args)
	case "wall", "fill":
		return rasterWall(args)
	}
	logrus.Warnf("Raster-Rasterize: unknown shape (%v), emitting nothing", name)
	return nil
}

// sliceRadius is the disc radius of a sphere of radius r at vertical
// offset dy.
func sliceRadius(r, dy int) int {
	return int(math.Floor(math.Sqrt(float64(r*r - dy*dy))))
}

// rasterSphere handles sphere, dome and their hollow variants. Discs are
// squares of side 2*sliceRadius and the hollow band is a four-strip square
// ring; both are intentional approximations whose silhouette downstream
// content depends on.
func rasterSphere(args define.ArgList, hollow bool, domeOnly bool) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	r := args.Int(3)
	block := args.StrOr(4, "stone")
	if r < 0 {
		r = -r
	}
	out := make([]define.Instruction, 0, 2*r+1)
	lo := -r
	if domeOnly {
		lo = 0
	}
	for dy := lo; dy <= r; dy++ {
		rr := sliceRadius(r, dy)
		y := cy + dy
		if !hollow || rr <= 1 {
			// Solid disc; near the poles the hollow band would invert,
			// so it collapses to this as well.
			out = append(out, define.Fill(cx-rr, y, cz-rr, cx+rr, y, cz+rr, block))
			continue
		}
		out = append(out,
			define.Fill(cx-rr, y, cz-rr, cx+rr, y, cz-rr, block),
			define.Fill(cx-rr, y, cz+rr, cx+rr, y, cz+rr, block),
			define.Fill(cx-rr, y, cz-rr+1, cx-rr, y, cz+rr-1, block),
			define.Fill(cx+rr, y, cz-rr+1, cx+rr, y, cz+rr-1, block),
		)
	}
	return out
}

func rasterCylinder(args define.ArgList, hollow bool) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	r := args.Int(3)
	height := args.Int(4)
	block := args.StrOr(5, "stone")
	if r < 0 {
		r = -r
	}
	if height < 1 {
		height = 1
	}
	top := cy + height - 1
	if hollow && r >= 1 {
		// Four flat walls, not a true annulus.
		return []define.Instruction{
			define.Fill(cx-r, cy, cz-r, cx+r, top, cz-r, block),
			define.Fill(cx-r, cy, cz+r, cx+r, top, cz+r, block),
			define.Fill(cx-r, cy, cz-r+1, cx-r, top, cz+r-1, block),
			define.Fill(cx+r, cy, cz-r+1, cx+r, top, cz+r-1, block),
		}
	}
	out := make([]define.Instruction, 0, height)
	for dy := 0; dy < height; dy++ {
		y := cy + dy
		out = append(out, define.Fill(cx-r, y, cz-r, cx+r, y, cz+r, block))
	}
	return out
}

func rasterPyramid(args define.ArgList, hollow bool) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	base := args.Int(3)
	height := args.Int(4)
	block := args.StrOr(5, "stone")
	if height < 1 {
		height = 1
	}
	halfBase := base / 2
	out := make([]define.Instruction, 0, height)
	for dy := 0; dy < height; dy++ {
		half := int(math.Floor(float64(halfBase) * (1.0 - float64(dy)/float64(height))))
		y := cy + dy
		if half <= 0 {
			out = append(out, define.SetBlock(cx, y, cz, block))
			break
		}
		if !hollow {
			out = append(out, define.Fill(cx-half, y, cz-half, cx+half, y, cz+half, block))
			continue
		}
		out = append(out,
			define.Fill(cx-half, y, cz-half, cx+half, y, cz-half, block),
			define.Fill(cx-half, y, cz+half, cx+half, y, cz+half, block),
			define.Fill(cx-half, y, cz-half+1, cx-half, y, cz+half-1, block),
			define.Fill(cx+half, y, cz-half+1, cx+half, y, cz+half-1, block),
		)
	}
	return out
}

func rasterCone(args define.ArgList) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	r := args.Int(3)
	height := args.Int(4)
	block := args.StrOr(5, "stone")
	if height < 1 {
		height = 1
	}
	out := make([]define.Instruction, 0, height)
	for dy := 0; dy < height; dy++ {
		rr := int(math.Floor(float64(r) * (1.0 - float64(dy)/float64(height))))
		y := cy + dy
		if rr <= 0 {
			out = append(out, define.SetBlock(cx, y, cz, block))
			break
		}
		out = append(out, define.Fill(cx-rr, y, cz-rr, cx+rr, y, cz+rr, block))
	}
	return out
}

func rasterArch(args define.ArgList) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	width := args.Int(3)
	height := args.Int(4)
	block := args.StrOr(5, "stone")
	if height < 2 {
		height = 2
	}
	halfWidth := width / 2
	if halfWidth < 1 {
		halfWidth = 1
	}
	pillarTop := int(float64(height) * 0.6)
	if pillarTop < 1 {
		pillarTop = 1
	}
	out := []define.Instruction{
		define.Fill(cx-halfWidth, cy, cz, cx-halfWidth, cy+pillarTop-1, cz, block),
		define.Fill(cx+halfWidth, cy, cz, cx+halfWidth, cy+pillarTop-1, cz, block),
	}
	span := height - pillarTop
	for dy := 0; dy < span; dy++ {
		p := float64(dy) / float64(span)
		gapHalf := int(math.Floor(float64(halfWidth) * (1.0 - p*p) * 0.7))
		y := cy + pillarTop + dy
		if gapHalf < 1 {
			// The opening is narrower than 2 blocks; close the crown.
			out = append(out, define.Fill(cx-halfWidth, y, cz, cx+halfWidth, y, cz, block))
			continue
		}
		out = append(out,
			define.Fill(cx-halfWidth, y, cz, cx-gapHalf-1, y, cz, block),
			define.Fill(cx+gapHalf+1, y, cz, cx+halfWidth, y, cz, block),
		)
	}
	return out
}

// rasterBox does not carve interiors itself; hollow boxes lean on the
// console's own hollow fill semantics.
func rasterBox(args define.ArgList) []define.Instruction {
	x1, y1, z1 := args.Int(0), args.Int(1), args.Int(2)
	x2, y2, z2 := args.Int(3), args.Int(4), args.Int(5)
	block := args.StrOr(6, "stone")
	mode := ""
	if args.Bool(7) {
		mode = "hollow"
	}
	return []define.Instruction{define.FillMode(x1, y1, z1, x2, y2, z2, block, mode)}
}

func rasterStairs(args define.ArgList) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	width := args.Int(3)
	height := args.Int(4)
	block := args.StrOr(5, "stone")
	dir := args.StrOr(6, "north")
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	half := width / 2
	out := make([]define.Instruction, 0, height)
	for i := 0; i < height; i++ {
		x, z := cx, cz
		switch dir {
		case "south":
			z = cz + i
		case "east":
			x = cx + i
		case "west":
			x = cx - i
		default: // north
			z = cz - i
		}
		y := cy + i
		switch dir {
		case "east", "west":
			out = append(out, define.Fill(x, y, z-half, x, y, z+half, block))
		default:
			out = append(out, define.Fill(x-half, y, z, x+half, y, z, block))
		}
	}
	return out
}

// rasterRing fills the outer disc and then clears the inner one; the
// clearing must come second.
func rasterRing(args define.ArgList) []define.Instruction {
	cx, cy, cz := args.Int(0), args.Int(1), args.Int(2)
	inner := args.Int(3)
	outer := args.Int(4)
	block := args.StrOr(5, "stone")
	if outer < 0 {
		outer = -outer
	}
	out := []define.Instruction{
		define.Fill(cx-outer, cy, cz-outer, cx+outer, cy, cz+outer, block),
	}
	if inner > 0 {
		out = append(out, define.Fill(cx-inner, cy, cz-inner, cx+inner, cy, cz+inner, "air"))
	}
	return out
}

func rasterFloor(args define.ArgList) []define.Instruction {
	x, y, z := args.Int(0), args.Int(1), args.Int(2)
	width := args.Int(3)
	depth := args.Int(4)
	block := args.StrOr(5, "stone")
	if width < 1 {
		width = 1
	}
	if depth < 1 {
		depth = 1
	}
	return []define.Instruction{define.Fill(x, y, z, x+width-1, y, z+depth-1, block)}
}

func rasterWall(args define.ArgList) []define.Instruction {
	x1, y1, z1 := args.Int(0), args.Int(1), args.Int(2)
	x2, y2, z2 := args.Int(3), args.Int(4), args.Int(5)
	block := args.StrOr(6, "stone")
	return []define.Instruction{define.Fill(x1, y1, z1, x2, y2, z2, block)}
}
