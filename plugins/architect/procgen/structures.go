package procgen

import (
	"fmt"
	"math"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/raster"
)

// args builds a shape-call parameter list; generators speak to the
// rasterizer exactly the way resolved DSL calls do.
func args(vals ...interface{}) define.ArgList {
	return define.ArgList(vals)
}

// opt marks an instruction as decorative: downstream failure must not
// abort the batch.
func opt(in define.Instruction) define.Instruction {
	in.Optional = true
	return in
}

// blockMix builds a noise-weighted block-percentage string such as
// "57%stone_bricks,43%mossy_cobblestone". Percentages always total 100.
func blockMix(rng *Source, blocks ...string) string {
	if len(blocks) == 0 {
		return "stone"
	}
	if len(blocks) == 1 {
		return blocks[0]
	}
	weights := make([]float64, len(blocks))
	total := 0.0
	for i := range blocks {
		weights[i] = 1.0 + rng.Next()
		total += weights[i]
	}
	out := ""
	used := 0
	for i, b := range blocks {
		share := 100 - used
		if i < len(blocks)-1 {
			share = int(math.Round(weights[i] / total * 100))
			if share < 1 {
				share = 1
			}
			if share > 100-used-(len(blocks)-1-i) {
				share = 100 - used - (len(blocks) - 1 - i)
			}
		}
		used += share
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%v%%%v", share, b)
	}
	return out
}

func buildStructure(rng *Source, cat Category, pal MaterialPalette, pos Position, scale float64) Structure {
	switch cat {
	case CategoryTower:
		return genSpiralTower(rng, pal, pos, scale)
	case CategoryFloating:
		return genFloatingIsland(rng, pal, pos, scale)
	case CategoryArchitectural:
		return genOrganicArch(rng, pal, pos, scale)
	case CategoryMegastructure:
		return genMonument(rng, pal, pos, scale*2)
	case CategoryMonument:
		return genMonument(rng, pal, pos, scale)
	case CategoryUnderground:
		return genTerrainFeature(rng, pal, pos, scale, []string{"crater", "canyon"})
	case CategoryTerrain:
		return genTerrainFeature(rng, pal, pos, scale, []string{"mountain", "ridge", "crater", "canyon"})
	case CategoryWater:
		return genDecoration(rng, pal, pos, scale, []string{"fountain"})
	case CategoryOrganic:
		return genDecoration(rng, pal, pos, scale, []string{"garden"})
	default: // decoration
		return genDecoration(rng, pal, pos, scale, []string{"garden", "fountain", "plaza", "pathway"})
	}
}

func genSpiralTower(rng *Source, pal MaterialPalette, pos Position, scale float64) Structure {
	x, y, z := pos.X, pos.Y, pos.Z
	h := int(float64(18+rng.IntN(14)) * scale)
	if h < 8 {
		h = 8
	}
	r := 4 + rng.IntN(3)
	wall := blockMix(rng, pal.Primary...)
	ins := raster.Rasterize("hollow_cylinder", args(x, y, z, r, h, wall))
	// Internal spiral walkway, one step per level.
	for i := 0; i < h; i++ {
		ang := float64(i) * 0.45
		sx := x + int(math.Cos(ang)*float64(r-1))
		sz := z + int(math.Sin(ang)*float64(r-1))
		ins = append(ins, define.SetBlock(sx, y+i, sz, rng.Pick(pal.Secondary)))
	}
	for i := 5; i < h; i += 6 {
		ins = append(ins, opt(define.SetBlock(x, y+i, z+r, rng.Pick(pal.Light))))
	}
	ins = append(ins, raster.Rasterize("cone", args(x, y+h, z, r+2, r+3, rng.Pick(pal.Detail)))...)
	// Doorway at the south face.
	ins = append(ins, define.Fill(x-1, y+1, z-r, x+1, y+3, z-r, "air"))
	return Structure{
		Name:            fmt.Sprintf("%v spiral tower", pal.Name),
		Description:     fmt.Sprintf("A %v-block spiral tower with an internal walkway and a conical roof", h),
		Instructions:    ins,
		EstimatedBlocks: h*(8*r+1) + (r+2)*(r+2)*2,
		Tags:            []string{pal.Name, "tower", "spiral"},
	}
}

func genFloatingIsland(rng *Source, pal MaterialPalette, pos Position, scale float64) Structure {
	x, z := pos.X, pos.Z
	y := pos.Y + 25
	r := int(float64(8+rng.IntN(6)) * scale)
	if r < 5 {
		r = 5
	}
	ins := []define.Instruction{define.ForceLoad(x-r, z-r, x+r, z+r)}
	// Underside taper, widest disc on top.
	depth := r/2 + 2
	for i := 0; i < depth; i++ {
		rr := int(float64(r) * (1.0 - float64(i)/float64(depth)))
		if rr < 1 {
			rr = 1
		}
		ins = append(ins, define.Fill(x-rr, y-i, z-rr, x+rr, y-i, z+rr, blockMix(rng, pal.Primary...)))
	}
	ins = append(ins, define.Fill(x-r, y+1, z-r, x+r, y+1, z+r, rng.Pick(pal.Organic)))
	ins = append(ins, raster.Rasterize("arch", args(x, y+2, z, 6, 9, rng.Pick(pal.Detail)))...)
	// Hanging accents under the rim.
	for i := 0; i < 6; i++ {
		ang := rng.Range(0, 2*math.Pi)
		hx := x + int(math.Cos(ang)*float64(r-1))
		hz := z + int(math.Sin(ang)*float64(r-1))
		drop := 2 + rng.IntN(4)
		ins = append(ins, opt(define.Fill(hx, y-depth-drop, hz, hx, y-depth, hz, rng.Pick(pal.Organic))))
	}
	ins = append(ins, opt(define.SetBlock(x, y+2, z, rng.Pick(pal.Light))))
	return Structure{
		Name:            fmt.Sprintf("%v floating island", pal.Name),
		Description:     fmt.Sprintf("A floating island of radius %v with an arch and hanging growth", r),
		Instructions:    ins,
		EstimatedBlocks: r * r * depth * 2,
		Tags:            []string{pal.Name, "floating", "island"},
	}
}

func genOrganicArch(rng *Source, pal MaterialPalette, pos Position, scale float64) Structure {
	x, y, z := pos.X, pos.Y, pos.Z
	width := int(float64(10+rng.IntN(8)) * scale)
	height := int(float64(12+rng.IntN(8)) * scale)
	body := blockMix(rng, pal.Primary...)
	ins := raster.Rasterize("arch", args(x, y, z, width, height, body))
	// Crown accent and pillar caps.
	half := width / 2
	ins = append(ins,
		opt(define.SetBlock(x, y+height, z, rng.Pick(pal.Light))),
		opt(define.SetBlock(x-half, y+int(float64(height)*0.6), z, rng.Pick(pal.Detail))),
		opt(define.SetBlock(x+half, y+int(float64(height)*0.6), z, rng.Pick(pal.Detail))),
	)
	return Structure{
		Name:            fmt.Sprintf("%v gateway arch", pal.Name),
		Description:     fmt.Sprintf("A %vx%v arch with crown lighting", width, height),
		Instructions:    ins,
		EstimatedBlocks: width * height,
		Tags:            []string{pal.Name, "arch", "gateway"},
	}
}

func genMonument(rng *Source, pal MaterialPalette, pos Position, scale float64) Structure {
	x, y, z := pos.X, pos.Y, pos.Z
	base := int(float64(14+rng.IntN(8)) * scale)
	half := base / 2
	ins := []define.Instruction{define.ForceLoad(x-half, z-half, x+half, z+half)}
	// Three-step plinth.
	for i := 0; i < 3; i++ {
		hh := half - i*2
		if hh < 2 {
			break
		}
		ins = append(ins, define.Fill(x-hh, y+i, z-hh, x+hh, y+i, z+hh, blockMix(rng, pal.Primary...)))
	}
	// Corner pillars.
	ph := 6 + rng.IntN(5)
	for _, c := range [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		px := x + c[0]*(half-1)
		pz := z + c[1]*(half-1)
		ins = append(ins, define.Fill(px, y+3, pz, px, y+3+ph, pz, rng.Pick(pal.Secondary)))
		ins = append(ins, opt(define.SetBlock(px, y+4+ph, pz, rng.Pick(pal.Light))))
	}
	// Centerpiece statue from the object library, scaled with the plinth.
	if def, ok := raster.LookupVoxelObject("statue"); ok {
		vs := 1
		if scale >= 2 {
			vs = 2
		}
		ins = append(ins, raster.RenderVoxels(def, x-2*vs, y+3, z-1*vs, vs)...)
	}
	return Structure{
		Name:            fmt.Sprintf("%v monument", pal.Name),
		Description:     fmt.Sprintf("A %v-wide stepped monument with corner pillars and a statue", base),
		Instructions:    ins,
		EstimatedBlocks: base*base*3 + 4*ph,
		Tags:            []string{pal.Name, "monument"},
	}
}

func genTerrainFeature(rng *Source, pal MaterialPalette, pos Position, scale float64, variants []string) Structure {
	x, y, z := pos.X, pos.Y, pos.Z
	variant := rng.Pick(variants)
	size := int(float64(12+rng.IntN(10)) * scale)
	var ins []define.Instruction
	blocks := size * size
	switch variant {
	case "ridge":
		n := 4 + rng.IntN(3)
		for i := 0; i < n; i++ {
			rr := 3 + rng.IntN(4)
			ins = append(ins, raster.Rasterize("cone", args(x+i*6, y, z+rng.IntN(5)-2, rr, rr*2, blockMix(rng, pal.Primary...)))...)
		}
		blocks = n * 40
	case "crater":
		rim := size / 2
		ins = append(ins, raster.Rasterize("ring", args(x, y, z, rim-2, rim, blockMix(rng, pal.Primary...)))...)
		ins = append(ins, define.Fill(x-rim+2, y-3, z-rim+2, x+rim-2, y-1, z+rim-2, "air"))
		ins = append(ins, opt(define.SetBlock(x, y-3, z, rng.Pick(pal.Special))))
	case "canyon":
		length := size * 2
		ins = append(ins,
			define.Fill(x, y-6, z-2, x+length, y, z+2, "air"),
			define.Fill(x, y-6, z-3, x+length, y, z-3, blockMix(rng, pal.Secondary...)),
			define.Fill(x, y-6, z+3, x+length, y, z+3, blockMix(rng, pal.Secondary...)),
			opt(define.Fill(x, y-6, z-2, x+length, y-6, z+2, rng.Pick(pal.Detail))),
		)
		blocks = length * 10
	default: // mountain
		levels := size / 2
		for i := 0; i < levels; i++ {
			rr := int(float64(size/2) * (1.0 - float64(i)/float64(levels)))
			if rr < 1 {
				rr = 1
			}
			// Off-center drift keeps the slopes from looking machined.
			ox := x + rng.IntN(3) - 1
			oz := z + rng.IntN(3) - 1
			ins = append(ins, define.Fill(ox-rr, y+i, oz-rr, ox+rr, y+i, oz+rr, blockMix(rng, pal.Primary...)))
		}
		ins = append(ins, opt(define.SetBlock(x, y+levels, z, rng.Pick(pal.Detail))))
	}
	return Structure{
		Name:            fmt.Sprintf("%v %v", pal.Name, variantName(variant)),
		Description:     fmt.Sprintf("A generated %v terrain feature about %v blocks across", variant, size),
		Instructions:    ins,
		EstimatedBlocks: blocks,
		Tags:            []string{pal.Name, "terrain", variant},
	}
}

func variantName(v string) string {
	switch v {
	case "ridge":
		return "ridge line"
	case "crater":
		return "impact crater"
	case "canyon":
		return "canyon"
	default:
		return "mountain"
	}
}

func genDecoration(rng *Source, pal MaterialPalette, pos Position, scale float64, variants []string) Structure {
	x, y, z := pos.X, pos.Y, pos.Z
	variant := rng.Pick(variants)
	var ins []define.Instruction
	size := int(float64(8+rng.IntN(6)) * scale)
	blocks := size * size
	switch variant {
	case "fountain":
		r := size / 2
		ins = append(ins, raster.Rasterize("ring", args(x, y, z, r-2, r, rng.Pick(pal.Primary)))...)
		ins = append(ins, define.Fill(x, y, z, x, y+3, z, rng.Pick(pal.Secondary)))
		ins = append(ins, define.SetBlock(x, y+4, z, rng.Pick(pal.Light)))
		ins = append(ins, opt(define.Fill(x-r+2, y, z-r+2, x+r-2, y, z+r-2, "water")))
	case "plaza":
		half := size / 2
		ins = append(ins, define.Fill(x-half, y, z-half, x+half, y, z+half, blockMix(rng, pal.Primary...)))
		for _, c := range [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
			px := x + c[0]*(half-1)
			pz := z + c[1]*(half-1)
			ins = append(ins, define.Fill(px, y+1, pz, px, y+3, pz, rng.Pick(pal.Secondary)))
			ins = append(ins, opt(define.SetBlock(px, y+4, pz, rng.Pick(pal.Light))))
		}
	case "pathway":
		length := size * 3
		for i := 0; i < length; i += 4 {
			ins = append(ins, define.Fill(x+i, y, z-1, x+i+3, y, z+1, blockMix(rng, pal.Secondary...)))
			if i%12 == 0 {
				ins = append(ins, opt(define.SetBlock(x+i, y+1, z+2, rng.Pick(pal.Light))))
			}
		}
		blocks = length * 3
	default: // garden
		half := size / 2
		ins = append(ins, define.Fill(x-half, y, z-half, x+half, y, z+half, "grass_block"))
		for i := 0; i < size; i++ {
			gx := x + rng.IntN(size) - half
			gz := z + rng.IntN(size) - half
			ins = append(ins, opt(define.SetBlock(gx, y+1, gz, rng.Pick(pal.Organic))))
		}
		ins = append(ins, opt(define.SetBlock(x, y+1, z, rng.Pick(pal.Special))))
	}
	return Structure{
		Name:            fmt.Sprintf("%v %v", pal.Name, variant),
		Description:     fmt.Sprintf("A decorative %v about %v blocks across", variant, size),
		Instructions:    ins,
		EstimatedBlocks: blocks,
		Tags:            []string{pal.Name, "decoration", variant},
	}
}
