package pixelart

import (
	"image"
	"math"

	"github.com/brentp/intintmap"
	"github.com/disintegration/imaging"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
	worlddef "github.com/ColeGendreau/Minecraft-1.0-sub000/world/define"
)

type Mode string

const (
	ModeWall      Mode = "wall"
	ModeExtrusion Mode = "extrusion"
	ModeRelief    Mode = "relief"
	ModeCarve     Mode = "carve"
)

const (
	// Pixels below this alpha are treated as empty.
	alphaThreshold = 128

	DefaultMaxSize = 100
	// Carving is cubic in resolution, so it gets a tighter cap.
	CarveMaxSize = 64
)

// Options select the projection of a quantized pixel grid into the world.
type Options struct {
	Mode     Mode
	Facing   string // north / south / east / west
	Scale    int    // blocks per pixel in-plane
	Depth    int    // extrusion span along the facing normal
	MaxDepth int    // relief maximum depth
	Invert   bool   // relief: bright pixels recede instead of protrude
	MaxSize  int    // neither processed dimension exceeds this
}

// Result is one finished projection. Instructions are ordered and final.
type Result struct {
	Instructions []define.Instruction
	Width        int
	Height       int
	Count        int
}

// quantizer memoizes nearest-palette lookups keyed by packed RGB.
type quantizer struct {
	cache *intintmap.Map
}

func newQuantizer() *quantizer {
	return &quantizer{cache: intintmap.New(1024, 0.6)}
}

func (q *quantizer) block(r, g, b uint8) string {
	key := int64(r)<<16 | int64(g)<<8 | int64(b)
	if v, ok := q.cache.Get(key); ok {
		return worlddef.BlockPalette[v].Name
	}
	i := worlddef.Closest(r, g, b)
	q.cache.Put(key, int64(i))
	return worlddef.BlockPalette[i].Name
}

// prepare downscales proportionally so neither dimension exceeds max and
// normalizes to NRGBA.
func prepare(img image.Image, max int) *image.NRGBA {
	if max < 1 {
		max = DefaultMaxSize
	}
	b := img.Bounds()
	if b.Dx() > max || b.Dy() > max {
		return imaging.Fit(img, max, max, imaging.Lanczos)
	}
	return imaging.Clone(img)
}

// facingAxes returns the in-plane horizontal step and the depth step for a
// facing. Vertical is always world +y; image rows flip onto it so row 0
// (top of the source) ends up highest.
func facingAxes(facing string) (hx, hz, dx, dz int) {
	switch facing {
	case "south":
		return -1, 0, 0, 1
	case "east":
		return 0, 1, 1, 0
	case "west":
		return 0, -1, -1, 0
	default: // north
		return 1, 0, 0, -1
	}
}

// span turns an anchored run of n cells along direction dir into an
// ordered lo..hi pair.
func span(anchor, n, dir int) (int, int) {
	if n < 1 {
		n = 1
	}
	end := anchor + (n-1)*dir
	if end < anchor {
		return end, anchor
	}
	return anchor, end
}

func luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}

// Build projects one image as a wall, an extrusion or a relief anchored at
// (ox, oy, oz).
func Build(img image.Image, ox, oy, oz int, opts Options) Result {
	src := prepare(img, opts.MaxSize)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	hx, hz, dx, dz := facingAxes(opts.Facing)
	q := newQuantizer()
	out := make([]define.Instruction, 0, w*h/2)

	for py := 0; py < h; py++ {
		wy := oy + (h-1-py)*scale
		for px := 0; px < w; px++ {
			c := src.NRGBAAt(px, py)
			if c.A < alphaThreshold {
				continue
			}
			block := q.block(c.R, c.G, c.B)
			bx := ox + px*scale*hx
			bz := oz + px*scale*hz
			depth := 1
			switch opts.Mode {
			case ModeExtrusion:
				depth = opts.Depth
				if depth < 1 {
					depth = 1
				}
			case ModeRelief:
				maxDepth := opts.MaxDepth
				if maxDepth < 1 {
					maxDepth = 1
				}
				lum := luminance(c.R, c.G, c.B)
				if opts.Invert {
					lum = 1.0 - lum
				}
				depth = int(math.Round(lum * float64(maxDepth)))
				if depth < 1 {
					depth = 1
				}
			}
			// Each world axis is either the in-plane horizontal axis
			// (spanning scale) or the depth axis (spanning depth).
			x1, x2 := bx, bx
			if hx != 0 {
				x1, x2 = span(bx, scale, hx)
			} else if dx != 0 {
				x1, x2 = span(bx, depth, dx)
			}
			z1, z2 := bz, bz
			if hz != 0 {
				z1, z2 = span(bz, scale, hz)
			} else if dz != 0 {
				z1, z2 = span(bz, depth, dz)
			}
			y1, y2 := wy, wy+scale-1
			if scale == 1 && depth == 1 {
				out = append(out, define.SetBlock(bx, wy, bz, block))
				continue
			}
			out = append(out, define.Fill(x1, y1, z1, x2, y2, z2, block))
		}
	}
	return Result{Instructions: out, Width: w, Height: h, Count: len(out)}
}

// BuildCarve intersects two orthogonal silhouettes: a voxel exists only
// where both the front pixel at (x, y) and the side pixel at (z, y) are
// opaque. Colors come from the front image.
func BuildCarve(front, side image.Image, ox, oy, oz int, opts Options) Result {
	max := opts.MaxSize
	if max < 1 || max > CarveMaxSize {
		max = CarveMaxSize
	}
	f := prepare(front, max)
	s := prepare(side, max)
	fw, fh := f.Bounds().Dx(), f.Bounds().Dy()
	if s.Bounds().Dy() != fh {
		// Both silhouettes must share a processed height.
		s = imaging.Resize(s, 0, fh, imaging.Lanczos)
	}
	sw := s.Bounds().Dx()
	q := newQuantizer()
	out := make([]define.Instruction, 0, fw*fh)
	for py := 0; py < fh; py++ {
		wy := oy + (fh - 1 - py)
		for px := 0; px < fw; px++ {
			fc := f.NRGBAAt(px, py)
			if fc.A < alphaThreshold {
				continue
			}
			block := q.block(fc.R, fc.G, fc.B)
			for pz := 0; pz < sw; pz++ {
				sc := s.NRGBAAt(pz, py)
				if sc.A < alphaThreshold {
					continue
				}
				out = append(out, define.SetBlock(ox+px, wy, oz+pz, block))
			}
		}
	}
	return Result{Instructions: out, Width: fw, Height: fh, Count: len(out)}
}
