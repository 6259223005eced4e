package architect

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/pixelart"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/raster"
)

// passthroughPrefixes are the primitive verbs a non-DSL line may start
// with to survive as a raw instruction. Anything else is dropped.
var passthroughPrefixes = []string{"fill ", "setblock ", "forceload "}

// requestKind tags the closed set of things one input line can resolve to.
// Dispatch walks these in strict priority order.
type requestKind int

const (
	reqCustomVoxel requestKind = iota
	reqLibraryVoxel
	reqComponent
	reqImage
	reqShape
	reqRaw
	reqDrop
)

// Resolver is the single entry point unifying all sub-engines into one
// instruction stream. Production callers never touch the rasterizer,
// renderer, image pipeline or generator directly.
type Resolver struct {
	Fetcher      *pixelart.Fetcher
	ImageTimeout time.Duration
	MaxImageSize int
}

func NewResolver() *Resolver {
	return &Resolver{
		Fetcher:      &pixelart.Fetcher{},
		ImageTimeout: 15 * time.Second,
		MaxImageSize: pixelart.DefaultMaxSize,
	}
}

// Resolve turns a mixed stream of raw instructions, shape-DSL calls,
// custom voxel references, library objects and image references into the
// ordered instruction list. It never fails: malformed or unrecognized
// input degrades to nothing plus a diagnostic.
func (r *Resolver) Resolve(lines []string, custom map[string]define.VoxelDefinition) []define.Instruction {
	out := make([]define.Instruction, 0, len(lines))
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		// Only "// " (with the space) is a comment. "//pos1 ..."-style
		// lines are WorldEdit-flavored calls and fall through to parsing.
		if t == "//" || strings.HasPrefix(t, "// ") {
			continue
		}
		cmd, ok := ParseShapeCommand(t)
		if !ok {
			lower := strings.ToLower(t)
			kept := false
			for _, p := range passthroughPrefixes {
				if strings.HasPrefix(lower, p) {
					out = append(out, define.Instruction{Text: t})
					kept = true
					break
				}
			}
			if !kept {
				logrus.Debugf("Architect-Resolve: dropped line (%v)", t)
			}
			continue
		}
		out = append(out, r.dispatch(cmd, custom)...)
	}
	return out
}

// classify applies the priority order: custom voxel, built-in voxel,
// component, image, geometric primitive.
func (r *Resolver) classify(cmd define.ShapeCommand, custom map[string]define.VoxelDefinition) requestKind {
	if custom != nil {
		if _, ok := lookupCustom(custom, cmd.Name); ok {
			return reqCustomVoxel
		}
	}
	if _, ok := raster.LookupVoxelObject(cmd.Name); ok {
		return reqLibraryVoxel
	}
	if cmd.Name == "component" || IsComponent(cmd.Name) {
		return reqComponent
	}
	if cmd.Name == "image" || cmd.Name == "pixelart" || pixelart.IsBuiltinImage(cmd.Name) {
		return reqImage
	}
	return reqShape
}

func (r *Resolver) dispatch(cmd define.ShapeCommand, custom map[string]define.VoxelDefinition) []define.Instruction {
	switch r.classify(cmd, custom) {
	case reqCustomVoxel:
		def, _ := lookupCustom(custom, cmd.Name)
		return raster.RenderVoxels(def, cmd.Args.Int(0), cmd.Args.Int(1), cmd.Args.Int(2), scaleOr1(cmd.Args, 3))
	case reqLibraryVoxel:
		def, _ := raster.LookupVoxelObject(cmd.Name)
		return raster.RenderVoxels(def, cmd.Args.Int(0), cmd.Args.Int(1), cmd.Args.Int(2), scaleOr1(cmd.Args, 3))
	case reqComponent:
		name := cmd.Name
		a := cmd.Args
		if name == "component" {
			name = strings.ToLower(a.Str(0))
			a = a[min(1, len(a)):]
		}
		return RenderComponent(name, a)
	case reqImage:
		return r.resolveImage(cmd)
	default:
		return raster.Rasterize(cmd.Name, cmd.Args)
	}
}

func scaleOr1(a define.ArgList, i int) int {
	s := a.Int(i)
	if s < 1 {
		return 1
	}
	return s
}

// lookupCustom tries the exact name, then the underscore-normalized form.
func lookupCustom(custom map[string]define.VoxelDefinition, name string) (define.VoxelDefinition, bool) {
	if def, ok := custom[name]; ok {
		return def, true
	}
	norm := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	if def, ok := custom[norm]; ok {
		return def, true
	}
	for k, def := range custom {
		if strings.ReplaceAll(strings.ToLower(k), " ", "_") == norm {
			return def, true
		}
	}
	return define.VoxelDefinition{}, false
}

// resolveImage handles image(...) / pixelart(...) / builtin-name(...).
// Shapes of the call:
//
//	image("url", x, y, z, mode?, facing?, scale?, depth?)
//	image("front", "side", x, y, z, "carve")
//	creeper(x, y, z, mode?, ...)
//
// Fetch or decode failure degrades to an empty list here; the typed error
// is only surfaced through the direct pipeline API.
func (r *Resolver) resolveImage(cmd define.ShapeCommand) []define.Instruction {
	a := cmd.Args
	sources := make([]string, 0, 2)
	if cmd.Name != "image" && cmd.Name != "pixelart" {
		sources = append(sources, cmd.Name)
	}
	for len(a) > 0 {
		if s, isStr := a[0].(string); isStr && len(sources) < 2 {
			sources = append(sources, s)
			a = a[1:]
			continue
		}
		break
	}
	if len(sources) == 0 {
		logrus.Warnf("Architect-Resolve: image call without a source, skipped")
		return nil
	}
	x, y, z := a.Int(0), a.Int(1), a.Int(2)
	opts := pixelart.Options{
		Mode:     pixelart.Mode(strings.ToLower(a.StrOr(3, string(pixelart.ModeWall)))),
		Facing:   strings.ToLower(a.StrOr(4, "north")),
		Scale:    a.Int(5),
		Depth:    a.Int(6),
		MaxDepth: a.Int(6),
		MaxSize:  r.MaxImageSize,
	}
	front, err := r.Fetcher.FetchWithTimeout(sources[0], r.ImageTimeout)
	if err != nil {
		logrus.Warnf("Architect-Resolve: %v", err)
		return nil
	}
	if opts.Mode == pixelart.ModeCarve || len(sources) == 2 {
		side := front
		if len(sources) == 2 {
			side, err = r.Fetcher.FetchWithTimeout(sources[1], r.ImageTimeout)
			if err != nil {
				logrus.Warnf("Architect-Resolve: %v", err)
				return nil
			}
		}
		res := pixelart.BuildCarve(front, side, x, y, z, opts)
		return res.Instructions
	}
	res := pixelart.Build(front, x, y, z, opts)
	return res.Instructions
}

// ParseShapeCommand parses one name(args...) call. Arguments are bare
// numbers, true/false, or single/double-quoted strings; whitespace around
// tokens is ignored. Returns false when the line is not a call at all.
func ParseShapeCommand(line string) (define.ShapeCommand, bool) {
	open := strings.IndexByte(line, '(')
	if open <= 0 || !strings.HasSuffix(line, ")") {
		return define.ShapeCommand{}, false
	}
	name := strings.ToLower(strings.TrimSpace(line[:open]))
	if name == "" || strings.ContainsAny(name, " \t") {
		return define.ShapeCommand{}, false
	}
	body := line[open+1 : len(line)-1]
	args := make(define.ArgList, 0, 8)
	for _, tok := range splitArgs(body) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		args = append(args, coerceArg(tok))
	}
	return define.ShapeCommand{Name: name, Args: args}, true
}

// splitArgs splits on commas that sit outside single or double quotes.
func splitArgs(body string) []string {
	out := make([]string, 0, 8)
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
			cur.WriteByte(c)
		case c == ',':
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func coerceArg(tok string) interface{} {
	if len(tok) >= 2 {
		if (tok[0] == '\'' && tok[len(tok)-1] == '\'') || (tok[0] == '"' && tok[len(tok)-1] == '"') {
			return tok[1 : len(tok)-1]
		}
	}
	switch strings.ToLower(tok) {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	return tok
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
