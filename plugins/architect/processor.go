package architect

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/procgen"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect/raster"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/buildlog"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

type requestRecorder interface {
	RecordRequest(source string, request string, instructionCount int) string
	RecordDeployment(requestID string, startedAt time.Time, finishedAt time.Time, sent int, failed int)
}

type batchAuditor interface {
	RecordBatch(entry buildlog.BatchEntry) error
}

// Processor executes build/gen command lines end to end: parse,
// resolve to instructions, deploy over the console with pacing, then
// file the outcome with whatever recorder and auditor are wired in.
type Processor struct {
	DefaultDelay time.Duration
	Recorder     requestRecorder
	Auditor      batchAuditor

	taskIO   *task.TaskIO
	resolver *Resolver
	log      func(isJson bool, data string)

	customMu sync.Mutex
	custom   map[string]define.VoxelDefinition
}

func NewProcessor(taskIO *task.TaskIO, resolver *Resolver, log func(isJson bool, data string)) *Processor {
	return &Processor{
		taskIO:   taskIO,
		resolver: resolver,
		log:      log,
		custom:   make(map[string]define.VoxelDefinition),
	}
}

// Process handles one intercepted command line. Grammar:
//
//	gen [seed=S] [scale=N] [complexity=N] <theme words...>
//	build script <path>
//	build voxels <path.json>
//	build objects
//	build stats
//	build <dsl line>
func (p *Processor) Process(data string) {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "gen":
		p.processGen(data, fields[1:])
		return
	case "build":
		if len(fields) < 2 {
			p.taskIO.Say(false, "build: nothing to build")
			return
		}
		switch fields[1] {
		case "script":
			if len(fields) < 3 {
				p.taskIO.Say(false, "build script: missing path")
				return
			}
			p.processScript(data, fields[2])
			return
		case "voxels":
			if len(fields) < 3 {
				p.taskIO.Say(false, "build voxels: missing path")
				return
			}
			p.loadCustomVoxels(fields[2])
			return
		case "objects":
			p.taskIO.Say(false, "objects: "+strings.Join(raster.VoxelObjectNames(), ", "))
			return
		case "stats":
			sent, failed := p.taskIO.Stats()
			p.taskIO.Say(false, fmt.Sprintf("stats: %v sent, %v failed", sent, failed))
			return
		}
		line := strings.TrimSpace(strings.TrimPrefix(data, "build"))
		ins := p.resolver.Resolve([]string{line}, p.snapshotCustom())
		p.deploy("cli", data, line, ins)
		return
	}
	p.log(false, fmt.Sprintf("Architect-Process: unrecognized line (%v)", data))
}

func (p *Processor) processGen(request string, args []string) {
	seed, theme := "", make([]string, 0, len(args))
	scale, complexity := 1.0, 5.0
	for _, f := range args {
		switch {
		case strings.HasPrefix(f, "seed="):
			seed = strings.TrimPrefix(f, "seed=")
		case strings.HasPrefix(f, "scale="):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(f, "scale="), 64); err == nil {
				scale = v
			}
		case strings.HasPrefix(f, "complexity="):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(f, "complexity="), 64); err == nil {
				complexity = v
			}
		default:
			theme = append(theme, f)
		}
	}
	themeStr := strings.Join(theme, " ")
	if seed == "" {
		seed = themeStr
	}
	structures := procgen.Generate(seed, themeStr, scale, complexity)
	p.taskIO.Say(false, fmt.Sprintf("gen: %v structures for theme '%v'", len(structures), themeStr))
	for _, st := range structures {
		p.taskIO.Say(false, fmt.Sprintf("gen: %v - %v", st.Name, st.Description))
		p.deploy("gen", request, st.Name, st.Instructions)
	}
}

func (p *Processor) processScript(request string, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.taskIO.Say(false, fmt.Sprintf("build script: cannot read %v (%v)", path, err))
		return
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	ins := p.resolver.Resolve(lines, p.snapshotCustom())
	p.deploy("script", request, path, ins)
}

func (p *Processor) loadCustomVoxels(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		p.taskIO.Say(false, fmt.Sprintf("build voxels: cannot read %v (%v)", path, err))
		return
	}
	defs, err := ParseCustomVoxels(data)
	if err != nil {
		p.taskIO.Say(false, fmt.Sprintf("build voxels: %v", err))
		return
	}
	p.customMu.Lock()
	for name, def := range defs {
		p.custom[name] = def
	}
	p.customMu.Unlock()
	p.taskIO.Say(false, fmt.Sprintf("build voxels: loaded %v definitions", len(defs)))
}

func (p *Processor) snapshotCustom() map[string]define.VoxelDefinition {
	p.customMu.Lock()
	defer p.customMu.Unlock()
	out := make(map[string]define.VoxelDefinition, len(p.custom))
	for k, v := range p.custom {
		out[k] = v
	}
	return out
}

// deploy sends one resolved batch. The task lock is held for the whole
// batch so no other plugin can interleave commands. An optional
// instruction failing is tolerated; a required one failing aborts the
// remainder of the batch.
func (p *Processor) deploy(source string, request string, description string, ins []define.Instruction) {
	if len(ins) == 0 {
		p.taskIO.Say(false, "build: resolved to nothing")
		return
	}
	requestID := ""
	if p.Recorder != nil {
		requestID = p.Recorder.RecordRequest(source, request, len(ins))
	}
	startedAt := time.Now()
	sent, failed := 0, 0
	texts := make([]string, 0, len(ins))
	t := p.taskIO.Lock()
	for _, in := range ins {
		texts = append(texts, in.Text)
		_, err := t.SendCmdWithResp(in.Text)
		if err != nil {
			failed++
			if !in.Optional {
				p.log(false, fmt.Sprintf("Architect-Deploy: aborted after %v/%v (%v)", sent, len(ins), err))
				break
			}
			continue
		}
		sent++
		delay := p.DefaultDelay
		if d := time.Duration(in.DelayMS) * time.Millisecond; d > delay {
			delay = d
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	t.Unlock()
	finishedAt := time.Now()
	if p.Recorder != nil {
		p.Recorder.RecordDeployment(requestID, startedAt, finishedAt, sent, failed)
	}
	if p.Auditor != nil {
		if err := p.Auditor.RecordBatch(buildlog.BatchEntry{
			Time:         startedAt.UTC(),
			RequestID:    requestID,
			Source:       source,
			Description:  description,
			Sent:         sent,
			Failed:       failed,
			Instructions: texts,
		}); err != nil {
			p.log(false, fmt.Sprintf("Architect-Deploy: audit write failed (%v)", err))
		}
	}
	p.taskIO.Say(false, fmt.Sprintf("build: %v done, %v sent, %v failed", description, sent, failed))
}
