package buildlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

type Config struct {
	Root string `yaml:"root"`
}

// BatchEntry is one deployed instruction batch as written to the audit
// log: enough to replay the build or account for what was sent.
type BatchEntry struct {
	Time         time.Time `json:"time"`
	RequestID    string    `json:"request_id"`
	Source       string    `json:"source"`
	Description  string    `json:"description,omitempty"`
	Sent         int       `json:"sent"`
	Failed       int       `json:"failed"`
	Instructions []string  `json:"instructions"`
}

// BuildLog writes batch entries as zstd-compressed JSONL, one file per
// hour so old hours are immutable and cheap to archive.
type BuildLog struct {
	root string

	mu       sync.Mutex
	file     *os.File
	enc      *zstd.Encoder
	fileHour time.Time
}

func (b *BuildLog) New(config []byte) define.Plugin {
	cfg := &Config{}
	if err := yaml.Unmarshal(config, cfg); err != nil {
		panic(err)
	}
	if cfg.Root == "" {
		cfg.Root = path.Join("data", "buildlog")
	}
	if err := os.MkdirAll(cfg.Root, 0755); err != nil {
		panic(fmt.Sprintf("BuildLog-New: cannot create %v (%v)", cfg.Root, err))
	}
	b.root = cfg.Root
	return b
}

func (b *BuildLog) Inject(taskIO *task.TaskIO, collaborationContext map[string]define.Plugin) define.Plugin {
	return b
}

func (b *BuildLog) Routine() {
}

func (b *BuildLog) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeCurrentLocked()
}

// RecordBatch appends one entry, rotating to a new file when the hour
// rolls over. A write error is reported but never stops a deployment.
func (b *BuildLog) RecordBatch(entry BatchEntry) error {
	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("buildlog: marshal entry: %w", err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.rotateLocked(entry.Time); err != nil {
		return err
	}
	if _, err := b.enc.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("buildlog: write entry: %w", err)
	}
	return nil
}

func (b *BuildLog) rotateLocked(now time.Time) error {
	hour := now.Truncate(time.Hour)
	if b.enc != nil && hour.Equal(b.fileHour) {
		return nil
	}
	b.closeCurrentLocked()
	name := path.Join(b.root, hour.Format("2006-01-02T15")+".jsonl.zst")
	file, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("buildlog: open %v: %w", name, err)
	}
	enc, err := zstd.NewWriter(file)
	if err != nil {
		file.Close()
		return fmt.Errorf("buildlog: zstd writer: %w", err)
	}
	b.file = file
	b.enc = enc
	b.fileHour = hour
	return nil
}

func (b *BuildLog) closeCurrentLocked() {
	if b.enc != nil {
		b.enc.Close()
		b.enc = nil
	}
	if b.file != nil {
		b.file.Close()
		b.file = nil
	}
}
