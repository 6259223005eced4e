package architect

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

type Source struct {
	Use     []string `yaml:"use"`
	RegName string   `yaml:"reg_name"`
	Plugin  string   `yaml:"plugin"`
}

// Architect is the build engine plugin: it intercepts build/gen lines
// from its sources, resolves them into instruction batches and deploys
// them through the console.
type Architect struct {
	Sources             []Source `yaml:"sources"`
	LogName             string   `yaml:"log_name"`
	LogPlugin           string   `yaml:"log_plugin"`
	StoragePlugin       string   `yaml:"storage_plugin"`
	BuildLogPlugin      string   `yaml:"buildlog_plugin"`
	DefaultDelayMS      int      `yaml:"default_delay_ms"`
	MaxImageSize        int      `yaml:"max_image_size"`
	ImageTimeoutSeconds int      `yaml:"image_timeout_seconds"`

	log       func(isJson bool, data string)
	taskIO    *task.TaskIO
	processor *Processor
}

func (a *Architect) New(config []byte) define.Plugin {
	a.Sources = make([]Source, 0)
	a.LogName = "architect"
	a.LogPlugin = "storage"
	a.StoragePlugin = "storage"
	a.BuildLogPlugin = "build_log"
	err := yaml.Unmarshal(config, a)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Architect) Close() {
}

func (a *Architect) Routine() {
	a.taskIO.WaitInit()
}

func (a *Architect) onNewText(isJson bool, use []string, data string) (bool, string) {
	data = strings.TrimSpace(data)
	for _, prefix := range use {
		if strings.HasPrefix(data, prefix) {
			a.log(isJson, data)
			go a.processor.Process(data)
			return true, ""
		}
	}
	// fall through
	return false, data
}

func (a *Architect) Inject(taskIO *task.TaskIO, collaborationContext map[string]define.Plugin) define.Plugin {
	a.taskIO = taskIO
	if a.LogName != "" {
		a.log = collaborationContext[a.LogPlugin].(define.StringWriteInterface).RegStringSender(a.LogName)
	} else {
		a.log = func(isJson bool, data string) {}
	}
	resolver := NewResolver()
	if a.MaxImageSize > 0 {
		resolver.MaxImageSize = a.MaxImageSize
	}
	if a.ImageTimeoutSeconds > 0 {
		resolver.ImageTimeout = time.Duration(a.ImageTimeoutSeconds) * time.Second
	}
	a.processor = NewProcessor(taskIO, resolver, a.log)
	if a.DefaultDelayMS > 0 {
		a.processor.DefaultDelay = time.Duration(a.DefaultDelayMS) * time.Millisecond
	}
	if p, ok := collaborationContext[a.StoragePlugin]; ok {
		if rec, ok := p.(requestRecorder); ok {
			a.processor.Recorder = rec
		}
	}
	if p, ok := collaborationContext[a.BuildLogPlugin]; ok {
		if aud, ok := p.(batchAuditor); ok {
			a.processor.Auditor = aud
		}
	}
	for _, s := range a.Sources {
		src := collaborationContext[s.Plugin].(define.StringReadInterface)
		use := s.Use
		if len(use) == 0 {
			use = []string{"build ", "gen "}
		}
		src.RegStringInterceptor(s.RegName, func(isJson bool, data string) (bool, string) {
			return a.onNewText(isJson, use, data)
		})
	}
	return a
}
