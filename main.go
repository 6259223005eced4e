package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/config"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/task"
)

func main() {
	startConfig := config.CollectInfo()
	config.WriteBackConfig(startConfig)

	consoleShield := shield.NewShield(&startConfig.ShieldConfig)
	consoleShield.Dialer = startConfig.Dialer()
	taskIO := task.NewTaskIO(consoleShield.IO)

	closeFn := loadPlugins(taskIO, startConfig.GetPluginConfig())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	// make sure data are saved
	go func() {
		s := <-c
		fmt.Println("Got signal:", s)
		closeFn()
		fmt.Println("Close Functions done")
		os.Exit(0)
	}()

	consoleShield.Routine()
}

func loadPlugins(taskIO *task.TaskIO, pluginsConfig *config.PluginSystemConfig) func() {
	if pluginsConfig.Version != "0.0.0" {
		panic("Main-loadPlugins: Version Not Support!")
	}
	closeFns := make([]func(), 0)
	collaborationContext := make(map[string]define.Plugin)
	for i, plugin := range pluginsConfig.Plugins {
		if plugin.As == "" {
			plugin.As = plugin.Name
		}
		color.Blue("loading Plugin: %v. %v As %v from %v", i, plugin.Name, plugin.As, plugin.File)
		if plugin.Require != nil {
			for _, r := range plugin.Require {
				_, hasK := collaborationContext[r]
				if !hasK {
					panic(fmt.Sprintf(`plugin: %v require plugin: "%v", but "%v" has not injected!`, plugin.Name, r, r))
				}
			}
		}
		pluginConfigBytes, _ := yaml.Marshal(plugin.Configs)
		var pi define.Plugin
		if plugin.File == "internal" || plugin.File == "" {
			p, ok := plugins.Pool()[plugin.Name]
			if !ok {
				panic(color.New(color.FgRed).Sprintf("No Such file Plugin: (%v)", plugin.Name))
			} else {
				pi = p().New(pluginConfigBytes)
			}
		} else {
			panic(color.New(color.FgRed).Sprintf("External plugin files are not supported: (%v)", plugin.File))
		}
		collaborationContext[plugin.As] = pi
		go pi.Inject(taskIO, collaborationContext).Routine()
		closeFns = append(closeFns, func() { pi.Close() })
	}
	return func() {
		for _, fn := range closeFns {
			fn()
		}
	}
}
