package config

import (
	"flag"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/console"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
)

var argConfigFile = flag.String("c", "", "config file path")

type PluginConfig struct {
	Name    string      `yaml:"name"`
	As      string      `yaml:"as"`
	File    string      `yaml:"file"`
	Require []string    `yaml:"require"`
	Configs interface{} `yaml:"configs"`
}

type PluginSystemConfig struct {
	Version string         `yaml:"version"`
	Plugins []PluginConfig `yaml:"plugins"`
}

type ConsoleConfig struct {
	// Type selects the transport: "rcon" or "websocket".
	Type             string             `json:"type"`
	RCON             console.RCONConfig `json:"rcon"`
	WS               console.WSConfig   `json:"websocket"`
	MaskTermPassword bool               `json:"mask_term_password"`
	NoPassword       bool               `json:"not_record_password"`
	// similar to the server password handling: remember what the file had
	// so write-back does not leak an interactively typed secret
	origPassword string
}

type StartConfig struct {
	ConsoleConfig ConsoleConfig `json:"console_config"`
	// Shield Config
	ShieldConfig shield.ShieldConfig `json:"shield_config"`
	// Plugin Config
	pluginsConfig    PluginSystemConfig
	PluginConfigPath string `json:"plugin_config_path"`
	// Aux
	writeBackPath string
}

func (s *StartConfig) GetPluginConfig() *PluginSystemConfig {
	return &s.pluginsConfig
}

// Dialer builds the console dialer the shield will use.
func (s *StartConfig) Dialer() console.Dialer {
	if s.ConsoleConfig.Type == "websocket" {
		return &console.WSDialer{Config: s.ConsoleConfig.WS}
	}
	return &console.RCONDialer{Config: s.ConsoleConfig.RCON}
}
