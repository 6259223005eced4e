package config

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/muhammadmuzzammil1998/jsonc"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ColeGendreau/Minecraft-1.0-sub000/shield"
)

// CollectInfo assembles the start configuration: the jsonc config file
// if one exists, then interactive prompts for whatever is still
// missing. Config files may carry // comments.
func CollectInfo() *StartConfig {
	flag.Parse()
	args := flag.Args()
	config := StartConfig{
		ConsoleConfig: ConsoleConfig{
			Type:             "rcon",
			MaskTermPassword: true,
		},
		PluginConfigPath: "plugins_config.yaml",
		ShieldConfig: shield.ShieldConfig{
			Respawn:         true,
			MaxRetryTimes:   0,
			MaxDelaySeconds: 32,
		},
	}
	configFile := *argConfigFile
	config.writeBackPath = configFile
	if configFile == "" && len(args) > 0 {
		configFile = args[0]
		config.writeBackPath = configFile
	} else if configFile == "" {
		_, err := os.Lstat("config.json")
		config.writeBackPath = "config.json"
		if os.IsNotExist(err) {
			fmt.Println("Main: No config provided, will create a config file automatically")
		} else {
			fmt.Println("Main: Config file not specific, we will use the default: 'config.json'")
			configFile = "config.json"
		}
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			panic(fmt.Sprintf("Main: Error at reading config file (%v) (%v)", configFile, err))
		}
		err = jsonc.Unmarshal(data, &config)
		if err != nil {
			panic(fmt.Sprintf("Main: Error at Unmarshal config file (%v) (%v)", configFile, err))
		}
	}
	config.ConsoleConfig.origPassword = config.ConsoleConfig.RCON.Password

	if config.ConsoleConfig.Type == "websocket" {
		if config.ConsoleConfig.WS.Address == "" {
			config.ConsoleConfig.WS.Address = promptLine("Console Bridge Address (should be something like ws://127.0.0.1:8899): ")
		}
	} else {
		if config.ConsoleConfig.RCON.Address == "" {
			config.ConsoleConfig.RCON.Address = promptLine("RCON Address (should be something like 127.0.0.1:25575): ")
		}
		if config.ConsoleConfig.RCON.Password == "" {
			fmt.Printf("RCON Password: ")
			if config.ConsoleConfig.MaskTermPassword {
				bytePassword, _ := term.ReadPassword(int(syscall.Stdin))
				config.ConsoleConfig.RCON.Password = strings.TrimSpace(string(bytePassword))
				fmt.Println("")
			} else {
				reader := bufio.NewReader(os.Stdin)
				password, _ := reader.ReadString('\n')
				config.ConsoleConfig.RCON.Password = strings.TrimRight(password, "\r\n")
			}
		}
	}

	// load plugins config file
	fp, err := os.Open(config.PluginConfigPath)
	if err != nil {
		panic(fmt.Sprintf("Main: Error at opening plugin config file (%v) (%v)", config.PluginConfigPath, err))
	}
	defer fp.Close()
	err = yaml.NewDecoder(fp).Decode(&config.pluginsConfig)
	if err != nil {
		panic(fmt.Sprintf("Main: Error at Unmarshal plugin config file (%v) (%v)", config.PluginConfigPath, err))
	}
	return &config
}

func promptLine(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	line := ""
	for line == "" {
		fmt.Printf("%s", prompt)
		line, _ = reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
	}
	return line
}

func WriteBackConfig(config *StartConfig) {
	copiedConfig := *config
	if config.ConsoleConfig.NoPassword {
		copiedConfig.ConsoleConfig.RCON.Password = config.ConsoleConfig.origPassword
	}

	fp, err := os.Create(copiedConfig.writeBackPath)
	if err != nil {
		panic(fmt.Sprintf("Main: Fail to create updated config (%v)", err))
	}
	defer fp.Close()
	encoder := json.NewEncoder(fp)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "\t")
	err = encoder.Encode(copiedConfig)
	if err != nil {
		panic(fmt.Sprintf("Main: fail to marshal updated config (%v)", err))
	}
}
