package plugins

import (
	"github.com/ColeGendreau/Minecraft-1.0-sub000/define"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/architect"
	"github.com/ColeGendreau/Minecraft-1.0-sub000/plugins/buildlog"
)

var pool map[string]func() define.Plugin
var isInit bool

func Pool() map[string]func() define.Plugin {
	if !isInit {
		pool = make(map[string]func() define.Plugin)

		// Registry
		pool["storage"] = func() define.Plugin { return &Storage{} }
		pool["cli_interface"] = func() define.Plugin { return &CliInterface{} }
		pool["build_log"] = func() define.Plugin { return &buildlog.BuildLog{} }
		pool["architect"] = func() define.Plugin { return &architect.Architect{} }

		isInit = true
	}
	return pool
}
