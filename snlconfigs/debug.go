package snlconfigs

import (
	"github.com/reusee/snl/cmds"
	"github.com/reusee/snl/configs"
)

// Debug selects single-step execution with the full-screen renderer.
type Debug bool

var _ configs.Configurable = Debug(false)

func (d Debug) ConfigExpr() string {
	return "Debug"
}

var debugFlag = cmds.Switch("-debug")

func (Module) Debug(
	loader configs.Loader,
) Debug {
	if *debugFlag {
		return true
	}
	return Debug(configs.First[bool](loader, "Debug"))
}
