package snlconfigs

import (
	"github.com/reusee/snl/cmds"
	"github.com/reusee/snl/configs"
)

// Tap enables the starlark inspection REPL at the step prompt.
type Tap bool

var _ configs.Configurable = Tap(false)

func (t Tap) ConfigExpr() string {
	return "Tap"
}

var tapFlag = cmds.Switch("-tap")

func (Module) Tap(
	loader configs.Loader,
) Tap {
	if *tapFlag {
		return true
	}
	return Tap(configs.First[bool](loader, "Tap"))
}
