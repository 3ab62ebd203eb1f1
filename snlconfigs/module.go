package snlconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/snl/configs"
	"github.com/reusee/snl/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
