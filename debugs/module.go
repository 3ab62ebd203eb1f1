package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/snl/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
