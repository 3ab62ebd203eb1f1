package snlvm

import (
	"bufio"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/snl/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewVM func(src *Source) *VM

func (Module) NewVM(
	logger logs.Logger,
) NewVM {
	return func(src *Source) *VM {
		return &VM{
			Src:    src,
			Tape:   NewTape(),
			Output: os.Stdout,
			Input:  bufio.NewReader(os.Stdin),
			Logger: logger,
		}
	}
}
