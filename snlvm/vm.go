package snlvm

import (
	"bufio"
	"io"

	"github.com/reusee/snl/logs"
)

type VM struct {
	Src      *Source
	PC       int
	Tape     *Tape
	Contexts []Context
	Stack    []byte
	Output   io.Writer
	Input    *bufio.Reader
	Logger   logs.Logger

	// Step makes Run yield InterruptStep around every instruction.
	Step bool
}

func (v *VM) currentChar() (byte, bool) {
	if v.PC < 0 || v.PC >= len(v.Src.Content) {
		return 0, false
	}
	return v.Src.Content[v.PC], true
}

func (v *VM) nextChar() (byte, bool) {
	c, ok := v.currentChar()
	v.PC++
	return c, ok
}

func (v *VM) seekChar(pos int) {
	v.PC = pos
}

func (v *VM) pushContext(ctx Context) {
	v.Contexts = append(v.Contexts, ctx)
}

func (v *VM) popContext() (Context, bool) {
	n := len(v.Contexts)
	if n == 0 {
		return Context{}, false
	}
	ctx := v.Contexts[n-1]
	v.Contexts = v.Contexts[:n-1]
	return ctx, true
}
