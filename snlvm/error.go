package snlvm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAddressUnderflow = errors.New("tape head underflow")
	ErrDivideByZero     = errors.New("divide by zero")
)

type PosError struct {
	Err    error
	Pos    int
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	line, content, column := p.Source.Line(p.Pos)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, line, column+1))
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", column))
	sb.WriteString("^\n")
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos int, source *Source) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: source,
	}
}
