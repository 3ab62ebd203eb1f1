package snlvm

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Run is the dispatch loop, usable with range-over-func. Recoverable
// conditions are logged and the loop continues with the instruction's
// effect omitted; fatal conditions are yielded as errors and stop the
// loop. With Step set, InterruptStep is yielded before every instruction
// and once more after the program ends, so the caller can render and
// block for input.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		c, ok := v.nextChar()
		if !ok {
			if v.Step {
				yield(InterruptStep, nil)
			}
			return
		}
		pos := v.PC - 1

		if v.Step {
			if !yield(InterruptStep, nil) {
				return
			}
		}

		switch {

		case c >= '0' && c <= '9':
			v.Tape.Write(c - '0')

		case c == '>':
			v.Tape.Right()

		case c == '<':
			if err := v.Tape.Left(); err != nil {
				yield(nil, WithPos(err, pos, v.Src))
				return
			}

		case c == 'c':
			line, err := v.readLine()
			if err != nil {
				yield(nil, WithPos(err, pos, v.Src))
				return
			}
			n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 8)
			if err != nil {
				yield(nil, WithPos(fmt.Errorf("bad number input: %w", err), pos, v.Src))
				return
			}
			v.Tape.Write(byte(n))

		case c == 'i':
			line, err := v.readLine()
			if err != nil {
				yield(nil, WithPos(err, pos, v.Src))
				return
			}
			runes := []rune(strings.TrimSpace(line))
			if len(runes) != 1 {
				yield(nil, WithPos(errors.New("bad character input"), pos, v.Src))
				return
			}
			v.Tape.Write(byte(runes[0]))

		case c == 's':
			line, err := v.readLine()
			if err != nil {
				yield(nil, WithPos(err, pos, v.Src))
				return
			}
			trimmed := strings.TrimSpace(line)
			for i := 0; i < len(trimmed); i++ {
				v.Tape.Write(trimmed[i])
				v.Tape.Right()
			}
			v.Tape.Write(0)
			for range len(trimmed) {
				_ = v.Tape.Left()
			}

		case c == 'p':
			n := 0
			for v.Tape.Read() != 0 {
				fmt.Fprintf(v.Output, "%c", v.Tape.Read())
				v.Tape.Right()
				n++
			}
			for range n {
				_ = v.Tape.Left()
			}

		case c == 'n':
			fmt.Fprintf(v.Output, "%d", v.Tape.Read())

		case c == 'o':
			fmt.Fprintf(v.Output, "%c", v.Tape.Read())

		case c == '+':
			left, right := v.operands()
			v.Tape.Write(left + right)

		case c == '-':
			left, right := v.operands()
			v.Tape.Write(left - right)

		case c == '*':
			left, right := v.operands()
			product := int(left) * int(right)
			if product > 0xff {
				v.Logger.Warn("multiplication overflow, skipping",
					"left", left,
					"right", right,
					"pc", pos,
				)
			} else {
				v.Tape.Write(byte(product))
			}

		case c == '/':
			left, right := v.operands()
			if right == 0 {
				yield(nil, WithPos(ErrDivideByZero, pos, v.Src))
				return
			}
			v.Tape.Write(left / right)

		case c == '[':
			// only meaningful after a bracket letter, already consumed there

		case c == ']':
			if ctx, ok := v.popContext(); ok {
				cell := v.Tape.Read()
				var loop bool
				switch ctx.Kind {
				case WhileNonzero:
					loop = cell != 0
				case WhileZero:
					loop = cell == 0
				}
				if loop {
					v.seekChar(ctx.Return)
					v.pushContext(ctx)
				}
			}

		case c == '@':
			v.pushValue(v.Tape.Read())

		case c == '#':
			if value, ok := v.popValue(); ok {
				v.Tape.Write(value)
			}

		case c == 'z':
			v.enterBlock(c, false, true)

		case c == 'w':
			v.enterBlock(c, true, true)

		case c == 'e':
			v.enterBlock(c, false, false)

		case c == 'f':
			v.enterBlock(c, true, false)

		default:
			v.Logger.Warn("unknown character, skipping",
				"char", string(c),
				"pc", pos,
			)
		}
	}
}

// operands reads the current cell and the one to its right, restoring the
// head. Left is the pre-move cell, right the post-move one.
func (v *VM) operands() (left byte, right byte) {
	left = v.Tape.Read()
	v.Tape.Right()
	right = v.Tape.Read()
	_ = v.Tape.Left()
	return
}

func (v *VM) readLine() (string, error) {
	line, err := v.Input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
