package snlvm

import (
	"fmt"
	"strings"
)

// Tape is the singly-infinite byte memory. Cells never written read as 0
// and consume no storage.
type Tape struct {
	cells map[int]byte
	head  int
}

func NewTape() *Tape {
	return &Tape{
		cells: make(map[int]byte),
	}
}

func (t *Tape) Read() byte {
	return t.cells[t.head]
}

func (t *Tape) Write(value byte) {
	t.cells[t.head] = value
}

func (t *Tape) Right() {
	t.head++
}

func (t *Tape) Left() error {
	if t.head == 0 {
		return ErrAddressUnderflow
	}
	t.head--
	return nil
}

func (t *Tape) Head() int {
	return t.head
}

// Cells returns a copy of the written cells.
func (t *Tape) Cells() map[int]byte {
	ret := make(map[int]byte, len(t.cells))
	for addr, value := range t.cells {
		ret[addr] = value
	}
	return ret
}

// String formats the written cells three columns per address: a printable
// cell as its character, anything else as two hex digits, each cell closed
// by a pipe, with a caret under the head on the second line.
func (t *Tape) String() string {
	var cols []byte
	for addr, value := range t.cells {
		for len(cols) <= addr*3+3 {
			cols = append(cols, ' ')
		}
		if isPrintable(value) {
			cols[addr*3] = value
		} else {
			hex := fmt.Sprintf("%02X", value)
			cols[addr*3] = hex[0]
			cols[addr*3+1] = hex[1]
		}
		cols[addr*3+2] = '|'
	}

	var sb strings.Builder
	sb.Write(cols)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("   ", t.head))
	sb.WriteString("^")
	return sb.String()
}

func isPrintable(value byte) bool {
	return value >= 0x20 && value != 0x7f
}
