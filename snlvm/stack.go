package snlvm

import (
	"fmt"
	"strings"
)

func (v *VM) pushValue(value byte) {
	v.Stack = append(v.Stack, value)
}

func (v *VM) popValue() (byte, bool) {
	n := len(v.Stack)
	if n == 0 {
		return 0, false
	}
	value := v.Stack[n-1]
	v.Stack = v.Stack[:n-1]
	return value, true
}

// DisplayStack formats a byte stack bottom to top with the same
// printable-or-hex cell convention as the tape dump.
func DisplayStack(stack []byte) string {
	var sb strings.Builder
	for _, value := range stack {
		if isPrintable(value) {
			sb.WriteByte(value)
			sb.WriteString(" |")
		} else {
			fmt.Fprintf(&sb, "%02X|", value)
		}
	}
	return sb.String()
}
