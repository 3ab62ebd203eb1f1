package debugs

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/snl/snlvm"
)

const (
	clearScreen = "\x1b[3J\x1b[2J\x1b[H"
	inverse     = "\x1b[7m"
	reset       = "\x1b[0m"
)

// Render repaints the whole screen with one execution snapshot: the
// buffered output (with an inverse-video % marker when it does not end in
// a newline), the source with a caret under the current position, the
// tape dump, and the value stack dump.
type Render func(w io.Writer, vm *snlvm.VM, output string)

func (Module) Render() Render {
	return func(w io.Writer, vm *snlvm.VM, output string) {
		fmt.Fprint(w, clearScreen)

		fmt.Fprint(w, output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Fprintf(w, "%s%%%s\n\n", inverse, reset)
		} else {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, vm.Src.Content)
		caret := vm.PC - 1
		if caret < 0 {
			caret = 0
		}
		fmt.Fprintf(w, "%s^\n", strings.Repeat(" ", caret))

		fmt.Fprintln(w)

		fmt.Fprintln(w, vm.Tape.String())

		fmt.Fprintln(w, snlvm.DisplayStack(vm.Stack))
		fmt.Fprintln(w)
	}
}
