package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/snl/cmds"
	"github.com/reusee/snl/debugs"
	"github.com/reusee/snl/logs"
	"github.com/reusee/snl/modes"
	"github.com/reusee/snl/snlconfigs"
	"github.com/reusee/snl/snlvm"
)

var (
	srcFile = cmds.Var[string]("-file")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *srcFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.snl> is required")
		os.Exit(1)
	}

	content, err := os.ReadFile(*srcFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}

	scope := dscope.New(
		new(snlvm.Module),
		new(debugs.Module),
		new(snlconfigs.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		newVM snlvm.NewVM,
		newSpan logs.NewSpan,
		render debugs.Render,
		tap debugs.Tap,
		debug snlconfigs.Debug,
		tapEnabled snlconfigs.Tap,
	) {
		ctx, _ := newSpan(context.Background(), "")

		vm := newVM(snlvm.NewSource(*srcFile, string(content)))

		if !debug {
			for _, err := range vm.Run {
				if err != nil {
					fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err).Error())
					os.Exit(1)
				}
			}
			return
		}

		// single-step mode: buffer output, repaint per instruction, block
		// for one line before resuming
		vm.Step = true
		output := new(bytes.Buffer)
		vm.Output = output

		for interrupt, err := range vm.Run {
			if err != nil {
				fmt.Fprintln(os.Stderr, logs.WrapSpan(ctx, err).Error())
				os.Exit(1)
			}
			if interrupt == nil || !interrupt.Step {
				continue
			}

			render(os.Stdout, vm, output.String())

			for {
				line, err := vm.Input.ReadString('\n')
				if err != nil {
					// stdin closed, stop stepping
					return
				}
				if bool(tapEnabled) && strings.TrimSpace(line) == "?" {
					tap(ctx, "step", map[string]any{
						"pc":     vm.PC - 1,
						"head":   vm.Tape.Head(),
						"cell":   vm.Tape.Read(),
						"tape":   vm.Tape.Cells(),
						"stack":  append([]byte(nil), vm.Stack...),
						"output": output.String(),
					})
					render(os.Stdout, vm, output.String())
					continue
				}
				break
			}
		}
	})
}
