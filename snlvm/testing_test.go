package snlvm

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"
)

type testRig struct {
	vm       *VM
	output   *bytes.Buffer
	warnings *bytes.Buffer
}

func newTestRig(src string, input string) *testRig {
	output := new(bytes.Buffer)
	warnings := new(bytes.Buffer)
	vm := &VM{
		Src:    NewSource("test", src),
		Tape:   NewTape(),
		Output: output,
		Input:  bufio.NewReader(strings.NewReader(input)),
		Logger: slog.New(slog.NewTextHandler(warnings, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})),
	}
	return &testRig{
		vm:       vm,
		output:   output,
		warnings: warnings,
	}
}

func (r *testRig) run() error {
	for _, err := range r.vm.Run {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *testRig) numWarnings() int {
	return strings.Count(r.warnings.String(), "level=WARN")
}
