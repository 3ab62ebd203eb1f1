package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printed := make(map[*Command]bool)
	printCommands(os.Stdout, p.commands, 0, printed)
}

func printCommands(w io.Writer, commands map[string]*Command, indent int, printed map[*Command]bool) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if printed[command] {
			continue
		}
		printed[command] = true
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", indent), name)
		if len(command.Aliases) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(command.Aliases, ", "))
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, indent+1, printed)
		}
	}
}
