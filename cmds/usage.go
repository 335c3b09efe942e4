package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	e.WriteUsage(os.Stderr)
}

// WriteUsage lists the commands sorted by name, each once, with its
// arguments and aliases. Sub commands are indented under their command.
func (e *Executor) WriteUsage(w io.Writer) {
	writeUsage(w, e.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	var names []string
	for name, command := range commands {
		if command != nil && slices.Contains(command.Aliases, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil {
			fmt.Fprintln(w, indent+name)
			continue
		}
		line := indent + strings.Join(append([]string{name}, command.ArgNames...), " ")
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line = fmt.Sprintf("%-32s %s", line, command.Description)
		}
		fmt.Fprintln(w, line)
		writeUsage(w, command.Subs, depth+1)
	}
}
