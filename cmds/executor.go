package cmds

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// Executor runs commands named by arguments in order. Sub commands of a
// run command become available to the arguments after it.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
	}
	e.Define("-h", Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return e
}

// Define panics if name or an alias of command is defined.
func (e *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = command.run(args[1:])
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subName, sub := range command.Subs {
				if _, ok := commands[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				commands[subName] = sub
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}
