package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/logs"
	"github.com/reusee/typy/modes"
	"github.com/reusee/typy/parsers"
	"github.com/reusee/typy/typyconfigs"
	"golang.org/x/term"
)

// the command to run after all flags are applied
var action func(scope Scope) error

func setAction(fn func(scope Scope) error) {
	action = fn
}

// errRejected reports that some input has diagnostics. They are already
// printed.
var errRejected = errors.New("rejected")

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}
	if action == nil {
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	err := run(scope, action)
	switch {
	case errors.Is(err, errRejected):
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

func run(scope Scope, fn func(Scope) error) (err error) {
	defer func() {
		// configs panic on invalid files
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = e
		}
	}()
	scope.Call(func(
		level typyconfigs.LogLevel,
	) {
		if err = logs.SetDefaultLevel(string(level)); err != nil {
			return
		}
		err = fn(scope)
	})
	return
}

func readSource(path string) (parsers.Source, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return parsers.Source{}, wrap(err)
		}
		return parsers.Source{
			Name: "<stdin>",
			Text: string(content),
		}, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return parsers.Source{}, wrap(err)
	}
	return parsers.Source{
		Name: path,
		Text: string(content),
	}, nil
}

// readSources reads stdin when no path is given and stdin is not a terminal.
func readSources(paths []string) (ret []parsers.Source, err error) {
	if len(paths) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no input files")
		}
		paths = []string{"-"}
	}
	for _, path := range paths {
		source, err := readSource(path)
		if err != nil {
			return nil, err
		}
		ret = append(ret, source)
	}
	return
}
