package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/parsers"
)

func init() {
	cmds.Define("tree", cmds.Func(func(path string) {
		setAction(func(scope Scope) error {
			return printTree(scope, os.Stdout, path)
		})
	}).Args("FILE").Desc("print the syntax tree of a file"))
}

func printTree(scope Scope, w io.Writer, path string) (err error) {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		parse parsers.ParseSource,
	) {
		result := parse(context.Background(), source)
		if !result.Accepted() {
			fmt.Fprint(os.Stderr, diags.Render(source.Name, source.Text, result.Diagnostics))
			err = errRejected
			return
		}
		if _, err = fmt.Fprintln(w, nodes.Format(result.Tree)); err != nil {
			err = wrap(err)
		}
	})
	return
}
