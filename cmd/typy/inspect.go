package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/debugs"
	"github.com/reusee/typy/parsers"
)

func init() {
	cmds.Define("inspect", cmds.Func(func(path string) {
		setAction(func(scope Scope) error {
			return inspect(scope, path)
		})
	}).Args("FILE").Desc("explore the parse result of a file in a starlark REPL"))

	cmds.Define("query", cmds.Func(func(path string, expr string) {
		setAction(func(scope Scope) error {
			return query(scope, os.Stdout, path, expr)
		})
	}).Args("FILE", "EXPR").Desc("evaluate a starlark expression over the parse result of a file"))
}

// globals bound in inspect and query
func resultGlobals(source parsers.Source, result parsers.Result) map[string]any {
	return map[string]any{
		"name":        source.Name,
		"source":      source.Text,
		"accepted":    result.Accepted(),
		"tree":        result.Tree,
		"diagnostics": result.Diagnostics,
	}
}

func inspect(scope Scope, path string) (err error) {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		parse parsers.ParseSource,
		inspect debugs.Inspect,
	) {
		ctx := context.Background()
		result := parse(ctx, source)
		inspect(ctx, source.Name, resultGlobals(source, result))
	})
	return
}

func query(scope Scope, w io.Writer, path string, expr string) (err error) {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		parse parsers.ParseSource,
	) {
		result := parse(context.Background(), source)
		value, e := debugs.Eval(expr, resultGlobals(source, result))
		if e != nil {
			err = e
			return
		}
		if _, err = fmt.Fprintln(w, value.String()); err != nil {
			err = wrap(err)
		}
	})
	return
}
