package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/lexers"
	"github.com/reusee/typy/typyconfigs"
)

func init() {
	cmds.Define("tokens", cmds.Func(func(path string) {
		setAction(func(scope Scope) error {
			return printTokens(scope, os.Stdout, path)
		})
	}).Args("FILE").Desc("print the token stream of a file"))
}

func printTokens(scope Scope, w io.Writer, path string) (err error) {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	scope.Call(func(
		tabWidth typyconfigs.TabWidth,
	) {
		collector := new(diags.Collector)
		lexer := lexers.New(source.Text, collector, lexers.WithTabWidth(int(tabWidth)))
		for tok := range lexers.All(lexer) {
			if _, err = fmt.Fprintf(w, "%s\t%s\n", tok.Pos, tok); err != nil {
				err = wrap(err)
				return
			}
		}
		if collector.Len() > 0 {
			fmt.Fprint(os.Stderr, diags.Render(source.Name, source.Text, collector.All()))
			err = errRejected
		}
	})
	return
}
