package main

import (
	"io"
	"os"

	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/grammars"
)

func init() {
	cmds.Define("grammar", cmds.Func(func() {
		setAction(func(Scope) error {
			return printGrammar(os.Stdout)
		})
	}).Desc("print the productions with FIRST and FOLLOW sets"))
}

func printGrammar(w io.Writer) error {
	g := grammars.Default()
	if err := g.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, g.Format()); err != nil {
		return wrap(err)
	}
	return nil
}

func init() {
	cmds.Define("ebnf", cmds.Func(func() {
		setAction(func(Scope) error {
			return printEBNF(os.Stdout)
		})
	}).Desc("print the grammar in EBNF"))
}

func printEBNF(w io.Writer) error {
	g := grammars.Default()
	if err := g.VerifyEBNF(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, g.EBNF()); err != nil {
		return wrap(err)
	}
	return nil
}
