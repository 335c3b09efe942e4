package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/logs"
	"github.com/reusee/typy/parsers"
)

var outputFormat = cmds.Var[string]("-format", "output format of check: text or yaml")

func init() {
	cmds.Define("check", cmds.Func(func(paths ...string) {
		setAction(func(scope Scope) error {
			return check(scope, os.Stdout, paths, *outputFormat)
		})
	}).Args("FILE...").Desc("parse files, or stdin, and report diagnostics; end the file list with --"))
}

func check(scope Scope, w io.Writer, paths []string, format string) (err error) {
	sources, err := readSources(paths)
	if err != nil {
		return err
	}
	scope.Call(func(
		parseSources parsers.ParseSources,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		ctx, _ := newSpan(context.Background(), "check")
		var results []parsers.Result
		results, err = parseSources(ctx, sources)
		if err != nil {
			err = logs.WrapSpan(ctx, err)
			return
		}
		rejected := 0
		for _, result := range results {
			if !result.Accepted() {
				rejected++
			}
		}
		logger.InfoContext(ctx, "checked",
			"files", len(results),
			"rejected", rejected,
		)
		if err = writeResults(w, sources, results, format); err != nil {
			return
		}
		if rejected > 0 {
			err = errRejected
		}
	})
	return
}

func writeResults(w io.Writer, sources []parsers.Source, results []parsers.Result, format string) error {
	switch format {

	case "", "text":
		for i, result := range results {
			if result.Accepted() {
				continue
			}
			if _, err := io.WriteString(w, diags.Render(result.Name, sources[i].Text, result.Diagnostics)); err != nil {
				return wrap(err)
			}
		}

	case "yaml":
		for i, result := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return wrap(err)
				}
			}
			content, err := result.Report().YAML()
			if err != nil {
				return wrap(err)
			}
			if _, err := w.Write(content); err != nil {
				return wrap(err)
			}
		}

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
