package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/dscope"
	"github.com/reusee/typy/cmds"
	"github.com/reusee/typy/diags"
	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/parsers"
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		setAction(runREPL)
	}).Desc("parse interactively; a blank line ends a block"))
}

func runREPL(scope Scope) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".typy_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      ">>> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return wrap(err)
	}
	defer rl.Close()

	parse := dscope.Get[parsers.ParseSource](scope)

	var buf replBuffer
	for {
		if buf.pending() {
			rl.SetPrompt("... ")
		} else {
			rl.SetPrompt(">>> ")
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.reset()
			continue
		}
		if err != nil { // io.EOF
			break
		}
		src, ok := buf.feed(line)
		if !ok {
			continue
		}
		writeParse(rl.Stdout(), parse(context.Background(), parsers.Source{
			Name: "<repl>",
			Text: src,
		}), src)
	}
	return nil
}

// replBuffer collects lines until a complete unit: a single line that does
// not open a block, or a block closed by a blank line.
type replBuffer struct {
	lines []string
}

func (b *replBuffer) pending() bool {
	return len(b.lines) > 0
}

func (b *replBuffer) reset() {
	b.lines = b.lines[:0]
}

func (b *replBuffer) feed(line string) (string, bool) {
	if !b.pending() {
		if strings.TrimSpace(line) == "" {
			return "", false
		}
		if !strings.HasSuffix(strings.TrimSpace(line), ":") {
			return line + "\n", true
		}
	}
	if b.pending() && strings.TrimSpace(line) == "" {
		src := strings.Join(b.lines, "\n") + "\n"
		b.reset()
		return src, true
	}
	b.lines = append(b.lines, line)
	return "", false
}

func writeParse(w io.Writer, result parsers.Result, src string) {
	if !result.Accepted() {
		fmt.Fprint(w, diags.Render("", src, result.Diagnostics))
		return
	}
	fmt.Fprintln(w, nodes.Format(result.Tree))
}
