package diags

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// locale independent
var widths = runewidth.NewCondition()

// Render formats diagnostics with the offending source line and a caret.
func Render(name string, source string, list []Diagnostic) string {
	lines := strings.Split(source, "\n")
	var sb strings.Builder
	for _, d := range list {
		if name != "" {
			sb.WriteString(fmt.Sprintf("%s:%d:%d: %s: %s\n", name, d.Pos.Line, d.Pos.Column, d.Kind, d.Message))
		} else {
			sb.WriteString(fmt.Sprintf("%d:%d: %s: %s\n", d.Pos.Line, d.Pos.Column, d.Kind, d.Message))
		}

		idx := d.Pos.Line - 1
		if idx < 0 || idx >= len(lines) {
			continue
		}
		line := strings.TrimRight(lines[idx], "\r")
		sb.WriteString(line)
		sb.WriteString("\n")

		col := d.Pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", widths.RuneWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}
	return sb.String()
}
