package cmds

import (
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("check", Func(func(...string) {}).Args("FILE...").Desc("CHECK"))
	executor.Define("debug", Sub(map[string]*Command{
		"tokens": Func(func(string) {}).Args("FILE").Desc("TOKENS"),
		"grammar": Sub(map[string]*Command{
			"-ebnf": Func(func() {}).Desc("EBNF"),
		}).Desc("GRAMMAR"),
	}).Desc("DEBUG"))

	buf := new(strings.Builder)
	executor.WriteUsage(buf)
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %q", out)
	}
	for i, c := range [][2]string{
		{"-h (help, -help, --help)", "print this usage"},
		{"check FILE...", "CHECK"},
		{"debug", "DEBUG"},
		{"  grammar", "GRAMMAR"},
		{"    -ebnf", "EBNF"},
		{"  tokens FILE", "TOKENS"},
	} {
		if !strings.HasPrefix(lines[i], c[0]) || !strings.HasSuffix(lines[i], c[1]) {
			t.Fatalf("got %q", lines[i])
		}
	}
}
