package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/typy/logs"
	"github.com/reusee/typy/modes"
	"github.com/reusee/typy/typyconfigs"
)

func testScope(t *testing.T) Scope {
	dir := t.TempDir()
	return dscope.New(new(Module), modes.ForTest(t)).Fork(
		func() typyconfigs.ConfigDirs {
			return typyconfigs.ConfigDirs{dir}
		},
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	)
}

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.typy", "def f(x: int) -> int:\n    return x\n")
	bad := writeFile(t, "bad.typy", "x = )\n")
	scope := testScope(t)

	buf := new(bytes.Buffer)
	if err := check(scope, buf, []string{good}, "text"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %s", buf.String())
	}

	buf.Reset()
	err := check(scope, buf, []string{good, bad}, "")
	if !errors.Is(err, errRejected) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(buf.String(), "bad.typy:1:5: syntax error") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "x = )\n    ^\n") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestCheckYAML(t *testing.T) {
	good := writeFile(t, "good.typy", "pass\n")
	bad := writeFile(t, "bad.typy", "pass pass\n")
	buf := new(bytes.Buffer)
	err := check(testScope(t), buf, []string{good, bad}, "yaml")
	if !errors.Is(err, errRejected) {
		t.Fatalf("got %v", err)
	}
	out := buf.String()
	if strings.Count(out, "---\n") != 1 ||
		!strings.Contains(out, "accepted: true") ||
		!strings.Contains(out, "accepted: false") ||
		!strings.Contains(out, "kind: syntax") {
		t.Fatalf("got %s", out)
	}
}

func TestCheckBadFormat(t *testing.T) {
	good := writeFile(t, "good.typy", "pass\n")
	err := check(testScope(t), new(bytes.Buffer), []string{good}, "json")
	if err == nil || errors.Is(err, errRejected) {
		t.Fatalf("got %v", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	err := check(testScope(t), new(bytes.Buffer), []string{filepath.Join(t.TempDir(), "none.typy")}, "")
	if err == nil || errors.Is(err, errRejected) {
		t.Fatalf("got %v", err)
	}
}

func TestTree(t *testing.T) {
	path := writeFile(t, "a.typy", "x = f(1)[0]\n")
	buf := new(bytes.Buffer)
	if err := printTree(testScope(t), buf, path); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(program (= x (index (call f 1) 0)))\n" {
		t.Fatalf("got %s", got)
	}
}

func TestTokens(t *testing.T) {
	path := writeFile(t, "a.typy", "if x:\n  pass\n")
	buf := new(bytes.Buffer)
	if err := printTokens(testScope(t), buf, path); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// if x : NEWLINE INDENT pass NEWLINE DEDENT EOF
	if len(lines) != 9 {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "1:1\t") {
		t.Fatalf("got %s", lines[0])
	}
}

func TestGrammar(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := printGrammar(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Program → DefList StatementList EOF") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestEBNF(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := printEBNF(buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "Program = ") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestQuery(t *testing.T) {
	path := writeFile(t, "a.typy", "x = 1\n")
	buf := new(bytes.Buffer)
	if err := query(testScope(t), buf, path, `tree["Body"][0]["node"]`); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "\"AssignStmt\"\n" {
		t.Fatalf("got %s", got)
	}

	path = writeFile(t, "b.typy", "x = \ny = )\n")
	buf.Reset()
	if err := query(testScope(t), buf, path, `(accepted, tree, len(diagnostics))`); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(False, None, 2)\n" {
		t.Fatalf("got %s", got)
	}
}

func TestREPLBuffer(t *testing.T) {
	var buf replBuffer
	if src, ok := buf.feed("x = 1"); !ok || src != "x = 1\n" {
		t.Fatalf("got %q", src)
	}
	if _, ok := buf.feed(""); ok {
		t.Fatal("should wait")
	}
	for _, line := range []string{"if x:", "    pass"} {
		if _, ok := buf.feed(line); ok {
			t.Fatal("should wait")
		}
	}
	if !buf.pending() {
		t.Fatal("should be pending")
	}
	if src, ok := buf.feed(""); !ok || src != "if x:\n    pass\n" {
		t.Fatalf("got %q", src)
	}
	if buf.pending() {
		t.Fatal("should not be pending")
	}
}

func TestRun(t *testing.T) {
	err := run(testScope(t), func(Scope) error {
		return errRejected
	})
	if !errors.Is(err, errRejected) {
		t.Fatalf("got %v", err)
	}
}
