package parsers

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/reusee/typy/nodes"
	"github.com/reusee/typy/tokens"
)

func TestParseAll(t *testing.T) {
	var sources []Source
	for i := range 64 {
		text := fmt.Sprintf("x = %d\n", i)
		if i%7 == 0 {
			text = "x = \n"
		}
		sources = append(sources, Source{
			Name: fmt.Sprintf("%d.typy", i),
			Text: text,
		})
	}
	results, err := ParseAll(context.Background(), sources, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(sources) {
		t.Fatalf("got %d", len(results))
	}
	for i, result := range results {
		if result.Name != sources[i].Name {
			t.Fatalf("got %s", result.Name)
		}
		if result.Accepted() == (i%7 == 0) {
			t.Fatalf("%s: got %v", result.Name, result.Diagnostics)
		}
	}
}

func TestParseAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancelCause(context.Background())
	cause := errors.New("stop")
	cancel(cause)
	results, err := ParseAll(ctx, []Source{
		{Name: "a", Text: "pass\n"},
		{Name: "b", Text: "pass\n"},
	}, 1)
	if !errors.Is(err, cause) {
		t.Fatalf("got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d", len(results))
	}
}

var junkWords = []string{
	"def", "if", "elif", "else", "while", "for", "in", "return", "pass",
	"and", "or", "not", "is", "None", "True", "False", "int", "str",
	"x", "f", "1", `"s"`, "'", "(", ")", "[", "]", ",", ":", "->", "=",
	"==", "<", "+", "-", "*", "/", "%", "!", "@", "\n", "\n", "\n",
	"\n    ", "\n  ", "\n\t", "#c\n",
}

// any input terminates with a result, and rejected input always has a
// diagnostic
func TestJunk(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		var sb strings.Builder
		for range r.IntN(40) {
			sb.WriteString(junkWords[r.IntN(len(junkWords))])
			if r.IntN(2) == 0 {
				sb.WriteString(" ")
			}
		}
		src := sb.String()
		result := Parse("junk.typy", src)
		if result.Accepted() != (result.Tree != nil) {
			t.Fatalf("%q: got %v", src, result.Diagnostics)
		}
		for _, diag := range result.Diagnostics {
			if diag.Pos.Line < 1 || diag.Pos.Column < 1 {
				t.Fatalf("%q: got %v", src, diag)
			}
		}
	}
}

// brackets join lines
func TestImplicitLineJoining(t *testing.T) {
	result := Parse("test.typy", "x = (1 +\n  2)\n")
	if !result.Accepted() {
		t.Fatalf("got %v", result.Diagnostics)
	}
	if len(result.Tree.Body) != 1 {
		t.Fatalf("got %v", nodes.Format(result.Tree))
	}
	want := tokens.Pos{Line: 1, Column: 1}
	if got := result.Tree.Body[0].Pos(); got != want {
		t.Fatalf("got %v", got)
	}
}
