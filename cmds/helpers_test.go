package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	width := Var[int]("-TestVar-width")
	format := Var[string]("-TestVar-format")
	GlobalExecutor.MustExecute([]string{
		"-TestVar-width", "4",
		"-TestVar-format", "yaml",
	})
	if *width != 4 || *format != "yaml" {
		t.Fatalf("got %v %v", *width, *format)
	}
	GlobalExecutor.MustExecute([]string{"-TestVar-width."})
	if *width != 0 {
		t.Fatalf("got %v", *width)
	}
}

func TestSwitch(t *testing.T) {
	trace := Switch("-TestSwitch")
	GlobalExecutor.MustExecute([]string{"-TestSwitch"})
	if !*trace {
		t.Fatal("should be set")
	}
	GlobalExecutor.MustExecute([]string{"!-TestSwitch"})
	if *trace {
		t.Fatal("should be cleared")
	}
}

func TestCollect(t *testing.T) {
	paths := Collect[string]("-TestCollect")
	GlobalExecutor.MustExecute([]string{
		"-TestCollect", "a.typy",
		"-TestCollect", "b.typy",
	})
	if !slices.Equal(*paths, []string{"a.typy", "b.typy"}) {
		t.Fatalf("got %v", *paths)
	}
	GlobalExecutor.MustExecute([]string{"-TestCollect."})
	if len(*paths) != 0 {
		t.Fatalf("got %v", *paths)
	}
}

func TestTypedVar(t *testing.T) {
	type Format string
	v := Var[Format]("-TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"-TestTypedVar", "text",
	})
	if *v != "text" {
		t.Fatalf("got %v", *v)
	}
}
