package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader(testPaths, testSchema)

	if level := First(loader, "log_level", "info"); level != "debug" {
		t.Fatalf("got %v", level)
	}
	if width := First(loader, "tab_width", 8); width != 2 {
		t.Fatalf("got %v", width)
	}
	if trace := First(loader, "trace", false); trace {
		t.Fatal("should default")
	}

	func() {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		First(loader, "log_level", 0)
	}()
}
