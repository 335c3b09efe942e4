package modes

import (
	"fmt"
	"testing"

	"github.com/reusee/dscope"
)

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// enables parser tracing
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Module provides the Mode of a scope, and the *testing.T of a test scope.
type Module struct {
	dscope.Module
	mode Mode
	t    *testing.T
}

// ForProduction is used by the command line entry points.
func ForProduction() Module {
	return Module{
		mode: ModeProduction,
	}
}

func ForTest(t *testing.T) Module {
	return Module{
		mode: ModeDevelopment,
		t:    t,
	}
}

func (m Module) Mode() Mode {
	return m.mode
}

// T is nil outside tests.
func (m Module) T() *testing.T {
	return m.t
}
