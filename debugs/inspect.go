package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/typy/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func globalsToStarlark(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = ToStarlark(value)
	}
	return ret
}

// Inspect starts a starlark REPL on stdin with globals bound.
type Inspect func(ctx context.Context, what string, globals map[string]any)

func (Module) Inspect(
	logger logs.Logger,
) Inspect {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "inspect: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "inspect end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "inspect",
		}
		repl.REPLOptions(fileOptions, thread, globalsToStarlark(globals))
	}
}

// Eval evaluates a starlark expression with globals bound.
func Eval(expr string, globals map[string]any) (starlark.Value, error) {
	thread := &starlark.Thread{
		Name: "eval",
	}
	return starlark.EvalOptions(fileOptions, thread, "<expr>", expr, globalsToStarlark(globals))
}
