package parsers

import (
	"context"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/typy/logs"
	"github.com/reusee/typy/typyconfigs"
)

type Module struct {
	dscope.Module
	Configs typyconfigs.Module
}

// Options are the parser options from configuration.
type Options []Option

func (Module) Options(
	tabWidth typyconfigs.TabWidth,
	maxBytes typyconfigs.MaxSourceBytes,
) Options {
	return Options{
		WithTabWidth(int(tabWidth)),
		WithMaxSourceBytes(int(maxBytes)),
	}
}

// ParseSource parses one source in a new span.
type ParseSource func(ctx context.Context, source Source) Result

func (Module) ParseSource(
	logger logs.Logger,
	newSpan logs.NewSpan,
	options Options,
	trace typyconfigs.Trace,
) ParseSource {
	return func(ctx context.Context, source Source) Result {
		ctx, span := newSpan(ctx, source.Name)
		parseOptions := options
		if trace {
			parseOptions = append(parseOptions[:len(parseOptions):len(parseOptions)],
				WithLogger(logger.With("span", string(span))))
		}
		result := Parse(source.Name, source.Text, parseOptions...)
		logger.DebugContext(ctx, "parse",
			"name", source.Name,
			"bytes", len(source.Text),
			"accepted", result.Accepted(),
			"diagnostics", len(result.Diagnostics),
		)
		return result
	}
}

// ParseSources parses sources concurrently, one worker per CPU.
type ParseSources func(ctx context.Context, sources []Source) ([]Result, error)

func (Module) ParseSources(
	logger logs.Logger,
	options Options,
	trace typyconfigs.Trace,
) ParseSources {
	return func(ctx context.Context, sources []Source) ([]Result, error) {
		parseOptions := options
		if trace {
			parseOptions = append(parseOptions[:len(parseOptions):len(parseOptions)],
				WithLogger(logger))
		}
		return ParseAll(ctx, sources, runtime.NumCPU(), parseOptions...)
	}
}
