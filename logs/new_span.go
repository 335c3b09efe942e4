package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span named what under the span of ctx, if any.
type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		parent, _ := ctx.Value(SpanKey).(Span)
		span := Span(rand.Text()[:12])
		ctx = context.WithValue(ctx, SpanKey, span)

		args := []any{"what", what}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
