package core

import (
	"context"
	"io"
	"os"
)

// executorOptions are the per-invocation settings a catalog command reads from its context.
type executorOptions struct {
	suppressHeader bool
	advisories     io.Writer
}

type optionsKey struct{}

func optionsFrom(ctx context.Context) executorOptions {
	opts, _ := ctx.Value(optionsKey{}).(executorOptions)
	return opts
}

// WithSuppressHeader hides the "Catalog: ..." line printed before text output.
// The CLI sets it when stdout is not a terminal.
func WithSuppressHeader(ctx context.Context) context.Context {
	opts := optionsFrom(ctx)
	opts.suppressHeader = true
	return context.WithValue(ctx, optionsKey{}, opts)
}

// WithAdvisoryWriter sends the selection advisories of compare (unknown ids,
// full selection) to w instead of stderr.
func WithAdvisoryWriter(ctx context.Context, w io.Writer) context.Context {
	opts := optionsFrom(ctx)
	opts.advisories = w
	return context.WithValue(ctx, optionsKey{}, opts)
}

func shouldSuppressHeader(ctx context.Context) bool {
	return optionsFrom(ctx).suppressHeader
}

func advisoryWriter(ctx context.Context) io.Writer {
	if w := optionsFrom(ctx).advisories; w != nil {
		return w
	}
	return os.Stderr
}
