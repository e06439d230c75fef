package main

import (
	"context"

	"github.com/popkit-dev/popkit/internal/hookresponse"
)

type writerKey struct{}

// withWriter stashes the response writer in the command context so the
// crash handler and the run function share the write-once guard.
func withWriter(writer *hookresponse.Writer) context.Context {
	return context.WithValue(context.Background(), writerKey{}, writer)
}

func writerFrom(ctx context.Context) *hookresponse.Writer {
	return ctx.Value(writerKey{}).(*hookresponse.Writer)
}
