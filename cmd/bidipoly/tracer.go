package main

import (
	"log/slog"
	"os"

	"github.com/polylambda/bidipoly/internal/types"
)

func newStderrTracer() types.Tracer {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return types.SlogTracer{Log: slog.New(h)}
}
