package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// splitHandler sends records below split to low and the rest to high.
type splitHandler struct {
	low, high slog.Handler
	split     slog.Level
}

func (h *splitHandler) route(level slog.Level) slog.Handler {
	if level >= h.split {
		return h.high
	}
	return h.low
}

func (h *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.route(level).Enabled(ctx, level)
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.route(r.Level).Handle(ctx, r)
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.derive(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (h *splitHandler) derive(f func(slog.Handler) slog.Handler) slog.Handler {
	return &splitHandler{low: f(h.low), high: f(h.high), split: h.split}
}

// setupLogger points the default logger at stdout (below ERROR) and stderr
// and, if logPath is set, also at that file. The returned func restores the
// previous default logger and closes the file.
func setupLogger(logPath string, level slog.Level) (func(), error) {
	return setupLoggerTo(os.Stdout, os.Stderr, logPath, level)
}

func setupLoggerTo(stdout, stderr io.Writer, logPath string, level slog.Level) (func(), error) {
	prev := slog.Default()
	closeFile := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		closeFile = func() { f.Close() }
		stdout = io.MultiWriter(stdout, f)
		stderr = io.MultiWriter(stderr, f)
	}

	opts := &slog.HandlerOptions{Level: level}
	slog.SetDefault(slog.New(&splitHandler{
		low:   slog.NewTextHandler(stdout, opts),
		high:  slog.NewTextHandler(stderr, opts),
		split: slog.LevelError,
	}))

	return func() {
		slog.SetDefault(prev)
		closeFile()
	}, nil
}
