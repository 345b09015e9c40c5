package service

import (
	"context"
	"log/slog"
	"os"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func runInline(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string {
	return &s
}
