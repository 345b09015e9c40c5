package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunsImmediatelyAndOnTicks(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := JobFunc(func(context.Context) error {
		if runs.Add(1) == 3 {
			cancel()
		}
		return nil
	})

	err := NewScheduler("test", job, 5*time.Millisecond, time.Second, testLogger()).Start(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestScheduler_FailureDoesNotStopLoop(t *testing.T) {
	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := JobFunc(func(context.Context) error {
		if runs.Add(1) >= 2 {
			cancel()
		}
		return errors.New("boom")
	})

	err := NewScheduler("test", job, 5*time.Millisecond, time.Second, testLogger()).Start(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}

func TestScheduler_RunIsBoundedByTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var sawDeadline atomic.Bool

	job := JobFunc(func(runCtx context.Context) error {
		_, ok := runCtx.Deadline()
		sawDeadline.Store(ok)
		<-runCtx.Done()
		cancel()
		return runCtx.Err()
	})

	_ = NewScheduler("test", job, time.Hour, 10*time.Millisecond, testLogger()).Start(ctx)

	assert.True(t, sawDeadline.Load())
}
