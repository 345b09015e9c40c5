package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trendwatch/internal/domain"
	"trendwatch/internal/service/mocks"
)

func TestCheckpointStore_GetMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKV(ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, "checkpoint:feed:abc").Return("", false, nil)

	cp, err := NewCheckpointStore(kv).Get(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestCheckpointStore_SaveThenGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKV(ctrl)
	ctx := context.Background()
	store := NewCheckpointStore(kv)

	var stored string
	kv.EXPECT().Set(ctx, "checkpoint:feed:abc", gomock.Any(), time.Duration(0)).DoAndReturn(
		func(_ context.Context, _ string, value string, _ time.Duration) error {
			stored = value
			return nil
		},
	)
	kv.EXPECT().Get(ctx, "checkpoint:feed:abc").DoAndReturn(
		func(context.Context, string) (string, bool, error) {
			return stored, true, nil
		},
	)

	want := domain.Checkpoint{
		LastPublishedAt: "Mon, 19 Jan 2026 10:00:00 +0000",
		LastFetchedAt:   "2026-01-19T10:05:00Z",
	}
	require.NoError(t, store.Save(ctx, "abc", want))
	assert.Contains(t, stored, `"lastPublishedAt"`)

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestCheckpointStore_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKV(ctrl)
	ctx := context.Background()
	store := NewCheckpointStore(kv)

	kv.EXPECT().Get(ctx, "checkpoint:feed:a").Return("", false, errors.New("connection refused"))
	_, err := store.Get(ctx, "a")
	assert.ErrorContains(t, err, "get checkpoint")

	kv.EXPECT().Get(ctx, "checkpoint:feed:b").Return("{not json", true, nil)
	_, err = store.Get(ctx, "b")
	assert.ErrorContains(t, err, "decode checkpoint")
}
