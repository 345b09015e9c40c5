package service

import (
	"context"
	"encoding/json"
	"fmt"

	"trendwatch/internal/domain"
)

const checkpointKeyPrefix = "checkpoint:feed:"

// CheckpointStore keeps the per-feed "last seen" marker in the KV store.
// Writes are last-write-wins with no expiry.
type CheckpointStore struct {
	kv KV
}

func NewCheckpointStore(kv KV) *CheckpointStore {
	return &CheckpointStore{kv: kv}
}

func CheckpointKey(feedID string) string {
	return checkpointKeyPrefix + feedID
}

// Get returns nil when the feed has never been checkpointed.
func (s *CheckpointStore) Get(ctx context.Context, feedID string) (*domain.Checkpoint, error) {
	raw, found, err := s.kv.Get(ctx, CheckpointKey(feedID))
	if err != nil {
		return nil, fmt.Errorf("get checkpoint: %w", err)
	}
	if !found {
		return nil, nil
	}

	var cp domain.Checkpoint
	if err := json.Unmarshal([]byte(raw), &cp); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}
	return &cp, nil
}

func (s *CheckpointStore) Save(ctx context.Context, feedID string, cp domain.Checkpoint) error {
	body, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	if err := s.kv.Set(ctx, CheckpointKey(feedID), string(body), 0); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}
