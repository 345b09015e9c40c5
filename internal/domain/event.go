package domain

import "time"

// IngestionEvent is the queue payload produced by ingestion and consumed by
// the keyword matcher.
type IngestionEvent struct {
	Source    Source            `json:"source"`
	SourceID  string            `json:"sourceId"`
	Title     *string           `json:"title,omitempty"`
	Content   string            `json:"content"`
	URL       string            `json:"url"`
	Author    *string           `json:"author,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	FetchedAt time.Time         `json:"fetchedAt"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// FeedPost is a feed item normalized across RSS and Atom.
// PublishedAt is kept exactly as the feed wrote it.
type FeedPost struct {
	ID          string
	Title       string
	Link        string
	Author      string
	PublishedAt string
	Content     string
}

// Checkpoint marks the newest item already ingested for a feed.
type Checkpoint struct {
	LastPublishedAt string `json:"lastPublishedAt"`
	LastFetchedAt   string `json:"lastFetchedAt"`
}

type FeedResult struct {
	Events        []IngestionEvent
	NewCheckpoint *Checkpoint
	FeedTitle     string
	FeedDesc      string
}

// ProcessResult describes one source run. Error is set instead of failing.
type ProcessResult struct {
	SourceID    string      `json:"sourceId"`
	SourceName  string      `json:"sourceName"`
	EventsCount int         `json:"eventsCount"`
	Checkpoint  *Checkpoint `json:"checkpoint"`
	Error       string      `json:"error,omitempty"`
}

type ProcessAllResult struct {
	Events  []IngestionEvent
	Results []ProcessResult
}

// BatchStats holds counters for one consumed batch.
type BatchStats struct {
	Received   int
	Matched    int
	Created    int
	Duplicates int
	Skipped    int
}
