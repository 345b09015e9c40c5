package domain

import "time"

type Source string

const (
	SourceReddit Source = "reddit"
	SourceX      Source = "x"
	SourceFeed   Source = "feed"
)

func (s Source) Valid() bool {
	switch s {
	case SourceReddit, SourceX, SourceFeed:
		return true
	}
	return false
}

// Mention is an ingested post that matched at least one active keyword.
// (Source, SourceID) is unique.
type Mention struct {
	ID              string    `json:"id" db:"id"`
	Source          Source    `json:"source" db:"source"`
	SourceID        string    `json:"sourceId" db:"source_id"`
	Title           *string   `json:"title,omitempty" db:"title"`
	Content         string    `json:"content" db:"content"`
	URL             string    `json:"url" db:"url"`
	Author          *string   `json:"author,omitempty" db:"author"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	FetchedAt       time.Time `json:"fetchedAt" db:"fetched_at"`
	MatchedKeywords []string  `json:"matchedKeywords" db:"-"`
}

type MentionFilter struct {
	KeywordID string
	Source    Source
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

type MentionPage struct {
	Mentions []Mention `json:"mentions"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
}
