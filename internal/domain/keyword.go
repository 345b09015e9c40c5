package domain

import (
	"strings"
	"time"
)

type KeywordStatus string

const (
	KeywordActive   KeywordStatus = "active"
	KeywordArchived KeywordStatus = "archived"
)

func (s KeywordStatus) Valid() bool {
	return s == KeywordActive || s == KeywordArchived
}

type Keyword struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Aliases   []string      `json:"aliases"`
	Tags      []string      `json:"tags"`
	Status    KeywordStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// KeywordInput is the writable part of a keyword.
type KeywordInput struct {
	Name    string        `json:"name"`
	Aliases []string      `json:"aliases"`
	Tags    []string      `json:"tags"`
	Status  KeywordStatus `json:"status"`
}

// Normalize trims the name and drops blank aliases and tags.
func (in KeywordInput) Normalize() (KeywordInput, error) {
	out := KeywordInput{
		Name:    strings.TrimSpace(in.Name),
		Aliases: compact(in.Aliases),
		Tags:    compact(in.Tags),
		Status:  in.Status,
	}
	if out.Name == "" {
		return out, NewValidationError("name", "must not be empty")
	}
	if out.Status == "" {
		out.Status = KeywordActive
	}
	if !out.Status.Valid() {
		return out, NewValidationError("status", "must be active or archived")
	}
	return out, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
