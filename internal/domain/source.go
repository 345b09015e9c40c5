package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"
)

type SourceType string

const (
	SourceTypeFeed SourceType = "feed"
	SourceTypeX    SourceType = "x"
)

func (t SourceType) Valid() bool {
	return t == SourceTypeFeed || t == SourceTypeX
}

// MaxConsecutiveFailures is the failure count at which a source is disabled.
const MaxConsecutiveFailures = 10

type SourceSettings struct {
	URL             string  `json:"url"`
	Name            string  `json:"name"`
	CustomUserAgent *string `json:"customUserAgent,omitempty"`
	FeedTitle       *string `json:"feedTitle,omitempty"`
	FeedDescription *string `json:"feedDescription,omitempty"`
}

// Value stores settings as a jsonb column.
func (s SourceSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SourceSettings) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*s = SourceSettings{}
		return nil
	default:
		return errors.New("source settings: unsupported column type")
	}
	return json.Unmarshal(data, s)
}

type SourceConfig struct {
	ID                  string         `json:"id" db:"id"`
	Type                SourceType     `json:"type" db:"type"`
	Config              SourceSettings `json:"config" db:"config"`
	Enabled             bool           `json:"enabled" db:"enabled"`
	CreatedAt           time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time      `json:"updatedAt" db:"updated_at"`
	LastFetchAt         *time.Time     `json:"lastFetchAt,omitempty" db:"last_fetch_at"`
	LastSuccessAt       *time.Time     `json:"lastSuccessAt,omitempty" db:"last_success_at"`
	LastErrorAt         *time.Time     `json:"lastErrorAt,omitempty" db:"last_error_at"`
	LastErrorMessage    *string        `json:"lastErrorMessage,omitempty" db:"last_error_message"`
	ConsecutiveFailures int            `json:"consecutiveFailures" db:"consecutive_failures"`
	DeletedAt           *time.Time     `json:"deletedAt,omitempty" db:"deleted_at"`
}

func (c *SourceConfig) UserAgent() string {
	if c.Config.CustomUserAgent == nil {
		return ""
	}
	return *c.Config.CustomUserAgent
}

// RecordSuccess resets the failure streak after a successful fetch.
func (c *SourceConfig) RecordSuccess(at time.Time) {
	c.LastFetchAt = &at
	c.LastSuccessAt = &at
	c.ConsecutiveFailures = 0
	c.LastErrorAt = nil
	c.LastErrorMessage = nil
	c.UpdatedAt = at
}

// RecordFailure extends the failure streak and disables the source once the
// streak reaches MaxConsecutiveFailures.
func (c *SourceConfig) RecordFailure(at time.Time, message string) {
	c.LastFetchAt = &at
	c.LastErrorAt = &at
	c.LastErrorMessage = &message
	c.ConsecutiveFailures++
	if c.ConsecutiveFailures >= MaxConsecutiveFailures {
		c.Enabled = false
	}
	c.UpdatedAt = at
}

// SourceInput is the writable part of a source config.
type SourceInput struct {
	Type    SourceType     `json:"type"`
	Config  SourceSettings `json:"config"`
	Enabled *bool          `json:"enabled"`
}

func (in SourceInput) Normalize() (SourceInput, error) {
	out := in
	if out.Type == "" {
		out.Type = SourceTypeFeed
	}
	if !out.Type.Valid() {
		return out, NewValidationError("type", "must be feed or x")
	}
	out.Config.Name = strings.TrimSpace(out.Config.Name)
	out.Config.URL = strings.TrimSpace(out.Config.URL)
	if out.Config.Name == "" {
		return out, NewValidationError("config.name", "must not be empty")
	}
	if err := ValidateFeedURL(out.Config.URL); err != nil {
		return out, err
	}
	if ua := out.Config.CustomUserAgent; ua != nil {
		trimmed := strings.TrimSpace(*ua)
		if trimmed == "" {
			out.Config.CustomUserAgent = nil
		} else {
			out.Config.CustomUserAgent = &trimmed
		}
	}
	return out, nil
}

func ValidateFeedURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return NewValidationError("config.url", "must be an absolute http(s) URL")
	}
	return nil
}

// FeedValidation is the outcome of probing a feed URL without saving it.
type FeedValidation struct {
	Valid           bool   `json:"valid"`
	FeedTitle       string `json:"feedTitle,omitempty"`
	FeedDescription string `json:"feedDescription,omitempty"`
	ItemCount       int    `json:"itemCount"`
	Error           string `json:"error,omitempty"`
}
