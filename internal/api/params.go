package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"trendwatch/internal/domain"
)

const (
	defaultMentionLimit = 50
	maxMentionLimit     = 200
)

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, domain.NewValidationError(name, "must be a YYYY-MM-DD date")
	}
	return t, nil
}

func queryRange(c *gin.Context) (domain.DateRange, error) {
	from, err := queryDate(c, "from")
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: from, To: to}, nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

func querySource(c *gin.Context) (domain.Source, error) {
	s := domain.Source(c.Query("source"))
	if s != "" && !s.Valid() {
		return "", domain.NewValidationError("source", "must be reddit, x or feed")
	}
	return s, nil
}

// mentionFilter reads list filters. The to date is inclusive, so the store
// receives the start of the following day.
func mentionFilter(c *gin.Context) (domain.MentionFilter, error) {
	var f domain.MentionFilter
	var err error

	f.KeywordID = c.Query("keywordId")
	if f.Source, err = querySource(c); err != nil {
		return f, err
	}

	r, err := queryRange(c)
	if err != nil {
		return f, err
	}
	if !r.From.IsZero() {
		f.From = &r.From
	}
	if !r.To.IsZero() {
		end := r.To.AddDate(0, 0, 1)
		f.To = &end
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		return f, domain.NewValidationError("from", "must not be after to")
	}

	if f.Limit, err = queryInt(c, "limit", defaultMentionLimit); err != nil {
		return f, err
	}
	if f.Limit == 0 {
		f.Limit = defaultMentionLimit
	}
	if f.Limit > maxMentionLimit {
		f.Limit = maxMentionLimit
	}
	if f.Offset, err = queryInt(c, "offset", 0); err != nil {
		return f, err
	}
	return f, nil
}
