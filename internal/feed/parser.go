// Package feed fetches RSS and Atom feeds and normalizes their items.
package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trendwatch/internal/domain"
)

// Feed is a parsed feed with its items normalized to domain posts.
type Feed struct {
	Title       string
	Description string
	Posts       []domain.FeedPost
}

// Parse reads an RSS or Atom document.
func Parse(r io.Reader) (*Feed, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	out := &Feed{
		Title:       strings.TrimSpace(parsed.Title),
		Description: strings.TrimSpace(parsed.Description),
		Posts:       make([]domain.FeedPost, 0, len(parsed.Items)),
	}
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		out.Posts = append(out.Posts, toPost(item))
	}
	return out, nil
}

func toPost(item *gofeed.Item) domain.FeedPost {
	published := item.Published
	if published == "" {
		published = item.Updated
	}
	return domain.FeedPost{
		ID:          itemID(item),
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Author:      itemAuthor(item),
		PublishedAt: strings.TrimSpace(published),
		Content:     itemContent(item),
	}
}

// itemID prefers the Atom id, then the RSS guid (both land in GUID), then the link.
func itemID(item *gofeed.Item) string {
	if id := strings.TrimSpace(item.GUID); id != "" {
		return id
	}
	return strings.TrimSpace(item.Link)
}

func itemAuthor(item *gofeed.Item) string {
	person := item.Author
	if person == nil && len(item.Authors) > 0 {
		person = item.Authors[0]
	}
	if person == nil {
		if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
			return normalizeAuthor(item.DublinCoreExt.Creator[0])
		}
		return ""
	}
	if person.Name != "" {
		return normalizeAuthor(person.Name)
	}
	return normalizeAuthor(person.Email)
}

// normalizeAuthor turns an RFC 822 "email (Name)" author into "Name".
func normalizeAuthor(raw string) string {
	raw = strings.TrimSpace(raw)
	open := strings.Index(raw, "(")
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return raw
	}
	if !strings.Contains(raw[:open], "@") {
		return raw
	}
	if name := strings.TrimSpace(raw[open+1 : len(raw)-1]); name != "" {
		return name
	}
	return raw
}

// itemContent prefers full content, then content:encoded, then the description.
func itemContent(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	if encoded := extensionValue(item, "content", "encoded"); encoded != "" {
		return encoded
	}
	return item.Description
}

func extensionValue(item *gofeed.Item, ns, name string) string {
	if item.Extensions == nil {
		return ""
	}
	for _, ext := range item.Extensions[ns][name] {
		if ext.Value != "" {
			return ext.Value
		}
	}
	return ""
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 2 Jan 2006 15:04 MST",
	"2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// rfc822Zones are the North American zone names RFC 822 assigns fixed
// offsets to. time.Parse gives unknown abbreviations a zero offset.
var rfc822Zones = map[string]int{
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
}

// ParseTime parses a feed timestamp (RFC 822 for RSS, ISO 8601 for Atom)
// into an instant.
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return fixZone(t).UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

func fixZone(t time.Time) time.Time {
	name, offset := t.Zone()
	want, ok := rfc822Zones[name]
	if !ok || offset == want {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, want))
}
