// Package matcher finds which keywords a piece of text mentions.
package matcher

import (
	"strings"

	"trendwatch/internal/domain"
)

// Match returns the ids of keywords whose name or any alias occurs in text.
// Comparison is a case-insensitive substring test with no word boundaries.
func Match(text string, keywords []domain.Keyword) []string {
	normalized := normalize(text)
	matched := make([]string, 0)
	if normalized == "" {
		return matched
	}

	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw.ID]; ok {
			continue
		}
		if matchesAny(normalized, kw) {
			seen[kw.ID] = struct{}{}
			matched = append(matched, kw.ID)
		}
	}
	return matched
}

func matchesAny(text string, kw domain.Keyword) bool {
	if contains(text, kw.Name) {
		return true
	}
	for _, alias := range kw.Aliases {
		if contains(text, alias) {
			return true
		}
	}
	return false
}

func contains(text, term string) bool {
	term = normalize(term)
	return term != "" && strings.Contains(text, term)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
