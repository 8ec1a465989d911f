package models

import (
	"crypto/sha1"
	"encoding/hex"
	"time"
)

// Article is an immutable news item produced by a provider fetch.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary,omitempty"`
	Tickers     []string  `json:"tickers,omitempty"`
	Sentiment   *float64  `json:"sentiment,omitempty"`
}

// ArticleID derives the stable content hash for an article. The same
// url+publishedAt always yields the same id, so re-fetching an item is
// idempotent.
func ArticleID(url string, publishedAt time.Time) string {
	sum := sha1.Sum([]byte(url + "|" + publishedAt.UTC().Format(time.RFC3339)))
	return hex.EncodeToString(sum[:])
}

const (
	// MinQueryLimit and MaxQueryLimit bound NewsQuery.Limit.
	MinQueryLimit = 1
	MaxQueryLimit = 500
)

// NewsQuery describes an article lookup: optional free-text search, optional
// ticker symbols, and a bounded result limit.
type NewsQuery struct {
	Search  string
	Tickers []string
	Limit   int
}

// ClampedLimit returns the limit bounded to [MinQueryLimit, MaxQueryLimit].
func (q *NewsQuery) ClampedLimit() int {
	if q.Limit < MinQueryLimit {
		return MinQueryLimit
	}
	if q.Limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return q.Limit
}
