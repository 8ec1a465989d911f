package news

import (
	"context"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"trendcheck/internal/domain/models"
)

// defaultUserAgent identifies feed requests. SEC EDGAR rejects requests
// without a descriptive agent string.
const defaultUserAgent = "trendcheck/1.0 (news aggregation; contact: ops@trendcheck.io)"

// feedFetcher wraps a gofeed parser shared by the RSS/Atom providers.
type feedFetcher struct {
	parser *gofeed.Parser
}

func newFeedFetcher() *feedFetcher {
	p := gofeed.NewParser()
	p.UserAgent = defaultUserAgent
	return &feedFetcher{parser: p}
}

func (f *feedFetcher) fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	return f.parser.ParseURLWithContext(url, ctx)
}

// itemTime picks the item timestamp: published, then updated, then now.
func itemTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Now()
}

// itemToArticle maps a feed item to an article under the given source name.
func itemToArticle(item *gofeed.Item, source string) *models.Article {
	publishedAt := itemTime(item)
	return &models.Article{
		ID:          models.ArticleID(item.Link, publishedAt),
		Title:       strings.TrimSpace(item.Title),
		URL:         item.Link,
		Source:      source,
		PublishedAt: publishedAt,
		Summary:     strings.TrimSpace(item.Description),
	}
}

// titleMatches reports whether a title mentions one of the tickers or the
// search phrase. With no filters every title matches.
func titleMatches(title string, query *models.NewsQuery) bool {
	if query == nil || (len(query.Tickers) == 0 && strings.TrimSpace(query.Search) == "") {
		return true
	}
	lower := strings.ToLower(title)
	for _, t := range query.Tickers {
		if t != "" && strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	if s := strings.TrimSpace(query.Search); s != "" && strings.Contains(lower, strings.ToLower(s)) {
		return true
	}
	return false
}

// queryTickers normalizes the queried ticker set for tagging fetched
// articles. Every article a source matched for the query carries the full
// set, so cache lookups by ticker find it even when the title names the
// company instead of the symbol.
func queryTickers(query *models.NewsQuery) []string {
	if query == nil || len(query.Tickers) == 0 {
		return nil
	}
	out := make([]string, 0, len(query.Tickers))
	for _, t := range query.Tickers {
		if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// floorInterval enforces a provider's minimum cadence on a configured one.
func floorInterval(configured, floor time.Duration) time.Duration {
	if configured < floor {
		return floor
	}
	return configured
}
