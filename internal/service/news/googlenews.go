package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"trendcheck/internal/domain/models"
	"trendcheck/pkg/logger"
)

const googleNewsFloor = time.Minute

// GoogleNewsConfig controls the Google News RSS search provider.
type GoogleNewsConfig struct {
	Enabled       bool
	PollInterval  time.Duration
	Language      string
	Country       string
	PerQueryItems int
	BaseURL       string // override for tests
}

// GoogleNewsProvider searches Google News RSS with an OR-expression built
// from the queried tickers.
type GoogleNewsProvider struct {
	cfg     GoogleNewsConfig
	fetcher *feedFetcher
	log     *logger.Logger
}

func NewGoogleNewsProvider(cfg GoogleNewsConfig, log *logger.Logger) *GoogleNewsProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://news.google.com/rss/search"
	}
	if cfg.PerQueryItems <= 0 {
		cfg.PerQueryItems = 25
	}
	return &GoogleNewsProvider{cfg: cfg, fetcher: newFeedFetcher(), log: log}
}

func (p *GoogleNewsProvider) Name() string { return "google_news" }

func (p *GoogleNewsProvider) MinPollInterval() time.Duration {
	return floorInterval(p.cfg.PollInterval, googleNewsFloor)
}

func (p *GoogleNewsProvider) Fetch(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error) {
	if !p.cfg.Enabled {
		return nil, nil
	}

	expr := p.searchExpression(query)
	lang := p.cfg.Language
	feedURL := fmt.Sprintf("%s?q=%s&hl=%s&gl=%s&ceid=%s",
		p.cfg.BaseURL,
		url.QueryEscape(expr),
		url.QueryEscape(lang),
		url.QueryEscape(p.cfg.Country),
		url.QueryEscape(p.cfg.Country+":"+primaryLang(lang)),
	)

	feed, err := p.fetcher.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	items := feed.Items
	if len(items) > p.cfg.PerQueryItems {
		items = items[:p.cfg.PerQueryItems]
	}

	tickers := queryTickers(query)
	articles := make([]*models.Article, 0, len(items))
	for _, item := range items {
		a := itemToArticle(item, "Google News")
		a.Tickers = tickers
		articles = append(articles, a)
	}
	p.log.Debug("google news fetched", logger.Int("count", len(articles)))
	return articles, nil
}

// searchExpression builds `("T" OR $T) OR ("U" OR $U)` from the queried
// tickers, appends the free-text search, and falls back to a generic
// "stocks" query so an empty watchlist still pulls market news.
func (p *GoogleNewsProvider) searchExpression(query *models.NewsQuery) string {
	var parts []string
	if query != nil {
		var syms []string
		for _, t := range query.Tickers {
			t = strings.ToUpper(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			syms = append(syms, fmt.Sprintf("(%q OR $%s)", t, t))
		}
		if len(syms) > 0 {
			parts = append(parts, strings.Join(syms, " OR "))
		}
		if s := strings.TrimSpace(query.Search); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "stocks"
	}
	return strings.Join(parts, " ")
}

func primaryLang(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
