package news

import (
	"context"
	"fmt"
	"time"

	"trendcheck/internal/domain/models"
	"trendcheck/pkg/logger"
)

const (
	secFloor          = 5 * time.Minute
	defaultSecAtomURL = "https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&output=atom"
)

// SecConfig controls the SEC EDGAR filings provider.
type SecConfig struct {
	Enabled      bool
	PollInterval time.Duration
	AtomURL      string
}

// SecProvider reads the EDGAR current-filings Atom feed and keeps entries
// whose title mentions a queried ticker or the search phrase.
type SecProvider struct {
	cfg     SecConfig
	fetcher *feedFetcher
	log     *logger.Logger
}

func NewSecProvider(cfg SecConfig, log *logger.Logger) *SecProvider {
	if cfg.AtomURL == "" {
		cfg.AtomURL = defaultSecAtomURL
	}
	return &SecProvider{cfg: cfg, fetcher: newFeedFetcher(), log: log}
}

func (p *SecProvider) Name() string { return "sec" }

func (p *SecProvider) MinPollInterval() time.Duration {
	return floorInterval(p.cfg.PollInterval, secFloor)
}

func (p *SecProvider) Fetch(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error) {
	if !p.cfg.Enabled {
		return nil, nil
	}

	feed, err := p.fetcher.fetch(ctx, p.cfg.AtomURL)
	if err != nil {
		return nil, fmt.Errorf("sec fetch: %w", err)
	}

	tickers := queryTickers(query)
	var articles []*models.Article
	for _, item := range feed.Items {
		if !titleMatches(item.Title, query) {
			continue
		}
		a := itemToArticle(item, "SEC")
		a.Tickers = tickers
		articles = append(articles, a)
	}
	return articles, nil
}
