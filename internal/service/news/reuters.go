package news

import (
	"context"
	"time"

	"trendcheck/internal/domain/models"
	"trendcheck/pkg/logger"
)

const reutersFloor = 3 * time.Minute

// ReutersConfig controls the Reuters feed provider.
type ReutersConfig struct {
	Enabled      bool
	PollInterval time.Duration
	Feeds        []string
}

// ReutersProvider reads a fixed list of Reuters RSS feeds and keeps items
// whose title mentions a queried ticker or the search phrase.
type ReutersProvider struct {
	cfg     ReutersConfig
	fetcher *feedFetcher
	log     *logger.Logger
}

func NewReutersProvider(cfg ReutersConfig, log *logger.Logger) *ReutersProvider {
	return &ReutersProvider{cfg: cfg, fetcher: newFeedFetcher(), log: log}
}

func (p *ReutersProvider) Name() string { return "reuters" }

func (p *ReutersProvider) MinPollInterval() time.Duration {
	return floorInterval(p.cfg.PollInterval, reutersFloor)
}

func (p *ReutersProvider) Fetch(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error) {
	if !p.cfg.Enabled {
		return nil, nil
	}

	tickers := queryTickers(query)
	var articles []*models.Article
	for _, feedURL := range p.cfg.Feeds {
		feed, err := p.fetcher.fetch(ctx, feedURL)
		if err != nil {
			// one broken feed should not sink the others
			p.log.Warn("reuters feed failed",
				logger.String("feed", feedURL),
				logger.Error(err))
			continue
		}
		for _, item := range feed.Items {
			if !titleMatches(item.Title, query) {
				continue
			}
			a := itemToArticle(item, "Reuters")
			a.Tickers = tickers
			articles = append(articles, a)
		}
	}
	return articles, nil
}
