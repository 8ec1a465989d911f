package news

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"trendcheck/internal/domain/models"
	apphttp "trendcheck/pkg/http"
	"trendcheck/pkg/util"
)

const (
	fmpFloor          = 2 * time.Minute
	defaultFmpBaseURL = "https://financialmodelingprep.com/api/v3/stock_news"
)

// FmpConfig controls the Financial Modeling Prep stock-news provider.
type FmpConfig struct {
	Enabled      bool
	PollInterval time.Duration
	APIKey       string
	Limit        int
	BaseURL      string // override for tests
}

type fmpItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"publishedDate"`
	Site          string `json:"site"`
	Text          string `json:"text"`
}

// FmpProvider fetches the stock_news JSON endpoint. It is the only provider
// that takes the ticker filter server-side.
type FmpProvider struct {
	cfg    FmpConfig
	client *apphttp.Client
}

func NewFmpProvider(cfg FmpConfig, client *apphttp.Client) *FmpProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultFmpBaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 50
	}
	return &FmpProvider{cfg: cfg, client: client}
}

func (p *FmpProvider) Name() string { return "fmp" }

func (p *FmpProvider) MinPollInterval() time.Duration {
	return floorInterval(p.cfg.PollInterval, fmpFloor)
}

func (p *FmpProvider) Fetch(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error) {
	if !p.cfg.Enabled {
		return nil, nil
	}

	params := map[string][]string{
		"limit":  {strconv.Itoa(p.cfg.Limit)},
		"apikey": {p.cfg.APIKey},
	}
	var tickers []string
	if query != nil && len(query.Tickers) > 0 {
		for _, t := range query.Tickers {
			if t = strings.ToUpper(strings.TrimSpace(t)); t != "" {
				tickers = append(tickers, t)
			}
		}
		if len(tickers) > 0 {
			params["tickers"] = []string{strings.Join(tickers, ",")}
		}
	}

	var items []fmpItem
	err := p.client.SendAndParse(ctx, &apphttp.RequestOptions{
		Method:      apphttp.MethodGet,
		URL:         p.cfg.BaseURL,
		QueryParams: params,
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("fmp fetch: %w", err)
	}

	articles := make([]*models.Article, 0, len(items))
	for _, item := range items {
		publishedAt := util.ParseTimeDefault(item.PublishedDate, time.Now())
		source := item.Site
		if source == "" {
			source = "FMP"
		}
		articles = append(articles, &models.Article{
			ID:          models.ArticleID(item.URL, publishedAt),
			Title:       strings.TrimSpace(item.Title),
			URL:         item.URL,
			Source:      source,
			PublishedAt: publishedAt,
			Summary:     strings.TrimSpace(item.Text),
			Tickers:     tickers,
		})
	}
	return articles, nil
}
