package sentiment

import (
	"context"
	"fmt"
	"strings"
	"time"

	apphttp "trendcheck/pkg/http"
)

// Config holds the remote text-analytics endpoint settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to a hosted text-analytics API exposing entity recognition,
// document sentiment and translation.
type Client struct {
	cfg  Config
	http *apphttp.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: apphttp.NewClient(apphttp.WithTimeout(cfg.Timeout)),
	}
}

// Entity is a recognized span with its category (Organization, Person, ...).
type Entity struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// SentenceSentiment carries per-sentence confidence scores.
type SentenceSentiment struct {
	Text     string  `json:"text"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// DocumentSentiment is the whole-document verdict plus its sentences.
type DocumentSentiment struct {
	Sentiment string              `json:"sentiment"`
	Positive  float64             `json:"positive"`
	Negative  float64             `json:"negative"`
	Neutral   float64             `json:"neutral"`
	Sentences []SentenceSentiment `json:"sentences"`
}

type textRequest struct {
	Text string `json:"text"`
	To   string `json:"to,omitempty"`
}

// Entities runs named-entity recognition on text.
func (c *Client) Entities(ctx context.Context, text string) ([]Entity, error) {
	var resp struct {
		Entities []Entity `json:"entities"`
	}
	if err := c.post(ctx, "/entities", textRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}
	return resp.Entities, nil
}

// Sentiment scores text sentiment at document and sentence level.
func (c *Client) Sentiment(ctx context.Context, text string) (*DocumentSentiment, error) {
	var resp DocumentSentiment
	if err := c.post(ctx, "/sentiment", textRequest{Text: text}, &resp); err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}
	return &resp, nil
}

// Translate renders text into the target language.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	var resp struct {
		Translation string `json:"translation"`
	}
	if err := c.post(ctx, "/translate", textRequest{Text: text, To: targetLang}, &resp); err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return resp.Translation, nil
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	return c.http.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodPost,
		URL:    strings.TrimRight(c.cfg.BaseURL, "/") + path,
		Headers: map[string]string{
			"X-Api-Key": c.cfg.APIKey,
		},
		Body: body,
	}, dest)
}
