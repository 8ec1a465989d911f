package models

// Requests for the HTTP endpoints. Defined in domain for consistency and reuse.

type NewsListRequest struct {
	Q       string   `query:"q" json:"q"`
	Tickers []string `query:"tickers" json:"tickers"`
	Limit   int      `query:"limit" json:"limit" default:"100" validate:"gte=1,lte=500"`
}

type PollRequest struct {
	Q       string   `json:"q"`
	Tickers []string `json:"tickers"`
	Limit   int      `json:"limit" default:"100" validate:"gte=1,lte=500"`
}

type SubmitRequest struct {
	User      string `json:"user"`
	Text      string `json:"text" validate:"required"`
	Engine    string `json:"engine" default:"local"`
	Translate bool   `json:"translate"`
}
