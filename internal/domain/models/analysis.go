package models

import "time"

// Status is the lifecycle state of an analysis request.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusFailed    Status = "Failed"
)

// Direction classifies the expected price move.
const (
	DirectionUp      = "Up"
	DirectionDown    = "Down"
	DirectionNeutral = "Neutral"
)

// AnalysisResult is the immutable outcome of a single text analysis.
type AnalysisResult struct {
	Company         string  `json:"company"`
	Ticker          string  `json:"ticker,omitempty"`
	Direction       string  `json:"direction"`
	Magnitude       float64 `json:"magnitude"`
	SentimentScore  float64 `json:"sentiment_score"`
	EvidenceSnippet string  `json:"evidence_snippet,omitempty"`
	Translation     string  `json:"translation,omitempty"`
}

// AnalysisRequest is a submitted analysis job. It is created Pending and
// transitioned exactly once to Completed or Failed by the async worker; the
// submission fields never change after creation.
type AnalysisRequest struct {
	ID        string          `json:"request_id"`
	UserID    string          `json:"user"`
	Text      string          `json:"-"`
	Engine    string          `json:"engine"`
	CreatedAt time.Time       `json:"created_at"`
	Status    Status          `json:"status"`
	Error     string          `json:"error,omitempty"`
	Result    *AnalysisResult `json:"result,omitempty"`
}
