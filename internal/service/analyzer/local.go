package analyzer

import (
	"context"
	"math"
	"strings"

	"trendcheck/internal/domain/models"
)

// Local is the built-in heuristic engine: lexicon sentiment plus pattern
// company extraction. It needs no network and is always registered.
type Local struct {
	targetLang string
}

func NewLocal(targetLang string) *Local {
	if targetLang == "" {
		targetLang = "lt"
	}
	return &Local{targetLang: targetLang}
}

func (l *Local) EngineName() string { return "local" }

func (l *Local) Analyze(_ context.Context, text string, dir *models.CompanyDirectory, translate bool) (*models.AnalysisResult, error) {
	company, ticker, evidence := extractCompany(text, dir)
	score, bestSentence := scoreText(text)

	direction := models.DirectionNeutral
	magnitude := 0.0
	abs := math.Abs(score)
	if abs < 0.10 {
		magnitude = abs * 0.5
	} else {
		if score > 0 {
			direction = models.DirectionUp
		} else {
			direction = models.DirectionDown
		}
		if abs < 0.35 {
			magnitude = abs
		} else {
			magnitude = math.Min(1.0, abs*1.2)
		}
	}

	if strings.TrimSpace(bestSentence) == "" {
		bestSentence = evidence
	}
	translation := ""
	if translate {
		// marker prefix stands in for a real translation service
		translation = "[" + l.targetLang + "] " + bestSentence
	}
	if company == "" {
		company = "Unknown"
	}

	return &models.AnalysisResult{
		Company:         company,
		Ticker:          ticker,
		Direction:       direction,
		Magnitude:       round3(magnitude),
		SentimentScore:  round3(score),
		EvidenceSnippet: bestSentence,
		Translation:     translation,
	}, nil
}
