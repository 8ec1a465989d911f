package service

import (
	"context"

	"trendcheck/internal/domain/models"
)

// Analyzer turns free-form text into a structured analysis result. Engines
// are selected by case-insensitive name match at submission time.
type Analyzer interface {
	EngineName() string
	Analyze(ctx context.Context, text string, dir *models.CompanyDirectory, translate bool) (*models.AnalysisResult, error)
}
