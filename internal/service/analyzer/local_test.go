package analyzer

import (
	"context"
	"strings"
	"testing"

	"trendcheck/internal/domain/models"
)

func testDir() *models.CompanyDirectory {
	return models.NewCompanyDirectory(models.DefaultCompanies())
}

func TestAnalyzePositiveHeadline(t *testing.T) {
	eng := NewLocal("")
	res, err := eng.Analyze(context.Background(), "Apple Inc. (AAPL) shares surge after record quarterly profit.", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Ticker != "AAPL" {
		t.Fatalf("expected AAPL, got %q", res.Ticker)
	}
	if res.Direction != models.DirectionUp {
		t.Fatalf("expected Up, got %s (score %v)", res.Direction, res.SentimentScore)
	}
	if !strings.Contains(res.EvidenceSnippet, "surge") {
		t.Fatalf("evidence should carry the signal sentence: %q", res.EvidenceSnippet)
	}
	if res.Company != "Apple Inc." {
		t.Fatalf("expected ticker resolved to company, got %q", res.Company)
	}
}

func TestAnalyzeNegationFlipsDirection(t *testing.T) {
	eng := NewLocal("")
	up, err := eng.Analyze(context.Background(), "Apple beat expectations this quarter.", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	down, err := eng.Analyze(context.Background(), "Apple did not beat expectations this quarter.", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if up.Direction != models.DirectionUp {
		t.Fatalf("plain headline should read Up, got %s", up.Direction)
	}
	if down.Direction != models.DirectionDown {
		t.Fatalf("negated headline should read Down, got %s", down.Direction)
	}
	if up.SentimentScore != -down.SentimentScore {
		t.Fatalf("negation should mirror the score: %v vs %v", up.SentimentScore, down.SentimentScore)
	}
}

func TestAnalyzeNeutralText(t *testing.T) {
	eng := NewLocal("")
	res, err := eng.Analyze(context.Background(), "The company held its annual meeting on Tuesday.", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Direction != models.DirectionNeutral {
		t.Fatalf("expected Neutral, got %s", res.Direction)
	}
	if res.SentimentScore != 0 {
		t.Fatalf("expected zero score, got %v", res.SentimentScore)
	}
}

func TestAnalyzeTranslation(t *testing.T) {
	eng := NewLocal("lt")
	res, err := eng.Analyze(context.Background(), "Tesla shares tumble on recall.", testDir(), true)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.HasPrefix(res.Translation, "[lt] ") {
		t.Fatalf("expected marked translation, got %q", res.Translation)
	}

	plain, err := NewLocal("lt").Analyze(context.Background(), "Tesla shares tumble on recall.", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if plain.Translation != "" {
		t.Fatalf("translation should be empty when not requested, got %q", plain.Translation)
	}
}

func TestAnalyzeUnknownCompany(t *testing.T) {
	eng := NewLocal("")
	res, err := eng.Analyze(context.Background(), "shares were flat in quiet trading today", testDir(), false)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if res.Company != "Unknown" || res.Ticker != "" {
		t.Fatalf("expected Unknown company without ticker, got %q/%q", res.Company, res.Ticker)
	}
}

func TestExtractCompanyPriorities(t *testing.T) {
	dir := testDir()
	cases := []struct {
		name       string
		text       string
		company    string
		ticker     string
	}{
		{"paren ticker wins", "Microsoft (MSFT) and NYSE: GE both moved.", "Microsoft Corporation", "MSFT"},
		{"market prefix", "Shares listed on NASDAQ: MSFT gained.", "Microsoft Corporation", "MSFT"},
		{"bare dollar ticker", "Watch $TSLA into the close.", "Tesla, Inc.", "TSLA"},
		{"unknown ticker kept as company", "Analysts cover ZZZQ this week.", "ZZZQ", "ZZZQ"},
		{"directory span", "the bank of america results arrive tomorrow", "bank of america", "BAC"},
		{"capitalized guess", "Quantum Widgets announced something vague yesterday", "Quantum Widgets", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			company, ticker, evidence := extractCompany(tc.text, dir)
			if company != tc.company || ticker != tc.ticker {
				t.Fatalf("got %q/%q, want %q/%q", company, ticker, tc.company, tc.ticker)
			}
			if evidence == "" {
				t.Fatal("expected a non-empty evidence snippet")
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one. Second one! Third?")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), got)
	}
	if got[2] != "Third?" {
		t.Fatalf("trailing sentence lost: %v", got)
	}

	if got := splitSentences("no terminal punctuation here"); len(got) != 1 {
		t.Fatalf("unterminated text should be one sentence, got %d", len(got))
	}
}

func TestScoreSentenceClampsAndBonuses(t *testing.T) {
	s := scoreSentence("shares surge and soar to record profit growth, strong robust outperform")
	if s != 1.0 {
		t.Fatalf("stacked positives should clamp at 1.0, got %v", s)
	}
	with := scoreSentence("company beats expectations")
	without := scoreSentence("company beats forecasts")
	if with <= without {
		t.Fatalf("phrase bonus missing: %v vs %v", with, without)
	}
}

func TestSnipFlattensAndBounds(t *testing.T) {
	text := strings.Repeat("a", 100) + "X\nY" + strings.Repeat("b", 100)
	got := snip(text, 100)
	if strings.ContainsAny(got, "\n\r") {
		t.Fatal("snippet should flatten newlines")
	}
	if len(got) > 160 {
		t.Fatalf("snippet too long: %d", len(got))
	}
	if !strings.Contains(got, "X Y") {
		t.Fatalf("snippet should be centered near the index: %q", got)
	}
}
