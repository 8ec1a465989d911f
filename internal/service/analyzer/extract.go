package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"trendcheck/internal/domain/models"
)

var (
	parenTicker  = regexp.MustCompile(`\(([A-Z]{1,5})\)`)
	marketPrefix = regexp.MustCompile(`(?i)(?:NASDAQ|NYSE|LSE|FWB|TSX)[:\s]-?\s*([A-Z]{1,5})`)
	tickerToken  = regexp.MustCompile(`\$?[A-Z]{1,5}\b`)
	wordToken    = regexp.MustCompile(`[A-Za-z][A-Za-z.\-&']+`)
)

// extractCompany finds the subject company. Signals are tried in confidence
// order: parenthesized ticker, exchange-prefixed ticker, bare ticker token,
// directory lookup over 1-3 word spans, then a low-confidence guess from the
// first capitalized tokens.
func extractCompany(text string, dir *models.CompanyDirectory) (company, ticker, evidence string) {
	if m := parenTicker.FindStringSubmatchIndex(text); m != nil {
		tk := text[m[2]:m[3]]
		return companyForTicker(tk, dir), tk, snip(text, m[0])
	}
	if m := marketPrefix.FindStringSubmatchIndex(text); m != nil {
		tk := text[m[2]:m[3]]
		return companyForTicker(tk, dir), tk, snip(text, m[0])
	}
	for _, m := range tickerToken.FindAllStringIndex(text, -1) {
		raw := strings.TrimPrefix(text[m[0]:m[1]], "$")
		if len(raw) <= 5 && raw == strings.ToUpper(raw) {
			return companyForTicker(raw, dir), raw, snip(text, m[0])
		}
	}

	tokens := wordToken.FindAllString(text, -1)
	for i := range tokens {
		for n := 3; n >= 1; n-- {
			if i+n > len(tokens) {
				continue
			}
			span := strings.Join(tokens[i:i+n], " ")
			if name, tk, ok := dir.Resolve(span); ok {
				return name, tk, snip(text, indexFold(text, span))
			}
		}
	}

	// last resort: first few capitalized words, no ticker
	var guess []string
	for _, t := range tokens {
		if r, _ := utf8.DecodeRuneInString(t); len(t) > 1 && unicode.IsUpper(r) {
			guess = append(guess, t)
			if len(guess) == 3 {
				break
			}
		}
	}
	return strings.Join(guess, " "), "", snip(text, 0)
}

func companyForTicker(ticker string, dir *models.CompanyDirectory) string {
	if name := dir.CompanyByTicker(ticker); name != "" {
		return name
	}
	return ticker
}

// snip returns up to 160 characters of context around idx, starting 80
// before it, with newlines flattened. Offsets are nudged onto rune
// boundaries.
func snip(text string, idx int) string {
	if idx < 0 {
		idx = 0
	}
	if idx > len(text) {
		idx = len(text)
	}
	start := idx - 80
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	end := start + 160
	if end > len(text) {
		end = len(text)
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	s := strings.NewReplacer("\n", " ", "\r", " ").Replace(text[start:end])
	return strings.TrimSpace(s)
}

func indexFold(text, span string) int {
	return strings.Index(strings.ToLower(text), strings.ToLower(span))
}
