package analyzer

import (
	"math"
	"strings"
	"unicode"
)

type weightedTerm struct {
	term   string
	weight float64
}

// Lexicon weights are tuned for finance headlines: strong movers (surge,
// plunge) outweigh mild signals (growth, delay). Multi-word terms match as
// substrings.
var posLex = []weightedTerm{
	{"beat", 0.35}, {"beats", 0.35}, {"outperform", 0.40}, {"upgrade", 0.35},
	{"bullish", 0.40}, {"soar", 0.55}, {"soars", 0.55}, {"surge", 0.55}, {"surges", 0.55},
	{"record", 0.25}, {"profit", 0.25}, {"growth", 0.20}, {"raised guidance", 0.35},
	{"exceed", 0.25}, {"exceeds", 0.25}, {"strong", 0.20}, {"robust", 0.20},
}

var negLex = []weightedTerm{
	{"miss", -0.35}, {"misses", -0.35}, {"underperform", -0.40}, {"downgrade", -0.35},
	{"bearish", -0.40}, {"plunge", -0.60}, {"plunges", -0.60}, {"tumble", -0.55}, {"falls", -0.45},
	{"profit warning", -0.50}, {"cut guidance", -0.40}, {"loss", -0.30}, {"lawsuit", -0.25},
	{"regulator", -0.15}, {"probe", -0.20}, {"recall", -0.30}, {"delay", -0.20},
}

var negations = map[string]struct{}{
	"no": {}, "not": {}, "never": {}, "without": {},
	"hardly": {}, "barely": {}, "scarcely": {},
}

// splitSentences cuts text after sentence punctuation followed by
// whitespace. Abbreviation-blind on purpose: headline prose rarely has
// mid-sentence periods and the scorer only needs rough sentence units.
func splitSentences(text string) []string {
	var out []string
	runes := []rune(text)
	n := len(runes)
	start, i := 0, 0
	for i < n {
		c := runes[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < n && unicode.IsSpace(runes[i+1]) {
			if seg := string(runes[start : i+1]); strings.TrimSpace(seg) != "" {
				out = append(out, seg)
			}
			i++
			for i < n && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < n {
		if seg := string(runes[start:]); strings.TrimSpace(seg) != "" {
			out = append(out, seg)
		}
	}
	return out
}

// scoreText scores each sentence, averaging over max(3, nSentences) so a
// single loaded headline cannot max out the document score. It also returns
// the sentence with the strongest signal as evidence.
func scoreText(text string) (score float64, best string) {
	sentences := splitSentences(text)
	best = text
	if len(sentences) > 0 {
		best = sentences[0]
	}

	var total, bestAbs float64
	for _, s := range sentences {
		sScore := scoreSentence(s)
		total += sScore
		if math.Abs(sScore) > bestAbs {
			bestAbs = math.Abs(sScore)
			best = strings.TrimSpace(s)
		}
	}

	score = total
	if len(sentences) > 0 {
		div := float64(len(sentences))
		if div < 3 {
			div = 3
		}
		score = total / div
	}
	return clamp(score), best
}

func scoreSentence(s string) float64 {
	lower := strings.ToLower(s)
	var score float64
	for _, wt := range posLex {
		score += termScore(lower, wt)
	}
	for _, wt := range negLex {
		score += termScore(lower, wt)
	}

	if strings.Contains(lower, "beats expectations") || strings.Contains(lower, "top estimates") {
		score += 0.15
	}
	if strings.Contains(lower, "misses expectations") || strings.Contains(lower, "below estimates") {
		score -= 0.15
	}
	return clamp(score)
}

func termScore(lower string, wt weightedTerm) float64 {
	if !strings.Contains(lower, wt.term) {
		return 0
	}
	if negatedBefore(lower, wt.term, 3) {
		return -wt.weight
	}
	return wt.weight
}

// negatedBefore checks the windowWords words preceding the first occurrence
// of term for a negation, flipping the term's sign ("did not beat").
func negatedBefore(lower, term string, windowWords int) bool {
	idx := strings.Index(lower, term)
	if idx <= 0 {
		return false
	}
	left := strings.Fields(lower[:idx])
	for i, seen := len(left)-1, 0; i >= 0 && seen < windowWords; i, seen = i-1, seen+1 {
		w := strings.Trim(left[i], ".,;:")
		if _, ok := negations[w]; ok {
			return true
		}
	}
	return false
}

func clamp(v float64) float64 {
	return math.Max(-1.0, math.Min(1.0, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
