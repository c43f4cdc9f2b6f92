package scoring

import "strings"

const pointsPerSignal = 20

var techKeywords = []string{"python", "java", "sql", "ai", "machine learning"}

// Heuristic awards 20 points for each ATS signal found in the text.
// The "@" check runs against the raw text; the keyword checks are case-insensitive.
func Heuristic(text string) int {
	lower := strings.ToLower(text)
	score := 0
	if strings.Contains(text, "@") {
		score += pointsPerSignal
	}
	for _, section := range []string{"skills", "education", "experience"} {
		if strings.Contains(lower, section) {
			score += pointsPerSignal
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			score += pointsPerSignal
			break
		}
	}
	return score
}
