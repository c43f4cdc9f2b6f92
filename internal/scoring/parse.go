package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// MaxModelOutputBytes bounds how much model output is inspected.
	MaxModelOutputBytes = 16 << 10

	DefaultFeedback = "No feedback"

	minScore = 0
	maxScore = 100
)

var (
	scorePattern    = regexp.MustCompile(`(?i)ATS_SCORE:\s*([+-]?\d+)`)
	feedbackPattern = regexp.MustCompile(`(?is)FEEDBACK:\s*(.*)`)
)

// ParseModelOutput extracts the score and feedback from the model's reply.
// A missing score yields 0, missing or blank feedback yields DefaultFeedback,
// and the score is always clamped into [0,100].
func ParseModelOutput(raw string) Result {
	clean := sanitizeModelOutput(raw)

	score := 0
	if m := scorePattern.FindStringSubmatch(clean); m != nil {
		// On overflow Atoi returns the saturated value, which Clamp then bounds.
		n, _ := strconv.Atoi(m[1])
		score = n
	}

	feedback := DefaultFeedback
	if m := feedbackPattern.FindStringSubmatch(clean); m != nil {
		if fb := strings.TrimSpace(m[1]); fb != "" {
			feedback = fb
		}
	}

	return Result{Score: Clamp(score), Feedback: feedback}
}

// Clamp bounds a score into [0,100].
func Clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func sanitizeModelOutput(raw string) string {
	if len(raw) > MaxModelOutputBytes {
		raw = raw[:MaxModelOutputBytes]
	}
	raw = strings.ToValidUTF8(raw, string(utf8.RuneError))
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, raw)
}
