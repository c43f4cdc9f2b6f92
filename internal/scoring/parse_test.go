package scoring

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModelOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Result
	}{
		{
			name: "well formed",
			raw:  "ATS_SCORE: 72\nFEEDBACK: Add metrics to your experience.",
			want: Result{Score: 72, Feedback: "Add metrics to your experience."},
		},
		{
			name: "multiline feedback kept",
			raw:  "ATS_SCORE: 55\nFEEDBACK: - first\n- second\n",
			want: Result{Score: 55, Feedback: "- first\n- second"},
		},
		{
			name: "missing score",
			raw:  "FEEDBACK: looks ok",
			want: Result{Score: 0, Feedback: "looks ok"},
		},
		{
			name: "missing feedback",
			raw:  "ATS_SCORE: 40",
			want: Result{Score: 40, Feedback: DefaultFeedback},
		},
		{
			name: "blank feedback",
			raw:  "ATS_SCORE: 40\nFEEDBACK:   \n",
			want: Result{Score: 40, Feedback: DefaultFeedback},
		},
		{
			name: "empty output",
			raw:  "",
			want: Result{Score: 0, Feedback: DefaultFeedback},
		},
		{
			name: "above range",
			raw:  "ATS_SCORE: 250\nFEEDBACK: wow",
			want: Result{Score: 100, Feedback: "wow"},
		},
		{
			name: "negative",
			raw:  "ATS_SCORE: -15\nFEEDBACK: hmm",
			want: Result{Score: 0, Feedback: "hmm"},
		},
		{
			name: "overflow",
			raw:  "ATS_SCORE: 99999999999999999999999999\nFEEDBACK: x",
			want: Result{Score: 100, Feedback: "x"},
		},
		{
			name: "non numeric score",
			raw:  "ATS_SCORE: high\nFEEDBACK: x",
			want: Result{Score: 0, Feedback: "x"},
		},
		{
			name: "lower case labels with preamble",
			raw:  "Here is my evaluation.\nats_score: 81\nfeedback: tighten summary",
			want: Result{Score: 81, Feedback: "tighten summary"},
		},
		{
			name: "control characters stripped",
			raw:  "ATS_SCORE: 6\x000\nFEEDBACK: ok\x07",
			want: Result{Score: 60, Feedback: "ok"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseModelOutput(tt.raw))
		})
	}
}

func TestParseModelOutputBoundsInput(t *testing.T) {
	raw := "ATS_SCORE: 90\nFEEDBACK: " + strings.Repeat("a", 2*MaxModelOutputBytes)
	got := ParseModelOutput(raw)
	assert.Equal(t, 90, got.Score)
	assert.Less(t, len(got.Feedback), MaxModelOutputBytes)
}

func TestParseModelOutputInvalidUTF8(t *testing.T) {
	got := ParseModelOutput("ATS_SCORE: 30\nFEEDBACK: bad \xff byte")
	assert.Equal(t, 30, got.Score)
	assert.Equal(t, "bad � byte", got.Feedback)
}

func TestClampAlwaysInRange(t *testing.T) {
	for _, n := range []int{math.MinInt, -1, 0, 1, 99, 100, 101, math.MaxInt} {
		got := Clamp(n)
		if got < 0 || got > 100 {
			t.Fatalf("Clamp(%s) = %d out of range", strconv.Itoa(n), got)
		}
	}
}
