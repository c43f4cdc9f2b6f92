package scoring

import (
	"context"
	"errors"
	"fmt"

	"resume-assistant/internal/llm"
)

// FeedbackUnconfigured is reported when no model is available.
const FeedbackUnconfigured = "AI not configured"

// ErrModelCall wraps failures returned by the model provider.
var ErrModelCall = errors.New("model call failed")

// Result is a compatibility score with optional feedback.
type Result struct {
	Score    int    `json:"ats_score"`
	Feedback string `json:"feedback"`
}

// Scorer computes ATS scores, optionally through a generative model.
type Scorer struct {
	Model llm.Capability
}

// NewScorer constructs a Scorer.
func NewScorer(model llm.Capability) *Scorer {
	return &Scorer{Model: model}
}

// Heuristic scores the text with keyword checks only.
func (s *Scorer) Heuristic(text string) Result {
	return Result{Score: Heuristic(text)}
}

// Generative asks the model to score the resume. An unconfigured model is a
// normal outcome reported as score 0 with FeedbackUnconfigured.
func (s *Scorer) Generative(ctx context.Context, text string) (Result, error) {
	if !s.Model.Available() {
		return Result{Score: 0, Feedback: FeedbackUnconfigured}, nil
	}
	raw, err := s.Model.Generate(ctx, BuildScorePrompt(text))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrModelCall, err)
	}
	return ParseModelOutput(raw), nil
}
