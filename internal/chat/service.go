package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-assistant/internal/llm"
)

// ReplyUnconfigured is the message returned when no model is available.
const ReplyUnconfigured = "AI not configured"

var (
	ErrUnavailable   = errors.New("chat assistant unavailable")
	ErrEmptyQuestion = errors.New("message is required")
	ErrModelCall     = errors.New("model call failed")
)

// Service answers questions about a resume. It keeps no history.
type Service struct {
	Model llm.Capability
}

// NewService constructs a Service.
func NewService(model llm.Capability) *Service {
	return &Service{Model: model}
}

// Available reports whether Ask can reach a model.
func (s *Service) Available() bool {
	return s.Model.Available()
}

// Ask returns the model's reply to question, unmodified.
func (s *Service) Ask(ctx context.Context, resumeText, question string) (string, error) {
	if !s.Model.Available() {
		return "", ErrUnavailable
	}
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	reply, err := s.Model.Generate(ctx, BuildPrompt(resumeText, question))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelCall, err)
	}
	return reply, nil
}
