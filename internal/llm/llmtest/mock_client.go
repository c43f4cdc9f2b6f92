// Package llmtest provides test doubles for llm.Client.
package llmtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resume-assistant/internal/llm"
)

// MockClient is a testify mock of llm.Client.
type MockClient struct {
	mock.Mock
}

// Generate records the call and returns the configured reply.
func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// Capability wraps the mock in an available llm.Capability.
func (m *MockClient) Capability() llm.Capability {
	return llm.NewAvailable(m, "mock", "mock-model")
}

var _ llm.Client = (*MockClient)(nil)
