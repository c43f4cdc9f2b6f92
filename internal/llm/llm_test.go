package llm

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-assistant/internal/shared/telemetry"
)

type echoClient struct{}

func (echoClient) Generate(ctx context.Context, prompt string) (string, error) {
	return "echo:" + prompt, nil
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(telemetry.SetOutput(&buf))
	return &buf
}

func TestResolveWithoutKeyIsUnconfigured(t *testing.T) {
	logs := quietLogs(t)
	called := false
	capability := Resolve(context.Background(), ResolveOptions{
		Provider: "gemini",
		Factories: map[string]Factory{
			"gemini": func(ctx context.Context, apiKey, model string) (Client, error) {
				called = true
				return echoClient{}, nil
			},
		},
	})

	assert.False(t, called)
	assert.False(t, capability.Available())
	assert.Equal(t, Unconfigured, capability.State)
	assert.Equal(t, "unconfigured", capability.State.String())
	assert.Contains(t, logs.String(), "llm.unconfigured")

	_, err := capability.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestResolveFactoryErrorDegrades(t *testing.T) {
	quietLogs(t)
	capability := Resolve(context.Background(), ResolveOptions{
		Provider: "gemini",
		APIKey:   "key",
		Factories: map[string]Factory{
			"gemini": func(ctx context.Context, apiKey, model string) (Client, error) {
				return nil, errors.New("boom")
			},
		},
	})

	assert.False(t, capability.Available())
	assert.Equal(t, "boom", capability.Reason)
}

func TestResolveUnknownProvider(t *testing.T) {
	quietLogs(t)
	capability := Resolve(context.Background(), ResolveOptions{Provider: "other", APIKey: "key"})
	assert.False(t, capability.Available())
	assert.Equal(t, "unknown provider", capability.Reason)
}

func TestResolveAvailable(t *testing.T) {
	quietLogs(t)
	var gotKey, gotModel string
	capability := Resolve(context.Background(), ResolveOptions{
		Provider: " Gemini ",
		Model:    "gemini-2.5-flash",
		APIKey:   "key",
		Factories: map[string]Factory{
			"gemini": func(ctx context.Context, apiKey, model string) (Client, error) {
				gotKey, gotModel = apiKey, model
				return echoClient{}, nil
			},
		},
	})

	require.True(t, capability.Available())
	assert.Equal(t, "available", capability.State.String())
	assert.Equal(t, "key", gotKey)
	assert.Equal(t, "gemini-2.5-flash", gotModel)

	out, err := capability.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", out)
}

func TestNewAvailableNilClient(t *testing.T) {
	assert.False(t, NewAvailable(nil, "gemini", "m").Available())
}
