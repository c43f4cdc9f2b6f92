package llm

import (
	"context"
	"strings"

	"resume-assistant/internal/shared/telemetry"
)

// Factory builds a provider client from an API key and model name.
type Factory func(ctx context.Context, apiKey, model string) (Client, error)

// ResolveOptions selects and configures a provider.
type ResolveOptions struct {
	Provider  string
	Model     string
	APIKey    string
	Factories map[string]Factory
}

// Resolve turns configuration into a Capability. It never fails: a missing
// credential or a constructor error degrades to Unconfigured.
func Resolve(ctx context.Context, opts ResolveOptions) Capability {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if strings.TrimSpace(opts.APIKey) == "" {
		return unconfigured(provider, "api key not set")
	}
	factory, ok := opts.Factories[provider]
	if !ok || factory == nil {
		return unconfigured(provider, "unknown provider")
	}
	client, err := factory(ctx, opts.APIKey, opts.Model)
	if err != nil {
		return unconfigured(provider, err.Error())
	}
	telemetry.Info("llm.configured", map[string]any{
		"provider": provider,
		"model":    opts.Model,
	})
	return NewAvailable(client, provider, opts.Model)
}

func unconfigured(provider, reason string) Capability {
	telemetry.Warn("llm.unconfigured", map[string]any{
		"provider": provider,
		"reason":   reason,
	})
	return NewUnconfigured(provider, reason)
}
