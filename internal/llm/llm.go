package llm

import (
	"context"
	"errors"
)

// Client abstracts generative model providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Availability reports whether a model client can be used.
type Availability int

const (
	Unconfigured Availability = iota
	Available
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	default:
		return "unconfigured"
	}
}

// ErrUnconfigured is returned when a model call is attempted without a client.
var ErrUnconfigured = errors.New("llm not configured")

// Capability is resolved once at startup and consulted by every model-dependent operation.
type Capability struct {
	State    Availability
	Provider string
	Model    string
	Reason   string
	client   Client
}

// NewAvailable wraps a ready client.
func NewAvailable(client Client, provider, model string) Capability {
	if client == nil {
		return NewUnconfigured(provider, "nil client")
	}
	return Capability{State: Available, Provider: provider, Model: model, client: client}
}

// NewUnconfigured records why no model is usable.
func NewUnconfigured(provider, reason string) Capability {
	return Capability{State: Unconfigured, Provider: provider, Reason: reason}
}

// Available reports whether Generate can be called.
func (c Capability) Available() bool {
	return c.State == Available && c.client != nil
}

// Generate forwards to the underlying client.
func (c Capability) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrUnconfigured
	}
	return c.client.Generate(ctx, prompt)
}
