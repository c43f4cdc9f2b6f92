package health

import "resume-assistant/internal/llm"

// Status is the /healthz payload.
type Status struct {
	OK    bool   `json:"ok"`
	Model string `json:"model"`
}

// Service reports process liveness and model capability.
type Service struct {
	model llm.Capability
}

// NewService constructs a new health service.
func NewService(model llm.Capability) *Service {
	return &Service{model: model}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{OK: true, Model: s.model.State.String()}
}
