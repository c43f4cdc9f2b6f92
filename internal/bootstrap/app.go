package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-assistant/internal/assistant"
	"resume-assistant/internal/chat"
	"resume-assistant/internal/extract"
	"resume-assistant/internal/llm"
	"resume-assistant/internal/llm/gemini"
	"resume-assistant/internal/llm/openai"
	"resume-assistant/internal/pages"
	"resume-assistant/internal/resumes"
	"resume-assistant/internal/scoring"
	"resume-assistant/internal/services/health"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/server"
)

const minJanitorInterval = time.Minute

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	Model            llm.Capability
	Store            *resumes.MemoryStore
	Metrics          *metrics.Registry
	AssistantService *assistant.Service
	AssistantHandler *assistant.Handler
	PagesHandler     *pages.Handler
	HealthService    *health.Service
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

type options struct {
	model *llm.Capability
	now   func() time.Time
}

// WithModel skips provider resolution and uses the given capability.
func WithModel(model llm.Capability) Option {
	return func(o *options) { o.model = &model }
}

// WithClock replaces the store's clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Build wires every dependency and the router. The model capability is
// resolved once here; a missing key degrades the app instead of failing.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if cfg.AnalyzeScorer == "" {
		cfg.AnalyzeScorer = assistant.ScorerGenerative
	}

	model := ResolveModel(context.Background(), cfg)
	if o.model != nil {
		model = *o.model
	}

	store := resumes.NewMemoryStore(cfg.SessionTTL, o.now)
	store.StartJanitor(janitorInterval(cfg.SessionTTL))

	reg := metrics.New()
	svc := &assistant.Service{
		Extractor:     extract.NewPDF(),
		Store:         store,
		Scorer:        scoring.NewScorer(model),
		Chat:          chat.NewService(model),
		Metrics:       reg,
		AnalyzeScorer: cfg.AnalyzeScorer,
	}

	pagesHandler, err := pages.NewHandler(model.Available())
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("pages: %w", err)
	}

	app := &App{
		Config:           cfg,
		Model:            model,
		Store:            store,
		Metrics:          reg,
		AssistantService: svc,
		AssistantHandler: assistant.NewHandler(svc, cfg.MaxUploadBytes),
		PagesHandler:     pagesHandler,
		HealthService:    health.NewService(model),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:    cfg,
		Assistant: app.AssistantHandler,
		Pages:     app.PagesHandler,
		Health:    app.HealthService,
		Metrics:   reg,
	})
	return app, nil
}

// Close stops background work.
func (a *App) Close() {
	if a != nil && a.Store != nil {
		a.Store.Close()
	}
}

// ResolveModel builds the configured provider client, falling back to the
// provider default model name.
func ResolveModel(ctx context.Context, cfg config.Config) llm.Capability {
	model := cfg.LLMModel
	if model == "" {
		model = defaultModel(cfg.LLMProvider)
	}
	return llm.Resolve(ctx, llm.ResolveOptions{
		Provider: cfg.LLMProvider,
		Model:    model,
		APIKey:   cfg.APIKey(),
		Factories: map[string]llm.Factory{
			"gemini": gemini.Factory(gemini.Options{Timeout: cfg.LLMTimeout}),
			"openai": openai.Factory(openai.Options{Timeout: cfg.LLMTimeout}),
		},
	})
}

func defaultModel(provider string) string {
	if provider == "openai" {
		return openai.DefaultModel
	}
	return gemini.DefaultModel
}

func janitorInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 0
	}
	if interval := ttl / 4; interval > minJanitorInterval {
		return interval
	}
	return minJanitorInterval
}
