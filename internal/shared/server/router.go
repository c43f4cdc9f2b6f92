package server

import (
	"github.com/gin-gonic/gin"

	"resume-assistant/internal/assistant"
	"resume-assistant/internal/pages"
	"resume-assistant/internal/services/health"
	"resume-assistant/internal/shared/config"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/server/middleware"
	"resume-assistant/internal/shared/server/respond"
)

// RouterDeps are the handlers and collaborators the router mounts.
type RouterDeps struct {
	Config    config.Config
	Assistant *assistant.Handler
	Pages     *pages.Handler
	Health    *health.Service
	Metrics   *metrics.Registry
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = cfg.MaxUploadBytes
	if deps.Pages != nil {
		r.SetHTMLTemplate(deps.Pages.Templates())
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		deps.Metrics.Middleware(),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status())
	})
	if deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	session := r.Group("/", middleware.Session(middleware.SessionOptions{
		CookieSecure: cfg.SessionCookieSecure,
	}))
	if deps.Pages != nil {
		deps.Pages.RegisterRoutes(session)
	}
	deps.Assistant.RegisterRoutes(session)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
