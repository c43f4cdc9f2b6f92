package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service's collectors. Tests build their own to avoid
// duplicate registration on the default registerer.
type Registry struct {
	reg *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.SummaryVec
	uploads         *prometheus.CounterVec
	scores          *prometheus.HistogramVec
	chats           *prometheus.CounterVec
	modelFailures   *prometheus.CounterVec
}

// New constructs a Registry with Go runtime and process collectors attached.
func New() *Registry {
	reg := prometheus.NewRegistry()
	m := &Registry{
		reg: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status_code"}),
		requestDuration: prometheus.NewSummaryVec(prometheus.SummaryOpts{
			Name:       "http_request_duration_seconds",
			Help:       "HTTP request duration in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		}, []string{"method", "path", "status_code"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_uploads_total",
			Help: "Resume uploads by outcome",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "resume_ats_score",
			Help:    "Distribution of computed ATS scores",
			Buckets: []float64{0, 20, 40, 60, 80, 100},
		}, []string{"scorer"}),
		chats: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "resume_chat_requests_total",
			Help: "Chat requests by outcome",
		}, []string{"outcome"}),
		modelFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "llm_failures_total",
			Help: "Failed generative model calls",
		}, []string{"operation"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.uploads,
		m.scores,
		m.chats,
		m.modelFailures,
	)
	return m
}

// Gatherer exposes the underlying registry.
func (m *Registry) Gatherer() prometheus.Gatherer {
	return m.reg
}

// IncUpload records an upload outcome (ok, missing_file, extraction_failed).
func (m *Registry) IncUpload(outcome string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(outcome).Inc()
}

// ObserveScore records a computed score for the given scorer.
func (m *Registry) ObserveScore(scorer string, score int) {
	if m == nil {
		return
	}
	m.scores.WithLabelValues(scorer).Observe(float64(score))
}

// IncChat records a chat outcome (ok, unavailable, no_resume, failed).
func (m *Registry) IncChat(outcome string) {
	if m == nil {
		return
	}
	m.chats.WithLabelValues(outcome).Inc()
}

// IncModelFailure records a failed model call.
func (m *Registry) IncModelFailure(operation string) {
	if m == nil {
		return
	}
	m.modelFailures.WithLabelValues(operation).Inc()
}

// Middleware records request counts and durations per route.
func (m *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m == nil {
			return
		}
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(c.Request.Method, path, status).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes metrics in Prometheus text format.
func (m *Registry) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
