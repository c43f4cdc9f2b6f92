package assistant

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-assistant/internal/chat"
	"resume-assistant/internal/extract"
	"resume-assistant/internal/scoring"
	"resume-assistant/internal/shared/server/middleware"
	"resume-assistant/internal/shared/server/respond"
)

const (
	defaultMaxUploadBytes = 10 << 20 // 10MB
	uploadField           = "resume"
	msgUploadFirst        = "Upload resume first"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the resume routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/upload", h.upload)
	r.POST("/analyze", h.analyze)
	r.POST("/chat", h.chat)
}

func (h *Handler) upload(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.Svc.Metrics.IncUpload("too_large")
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "resume file is too large", nil)
			return
		}
		h.Svc.Metrics.IncUpload("missing_file")
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	score, err := h.Svc.Upload(c.Request.Context(), sessionID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrExtraction):
			respond.Error(c, http.StatusBadRequest, "extraction_failed", "could not extract text from PDF", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		}
		return
	}

	c.Set("scorer", ScorerHeuristic)
	c.Set("atsScore", score)
	respond.OK(c, uploadResponse{Status: "ok", ATSScore: score})
}

func (h *Handler) analyze(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	res, err := h.Svc.Analyze(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "no_resume", msgUploadFirst, nil)
		case errors.Is(err, scoring.ErrModelCall):
			respond.Error(c, http.StatusBadGateway, "model_error", "AI scoring failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	c.Set("scorer", res.Scorer)
	c.Set("atsScore", res.Score)
	respond.OK(c, analyzeResponse{Status: "ok", ATSScore: res.Score, Feedback: res.Feedback})
}

func (h *Handler) chat(c *gin.Context) {
	sessionID := middleware.SessionIDFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		return
	}

	reply, err := h.Svc.Ask(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoResume):
			respond.Error(c, http.StatusBadRequest, "no_resume", msgUploadFirst, nil)
		case errors.Is(err, chat.ErrUnavailable):
			c.Header("Cache-Control", "no-store")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, chatUnavailableResponse{Error: chat.ReplyUnconfigured})
		case errors.Is(err, chat.ErrEmptyQuestion):
			respond.Error(c, http.StatusBadRequest, "validation_error", "message is required", nil)
		case errors.Is(err, chat.ErrModelCall):
			respond.Error(c, http.StatusBadGateway, "model_error", "AI request failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	respond.OK(c, chatResponse{Reply: reply})
}
