package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"resume-assistant/internal/chat"
	"resume-assistant/internal/resumes"
	"resume-assistant/internal/scoring"
	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/telemetry"
	"resume-assistant/internal/shared/util"
)

const (
	ScorerGenerative = "generative"
	ScorerHeuristic  = "heuristic"
)

// ErrNoResume is returned when a session asks for a score or chat before uploading.
var ErrNoResume = errors.New("no resume uploaded")

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(ctx context.Context, r io.Reader) (string, error)
}

// Analysis is the outcome of scoring the session's current resume.
type Analysis struct {
	Scorer string
	scoring.Result
}

// Service coordinates extraction, the per-session store, scoring and chat.
type Service struct {
	Extractor     TextExtractor
	Store         resumes.Store
	Scorer        *scoring.Scorer
	Chat          *chat.Service
	Metrics       *metrics.Registry
	AnalyzeScorer string
	Now           func() time.Time
}

// Upload extracts the document, replaces the session's resume with its text
// and returns the heuristic score of that text.
func (s *Service) Upload(ctx context.Context, sessionID, fileName string, r io.Reader) (int, error) {
	text, err := s.Extractor.ExtractText(ctx, r)
	if err != nil {
		s.Metrics.IncUpload("extraction_failed")
		return 0, err
	}

	name, err := util.SanitizeFileName(fileName)
	if err != nil {
		// The name is informational only; an odd one never blocks the upload.
		telemetry.Warn("resume.file_name_rejected", map[string]any{
			"session_key": util.HashSessionKey(sessionID),
			"error":       err,
		})
		name = ""
	}

	resume := resumes.Resume{
		SessionID:  sessionID,
		Text:       text,
		FileName:   name,
		UploadedAt: s.now(),
	}
	if err := s.Store.Put(ctx, resume); err != nil {
		s.Metrics.IncUpload("store_failed")
		return 0, fmt.Errorf("store resume: %w", err)
	}

	score := scoring.Heuristic(text)
	s.Metrics.IncUpload("ok")
	s.Metrics.ObserveScore(ScorerHeuristic, score)
	telemetry.Info("resume.uploaded", map[string]any{
		"session_key": util.HashSessionKey(sessionID),
		"file_name":   resume.FileName,
		"text_bytes":  len(text),
		"ats_score":   score,
	})
	return score, nil
}

// Analyze scores the session's current resume with the configured scorer.
func (s *Service) Analyze(ctx context.Context, sessionID string) (Analysis, error) {
	resume, err := s.current(ctx, sessionID)
	if err != nil {
		return Analysis{}, err
	}

	if s.AnalyzeScorer == ScorerHeuristic {
		res := s.Scorer.Heuristic(resume.Text)
		s.Metrics.ObserveScore(ScorerHeuristic, res.Score)
		return Analysis{Scorer: ScorerHeuristic, Result: res}, nil
	}

	res, err := s.Scorer.Generative(ctx, resume.Text)
	if err != nil {
		s.Metrics.IncModelFailure("analyze")
		return Analysis{}, err
	}
	s.Metrics.ObserveScore(ScorerGenerative, res.Score)
	return Analysis{Scorer: ScorerGenerative, Result: res}, nil
}

// Ask answers a question about the session's current resume.
func (s *Service) Ask(ctx context.Context, sessionID, question string) (string, error) {
	resume, err := s.current(ctx, sessionID)
	if err != nil {
		s.Metrics.IncChat("no_resume")
		return "", err
	}

	reply, err := s.Chat.Ask(ctx, resume.Text, question)
	switch {
	case err == nil:
		s.Metrics.IncChat("ok")
		return reply, nil
	case errors.Is(err, chat.ErrUnavailable):
		s.Metrics.IncChat("unavailable")
	case errors.Is(err, chat.ErrModelCall):
		s.Metrics.IncChat("failed")
		s.Metrics.IncModelFailure("chat")
	default:
		s.Metrics.IncChat("invalid")
	}
	return "", err
}

func (s *Service) current(ctx context.Context, sessionID string) (resumes.Resume, error) {
	resume, err := s.Store.Get(ctx, sessionID)
	if errors.Is(err, resumes.ErrNotFound) {
		return resumes.Resume{}, ErrNoResume
	}
	if err != nil {
		return resumes.Resume{}, fmt.Errorf("load resume: %w", err)
	}
	return resume, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
