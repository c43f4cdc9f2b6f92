package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-assistant/internal/shared/telemetry"
	"resume-assistant/internal/shared/util"
)

func TestLoggingIncludesRequiredFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Session(SessionOptions{}), Logging())
	router.POST("/analyze", func(c *gin.Context) {
		c.Set("scorer", "heuristic")
		c.Set("atsScore", 80)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	req.Header.Set(SessionHeader, knownSession)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 {
		t.Fatalf("expected log output")
	}
	last := lines[len(lines)-1]
	var payload map[string]any
	if err := json.Unmarshal([]byte(last), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}

	required := []string{"request_id", "session_key", "duration_ms", "status", "scorer", "ats_score"}
	for _, key := range required {
		if _, ok := payload[key]; !ok {
			t.Fatalf("missing log field: %s", key)
		}
	}
	if payload["session_key"] != util.HashSessionKey(knownSession) {
		t.Fatalf("unexpected session_key: %v", payload["session_key"])
	}
	if strings.Contains(last, knownSession) {
		t.Fatalf("raw session id leaked into logs")
	}
	if payload["scorer"] != "heuristic" {
		t.Fatalf("unexpected scorer: %v", payload["scorer"])
	}
	if payload["ats_score"] != float64(80) {
		t.Fatalf("unexpected ats_score: %v", payload["ats_score"])
	}
}
