package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-assistant/internal/shared/util"
)

const (
	// SessionHeader carries the session ID for API clients.
	SessionHeader = "X-Session-Id"
	// SessionCookie carries the session ID for browsers.
	SessionCookie = "ra_session"

	sessionIDKey  = "sessionId"
	sessionKeyKey = "sessionKey"
)

// SessionOptions configures the Session middleware.
type SessionOptions struct {
	CookieSecure bool
	MaxAge       time.Duration
	NewID        func() string
}

// Session resolves the caller's session from the header or cookie, minting a
// new UUID when neither holds a valid one. The ID is echoed in both.
func Session(opts SessionOptions) gin.HandlerFunc {
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	maxAge := int(opts.MaxAge / time.Second)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id, fromCookie := incomingSessionID(c)
		if id == "" {
			id = newID()
			fromCookie = false
		}

		c.Set(sessionIDKey, id)
		c.Set(sessionKeyKey, util.HashSessionKey(id))
		c.Writer.Header().Set(SessionHeader, id)
		if !fromCookie {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, id, maxAge, "/", "", opts.CookieSecure, true)
		}
		c.Next()
	}
}

func incomingSessionID(c *gin.Context) (string, bool) {
	if raw := strings.TrimSpace(c.GetHeader(SessionHeader)); validSessionID(raw) {
		return raw, false
	}
	if raw, err := c.Cookie(SessionCookie); err == nil && validSessionID(strings.TrimSpace(raw)) {
		return strings.TrimSpace(raw), true
	}
	return "", false
}

func validSessionID(raw string) bool {
	if raw == "" {
		return false
	}
	_, err := uuid.Parse(raw)
	return err == nil
}

// SessionIDFromContext fetches the session ID set by the Session middleware.
func SessionIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(sessionIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// SessionKeyFromContext returns the log-safe fingerprint of the session ID.
func SessionKeyFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(sessionKeyKey)
}
