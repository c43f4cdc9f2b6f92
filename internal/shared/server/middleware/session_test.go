package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownSession = "0b8f2c1e-6d3a-4f4e-9b7a-2c1d0e9f8a7b"

func sessionRouter(opts SessionOptions) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(Session(opts))
	r.GET("/s", func(c *gin.Context) {
		seen = SessionIDFromContext(c)
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestSessionMintsWhenMissing(t *testing.T) {
	r, seen := sessionRouter(SessionOptions{MaxAge: time.Hour, NewID: func() string { return knownSession }})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/s", nil))

	assert.Equal(t, knownSession, *seen)
	assert.Equal(t, knownSession, resp.Header().Get(SessionHeader))
	cookies := resp.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, knownSession, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSessionHonorsHeader(t *testing.T) {
	r, seen := sessionRouter(SessionOptions{NewID: func() string { t.Fatal("should not mint"); return "" }})

	req := httptest.NewRequest(http.MethodGet, "/s", nil)
	req.Header.Set(SessionHeader, knownSession)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, knownSession, *seen)
	assert.Equal(t, knownSession, resp.Header().Get(SessionHeader))
}

func TestSessionHonorsCookieWithoutResetting(t *testing.T) {
	r, seen := sessionRouter(SessionOptions{})

	req := httptest.NewRequest(http.MethodGet, "/s", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: knownSession})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, knownSession, *seen)
	assert.Empty(t, resp.Result().Cookies())
}

func TestSessionReplacesInvalidID(t *testing.T) {
	r, seen := sessionRouter(SessionOptions{})

	req := httptest.NewRequest(http.MethodGet, "/s", nil)
	req.Header.Set(SessionHeader, "../../not-a-uuid")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.NotEqual(t, "../../not-a-uuid", *seen)
	assert.True(t, validSessionID(*seen))
}
