package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitMiddleware_UnlimitedGeneral(t *testing.T) {
	t.Parallel()

	handler := NewRateLimitMiddleware(0, 1, false).Handler(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimitMiddleware_LimitedAuth(t *testing.T) {
	t.Parallel()

	handler := NewRateLimitMiddleware(0, 1, false).Handler(okHandler())

	// Burst is 1, so the second immediate login is refused.
	rec1 := httptest.NewRecorder()
	handler.ServeHTTP(rec1, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusOK, rec1.Code)

	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec2.Code)
	assert.Equal(t, problemContentType, rec2.Header().Get("Content-Type"))
	assert.Contains(t, rec2.Body.String(), `"success":false`)

	// Other clients keep their own bucket.
	other := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	other.RemoteAddr = "203.0.113.9:4000"
	rec3 := httptest.NewRecorder()
	handler.ServeHTTP(rec3, other)
	assert.Equal(t, http.StatusOK, rec3.Code)
}

func TestRateLimitMiddleware_Configuration(t *testing.T) {
	t.Parallel()

	mw := NewRateLimitMiddleware(-1, 0, false)
	assert.Equal(t, -1, mw.generalRPM)
	assert.Equal(t, 10, mw.authRPM)
}

func TestRateLimitMiddleware_ForwardedHeaders(t *testing.T) {
	t.Parallel()

	loginFrom := func(handler http.Handler, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "198.51.100.4:5555"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	untrusted := NewRateLimitMiddleware(0, 1, false).Handler(okHandler())
	assert.Equal(t, http.StatusOK, loginFrom(untrusted, "203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(untrusted, "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(untrusted, "203.0.113.3"))

	trusted := NewRateLimitMiddleware(0, 1, true).Handler(okHandler())
	assert.Equal(t, http.StatusOK, loginFrom(trusted, "203.0.113.1"))
	assert.Equal(t, http.StatusOK, loginFrom(trusted, "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, loginFrom(trusted, "203.0.113.2, 10.0.0.1"))
}

func TestExtractClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.4:5555"
	assert.Equal(t, "198.51.100.4", extractClientIP(req, true))

	req.Header.Set("X-Real-IP", "192.0.2.1")
	assert.Equal(t, "192.0.2.1", extractClientIP(req, true))
	assert.Equal(t, "198.51.100.4", extractClientIP(req, false))

	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, "203.0.113.7", extractClientIP(req, true))
	assert.Equal(t, "198.51.100.4", extractClientIP(req, false))
}
