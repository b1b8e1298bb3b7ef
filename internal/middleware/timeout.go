package middleware

import (
	"net/http"
	"time"
)

// Timeout answers 503 with a problem body once timeout elapses.
// http.TimeoutHandler writes that body without a content type, so one is preset
// on the outer writer; handlers that finish in time replace it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	message := `{"success":false,"data":{"error":"Request timeout","detail":"request timed out"}}`

	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, message)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", problemContentType)
			limited.ServeHTTP(w, r)
		})
	}
}
