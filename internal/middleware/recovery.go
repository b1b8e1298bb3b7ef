package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"delivery-api/internal/model"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				slog.Error("panic recovered",
					"error", fmt.Sprintf("%v", recovered),
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", problemContentType)
				w.WriteHeader(http.StatusInternalServerError)
				_ = jsonEncode(w, model.APIResponse{
					Success: false,
					Data: model.Problem{
						Error:  "Internal server error",
						Detail: "An unexpected error occurred",
					},
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
