package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Recover returns middleware that converts any panic escaping a handler into a
// generic 500 JSON error envelope. No handler failure should ever reach the
// transport layer uncaught.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(
						"handler panic",
						"method", r.Method,
						"uri", r.URL.RequestURI(),
						"panic", rec,
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
