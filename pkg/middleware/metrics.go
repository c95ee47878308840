package middleware

import (
	"net/http"
	"time"

	"github.com/JaimeStill/flux/pkg/metrics"
)

// Metrics returns middleware that records request duration and status for
// each handled request. The wrapped writer forwards Flush so streaming
// responses keep their incremental delivery behavior.
func Metrics(sys *metrics.System) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			sys.ObserveRequest(r.Method, r.URL.Path, sw.status, time.Since(start))
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
