package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-depth-capture/internal/logger"
)

// withLogging writes one access-log entry per request using the
// request-scoped logger installed by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Int64("content_length", r.ContentLength).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}
