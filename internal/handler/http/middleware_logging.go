package http

import (
	"net/http"
	"time"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
)

// withLogging emits one structured log line per request with the method,
// path, resulting status, response size and elapsed time.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
