package http

import (
	"net/http"

	"github.com/google/uuid"
)

// withTraceID attaches a per-request child logger carrying a fresh trace id,
// so every log line produced while handling the request can be correlated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.logger.With().Str("traceID", uuid.NewString()).Logger()
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
