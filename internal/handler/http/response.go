package http

import (
	"net/http"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/utils"
	"github.com/ddenisov/go-contact-keeper/models"
)

// writeData wraps a successful payload in the uniform response envelope.
func (h *Handler) writeData(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	}, statusCode)
}

// writePage wraps a search result page together with its paging metadata.
func (h *Handler) writePage(w http.ResponseWriter, statusCode int, message string, data any, paging models.Paging) {
	utils.WriteJSON(w, models.Response{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Paging:     &paging,
	}, statusCode)
}

// writeError converts a service/store/validation error into its HTTP status
// and the uniform error envelope. Unknown errors become 500 with a generic
// message; internal details never reach the response body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	statusCode := statusFromError(err)
	message := err.Error()
	if statusCode == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error while handling request")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.Response{
		StatusCode: statusCode,
		Message:    message,
	}, statusCode)
}

// writeBadRequest reports a malformed request (broken JSON, non-numeric
// query parameter) without going through the error taxonomy.
func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Response{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}, http.StatusBadRequest)
}
