// Package handler aggregates the transport handlers of the application.
package handler

import (
	"github.com/ddenisov/go-contact-keeper/internal/handler/http"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/service"
)

// Handlers bundles the transport-level handlers for injection into the
// server package.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs all transport handlers on top of the shared
// services.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
