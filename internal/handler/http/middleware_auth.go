package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/utils"
	"github.com/ddenisov/go-contact-keeper/models"
)

// auth guards the protected route group. It parses the bearer token from the
// "Authorization" header, verifies the signature and claims, resolves the
// principal against the stored session token and places the user into the
// request context under utils.PrincipalCtxKey.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerTokenFromHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("rejected request without a usable bearer token")
			h.writeError(w, r, err)
			return
		}

		token, err := h.services.AuthService.VerifyToken(r.Context(), tokenString)
		if err != nil {
			log.Info().Err(err).Msg("rejected request with an invalid token")
			h.writeError(w, r, err)
			return
		}

		principal, err := h.services.AuthService.ResolvePrincipal(r.Context(), token)
		if err != nil {
			log.Info().Str("username", token.Username).Err(err).Msg("rejected token with no live session")
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerTokenFromHeader distinguishes the three ways an "Authorization"
// header can be unusable so the response says what exactly is missing.
func bearerTokenFromHeader(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil || token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

// principal reads the authenticated user placed into the context by the auth
// middleware. A miss means the handler is wired outside the protected group,
// which is a programming error, so it is reported as 401 rather than 500 to
// avoid leaking route topology.
func (h *Handler) principal(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in context on a protected route")
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return models.User{}, false
	}
	return user, true
}
