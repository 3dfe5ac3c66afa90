package http

import (
	"encoding/json"
	"net/http"

	"github.com/ddenisov/go-contact-keeper/models"
)

// register handles POST /api/v1/users/register.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.UserRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusCreated, "User registered", user)
}

// login handles POST /api/v1/users/login.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.UserLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Login successful", user)
}

// currentUser handles GET /api/v1/users/current.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	user := h.services.UserService.Current(r.Context(), principal)
	h.writeData(w, http.StatusOK, "User found", user)
}

// updateUser handles PATCH /api/v1/users/current.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var request models.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	user, err := h.services.UserService.Update(r.Context(), principal, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "User updated", user)
}

// logout handles DELETE /api/v1/users/current. The stored session token is
// cleared, so the presented token stops working immediately.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), principal); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "User logged out", true)
}
