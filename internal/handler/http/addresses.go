package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ddenisov/go-contact-keeper/models"
)

// createAddress handles POST /api/v1/contacts/{contactID}/addresses.
func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var request models.AddressCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	address, err := h.services.AddressService.Create(r.Context(), principal, chi.URLParam(r, "contactID"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusCreated, "Address created", address)
}

// getAddress handles GET /api/v1/contacts/{contactID}/addresses/{addressID}.
func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	address, err := h.services.AddressService.Get(r.Context(), principal,
		chi.URLParam(r, "contactID"), chi.URLParam(r, "addressID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Address retrieved", address)
}

// updateAddress handles PUT /api/v1/contacts/{contactID}/addresses/{addressID}.
func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var request models.AddressUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	address, err := h.services.AddressService.Update(r.Context(), principal,
		chi.URLParam(r, "contactID"), chi.URLParam(r, "addressID"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Address updated", address)
}

// deleteAddress handles DELETE /api/v1/contacts/{contactID}/addresses/{addressID}.
func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	err := h.services.AddressService.Delete(r.Context(), principal,
		chi.URLParam(r, "contactID"), chi.URLParam(r, "addressID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Address deleted", true)
}

// listAddresses handles GET /api/v1/contacts/{contactID}/addresses.
func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	addresses, err := h.services.AddressService.List(r.Context(), principal, chi.URLParam(r, "contactID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Addresses retrieved", addresses)
}
