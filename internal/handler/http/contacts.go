package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ddenisov/go-contact-keeper/models"
)

const (
	defaultSearchPage = 1
	defaultSearchSize = 10
)

// createContact handles POST /api/v1/contacts.
func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var request models.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	contact, err := h.services.ContactService.Create(r.Context(), principal, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusCreated, "Contact created", contact)
}

// getContact handles GET /api/v1/contacts/{contactID}.
func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	contact, err := h.services.ContactService.Get(r.Context(), principal, chi.URLParam(r, "contactID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Contact retrieved", contact)
}

// updateContact handles PUT /api/v1/contacts/{contactID}.
func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	var request models.ContactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid request body")
		return
	}

	contact, err := h.services.ContactService.Update(r.Context(), principal, chi.URLParam(r, "contactID"), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Contact updated", contact)
}

// deleteContact handles DELETE /api/v1/contacts/{contactID}. Addresses of the
// contact go away with it through the foreign key cascade.
func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	if err := h.services.ContactService.Delete(r.Context(), principal, chi.URLParam(r, "contactID")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, http.StatusOK, "Contact deleted", true)
}

// searchContacts handles GET /api/v1/contacts. Filters (name, email, phone)
// and paging controls (page, size) arrive as query parameters; omitted paging
// controls fall back to page 1 and size 10.
func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.principal(w, r)
	if !ok {
		return
	}

	request, err := parseContactSearchQuery(r)
	if err != nil {
		h.writeBadRequest(w, err.Error())
		return
	}

	contacts, paging, err := h.services.ContactService.Search(r.Context(), principal, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writePage(w, http.StatusOK, "Contact found", contacts, paging)
}

func parseContactSearchQuery(r *http.Request) (models.ContactSearchRequest, error) {
	query := r.URL.Query()
	request := models.ContactSearchRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  defaultSearchPage,
		Size:  defaultSearchSize,
	}

	var err error
	if raw := query.Get("page"); raw != "" {
		if request.Page, err = strconv.Atoi(raw); err != nil {
			return models.ContactSearchRequest{}, errQueryParamNotNumeric("page")
		}
	}
	if raw := query.Get("size"); raw != "" {
		if request.Size, err = strconv.Atoi(raw); err != nil {
			return models.ContactSearchRequest{}, errQueryParamNotNumeric("size")
		}
	}

	return request, nil
}

func errQueryParamNotNumeric(name string) error {
	return fmt.Errorf("query parameter %q must be a number", name)
}
