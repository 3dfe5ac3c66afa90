package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddenisov/go-contact-keeper/internal/service"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
	"github.com/ddenisov/go-contact-keeper/models"
)

// decodedResponse mirrors the envelope with raw data for per-test decoding.
type decodedResponse struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Paging     *models.Paging  `json:"paging"`
}

func doRequest(t *testing.T, h *Handler, method, target, token, body string) (*httptest.ResponseRecorder, decodedResponse) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)

	var envelope decodedResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Equal(t, recorder.Code, envelope.StatusCode)

	return recorder, envelope
}

func TestHandler_Register(t *testing.T) {
	auth := authorizedAuthService()
	auth.registerFunc = func(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error) {
		return models.UserResponse{Username: request.Username, Name: request.Name}, nil
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/users/register", "",
		`{"username":"eddy","password":"rahasia","name":"Eddy Khaerudin"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "User registered", envelope.Message)

	var user models.UserResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "eddy", user.Username)
}

func TestHandler_Register_DuplicateUsername(t *testing.T) {
	auth := authorizedAuthService()
	auth.registerFunc = func(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error) {
		return models.UserResponse{}, store.ErrUsernameAlreadyExists
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, _ := doRequest(t, h, http.MethodPost, "/api/v1/users/register", "",
		`{"username":"eddy","password":"rahasia","name":"Eddy"}`)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_Register_InvalidBody(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService()})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/users/register", "", `{not json`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "invalid request body", envelope.Message)
}

func TestHandler_Login(t *testing.T) {
	auth := authorizedAuthService()
	auth.loginFunc = func(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error) {
		return models.UserResponse{Username: request.Username, Name: "Eddy", Token: "fresh-token"}, nil
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/users/login", "",
		`{"username":"eddy","password":"rahasia"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Login successful", envelope.Message)

	var user models.UserResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "fresh-token", user.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	auth := authorizedAuthService()
	auth.loginFunc = func(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error) {
		return models.UserResponse{}, service.ErrInvalidCredentials
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/users/login", "",
		`{"username":"ghost","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), envelope.Message)
}

func TestHandler_AuthMiddleware(t *testing.T) {
	users := &userServiceMock{
		currentFunc: func(ctx context.Context, user models.User) models.UserResponse {
			return models.UserResponse{Username: user.Username, Name: user.Name}
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), UserService: users})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current", nil)
		recorder := httptest.NewRecorder()
		h.Init().ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("header without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current", nil)
		req.Header.Set("Authorization", "Bearer")
		recorder := httptest.NewRecorder()
		h.Init().ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		recorder, _ := doRequest(t, h, http.MethodGet, "/api/v1/users/current", "forged-token", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/users/current", "valid-token", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "User found", envelope.Message)
	})
}

func TestHandler_AuthMiddleware_RevokedSession(t *testing.T) {
	auth := authorizedAuthService()
	auth.resolvePrincipalFunc = func(ctx context.Context, token models.Token) (models.User, error) {
		return models.User{}, service.ErrTokenIsExpiredOrInvalid
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/users/current", "valid-token", "")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), envelope.Message)
}

func TestHandler_Logout(t *testing.T) {
	auth := authorizedAuthService()
	auth.logoutFunc = func(ctx context.Context, user models.User) error {
		assert.Equal(t, "eddy", user.Username)
		return nil
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	recorder, envelope := doRequest(t, h, http.MethodDelete, "/api/v1/users/current", "valid-token", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "User logged out", envelope.Message)
	assert.Equal(t, "true", string(envelope.Data))
}

func TestHandler_UpdateUser(t *testing.T) {
	users := &userServiceMock{
		updateFunc: func(ctx context.Context, user models.User, request models.UserUpdateRequest) (models.UserResponse, error) {
			require.NotNil(t, request.Name)
			return models.UserResponse{Username: user.Username, Name: *request.Name}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), UserService: users})

	recorder, envelope := doRequest(t, h, http.MethodPatch, "/api/v1/users/current", "valid-token",
		`{"name":"Eddy Khaerudin"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "User updated", envelope.Message)
}

func TestHandler_CreateContact(t *testing.T) {
	contacts := &contactServiceMock{
		createFunc: func(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error) {
			return models.ContactResponse{ID: "c-1", FirstName: request.FirstName}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/contacts/", "valid-token",
		`{"firstName":"John"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Contact created", envelope.Message)
}

func TestHandler_CreateContact_ValidationError(t *testing.T) {
	contacts := &contactServiceMock{
		createFunc: func(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error) {
			return models.ContactResponse{}, &validators.FieldError{Field: "firstName", Reason: "is required"}
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/contacts/", "valid-token", `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "firstName: is required", envelope.Message)
}

func TestHandler_GetContact_NotFound(t *testing.T) {
	contacts := &contactServiceMock{
		getFunc: func(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
			return models.ContactResponse{}, store.ErrContactNotFound
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, _ := doRequest(t, h, http.MethodGet, "/api/v1/contacts/ghost/", "valid-token", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_SearchContacts_Defaults(t *testing.T) {
	contacts := &contactServiceMock{
		searchFunc: func(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error) {
			assert.Equal(t, 1, request.Page)
			assert.Equal(t, 10, request.Size)
			return []models.ContactResponse{{ID: "c-1", FirstName: "John"}}, models.NewPaging(request.Page, request.Size, 1), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/contacts/", "valid-token", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Contact found", envelope.Message)
	require.NotNil(t, envelope.Paging)
	assert.Equal(t, 1, envelope.Paging.CurrentPage)
	assert.Equal(t, 10, envelope.Paging.Size)
}

func TestHandler_SearchContacts_QueryParams(t *testing.T) {
	contacts := &contactServiceMock{
		searchFunc: func(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error) {
			assert.Equal(t, "john", request.Name)
			assert.Equal(t, 2, request.Page)
			assert.Equal(t, 5, request.Size)
			return nil, models.NewPaging(request.Page, request.Size, 0), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, _ := doRequest(t, h, http.MethodGet, "/api/v1/contacts/?name=john&page=2&size=5", "valid-token", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_SearchContacts_NonNumericPage(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService()})

	recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/contacts/?page=abc", "valid-token", "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, envelope.Message, "page")
}

func TestHandler_DeleteContact(t *testing.T) {
	contacts := &contactServiceMock{
		deleteFunc: func(ctx context.Context, user models.User, contactID string) error {
			assert.Equal(t, "c-1", contactID)
			return nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, envelope := doRequest(t, h, http.MethodDelete, "/api/v1/contacts/c-1/", "valid-token", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Contact deleted", envelope.Message)
	assert.Equal(t, "true", string(envelope.Data))
}

func TestHandler_CreateAddress(t *testing.T) {
	addresses := &addressServiceMock{
		createFunc: func(ctx context.Context, user models.User, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error) {
			assert.Equal(t, "c-1", contactID)
			return models.AddressResponse{ID: "a-1", Street: request.Street, City: request.City, Province: request.Province, Country: request.Country, PostalCode: request.PostalCode}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), AddressService: addresses})

	recorder, envelope := doRequest(t, h, http.MethodPost, "/api/v1/contacts/c-1/addresses/", "valid-token",
		`{"street":"Jalan Sudirman 1","city":"Jakarta","province":"DKI Jakarta","country":"Indonesia","postalCode":"12190"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Address created", envelope.Message)
}

func TestHandler_GetAddress_NotFound(t *testing.T) {
	addresses := &addressServiceMock{
		getFunc: func(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error) {
			return models.AddressResponse{}, store.ErrAddressNotFound
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), AddressService: addresses})

	recorder, _ := doRequest(t, h, http.MethodGet, "/api/v1/contacts/c-1/addresses/ghost", "valid-token", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ListAddresses(t *testing.T) {
	addresses := &addressServiceMock{
		listFunc: func(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error) {
			return []models.AddressResponse{{ID: "a-1", City: "Jakarta"}, {ID: "a-2", City: "Bandung"}}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), AddressService: addresses})

	recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/contacts/c-1/addresses/", "valid-token", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Addresses retrieved", envelope.Message)

	var list []models.AddressResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &list))
	assert.Len(t, list, 2)
}

func TestHandler_InternalErrorHidesDetails(t *testing.T) {
	contacts := &contactServiceMock{
		getFunc: func(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
			return models.ContactResponse{}, assert.AnError
		},
	}
	h := newTestHandler(&service.Services{AuthService: authorizedAuthService(), ContactService: contacts})

	recorder, envelope := doRequest(t, h, http.MethodGet, "/api/v1/contacts/c-1/", "valid-token", "")

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), envelope.Message)
}
