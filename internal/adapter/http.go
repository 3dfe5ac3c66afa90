package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ddenisov/go-contact-keeper/models"
)

// HTTPClientConfig configures the REST client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] talking JSON over HTTP to the
// go-contact-keeper server at cfg.BaseURL.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/v1/users/register")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}

	user, _, err := decodeEnvelope[models.UserResponse](resp)
	if err != nil {
		return models.UserResponse{}, err
	}
	return user, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/v1/users/login")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("login request: %w", err)
	}

	user, _, err := decodeEnvelope[models.UserResponse](resp)
	if err != nil {
		return models.UserResponse{}, err
	}

	h.SetToken(user.Token)
	return user, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/v1/users/current")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("current user request: %w", err)
	}

	user, _, err := decodeEnvelope[models.UserResponse](resp)
	return user, err
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, request models.UserUpdateRequest) (models.UserResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Patch("/api/v1/users/current")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update user request: %w", err)
	}

	user, _, err := decodeEnvelope[models.UserResponse](resp)
	return user, err
}

func (h *httpServerAdapter) CreateContact(ctx context.Context, request models.ContactCreateRequest) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/v1/contacts/")
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("create contact request: %w", err)
	}

	contact, _, err := decodeEnvelope[models.ContactResponse](resp)
	return contact, err
}

func (h *httpServerAdapter) GetContact(ctx context.Context, contactID string) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/contacts/" + contactID)
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("get contact request: %w", err)
	}

	contact, _, err := decodeEnvelope[models.ContactResponse](resp)
	return contact, err
}

func (h *httpServerAdapter) UpdateContact(ctx context.Context, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/v1/contacts/" + contactID)
	if err != nil {
		return models.ContactResponse{}, fmt.Errorf("update contact request: %w", err)
	}

	contact, _, err := decodeEnvelope[models.ContactResponse](resp)
	return contact, err
}

func (h *httpServerAdapter) DeleteContact(ctx context.Context, contactID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/v1/contacts/" + contactID)
	if err != nil {
		return fmt.Errorf("delete contact request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SearchContacts(ctx context.Context, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error) {
	req := h.authedRequest(ctx)
	if request.Name != "" {
		req.SetQueryParam("name", request.Name)
	}
	if request.Email != "" {
		req.SetQueryParam("email", request.Email)
	}
	if request.Phone != "" {
		req.SetQueryParam("phone", request.Phone)
	}
	if request.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(request.Page))
	}
	if request.Size > 0 {
		req.SetQueryParam("size", strconv.Itoa(request.Size))
	}

	resp, err := req.Get("/api/v1/contacts/")
	if err != nil {
		return nil, models.Paging{}, fmt.Errorf("search contacts request: %w", err)
	}

	contacts, paging, err := decodeEnvelope[[]models.ContactResponse](resp)
	if err != nil {
		return nil, models.Paging{}, err
	}
	if paging == nil {
		paging = &models.Paging{}
	}
	return contacts, *paging, nil
}

func (h *httpServerAdapter) CreateAddress(ctx context.Context, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/v1/contacts/" + contactID + "/addresses/")
	if err != nil {
		return models.AddressResponse{}, fmt.Errorf("create address request: %w", err)
	}

	address, _, err := decodeEnvelope[models.AddressResponse](resp)
	return address, err
}

func (h *httpServerAdapter) GetAddress(ctx context.Context, contactID, addressID string) (models.AddressResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/contacts/" + contactID + "/addresses/" + addressID)
	if err != nil {
		return models.AddressResponse{}, fmt.Errorf("get address request: %w", err)
	}

	address, _, err := decodeEnvelope[models.AddressResponse](resp)
	return address, err
}

func (h *httpServerAdapter) UpdateAddress(ctx context.Context, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Put("/api/v1/contacts/" + contactID + "/addresses/" + addressID)
	if err != nil {
		return models.AddressResponse{}, fmt.Errorf("update address request: %w", err)
	}

	address, _, err := decodeEnvelope[models.AddressResponse](resp)
	return address, err
}

func (h *httpServerAdapter) DeleteAddress(ctx context.Context, contactID, addressID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/v1/contacts/" + contactID + "/addresses/" + addressID)
	if err != nil {
		return fmt.Errorf("delete address request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListAddresses(ctx context.Context, contactID string) ([]models.AddressResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/contacts/" + contactID + "/addresses/")
	if err != nil {
		return nil, fmt.Errorf("list addresses request: %w", err)
	}

	addresses, _, err := decodeEnvelope[[]models.AddressResponse](resp)
	return addresses, err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// envelope mirrors the uniform server response with a typed data field.
type envelope[T any] struct {
	StatusCode int            `json:"statusCode"`
	Message    string         `json:"message"`
	Data       T              `json:"data"`
	Paging     *models.Paging `json:"paging"`
}

func decodeEnvelope[T any](resp *resty.Response) (T, *models.Paging, error) {
	var result envelope[T]

	if err := mapHTTPError(resp); err != nil {
		return result.Data, nil, err
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result.Data, nil, fmt.Errorf("decode response envelope: %w", err)
	}
	return result.Data, result.Paging, nil
}
