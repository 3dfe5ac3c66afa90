package http

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/service"
	"github.com/ddenisov/go-contact-keeper/models"
)

// Function-field mocks for the service interfaces. Tests assign only the
// functions the scenario needs.

type authServiceMock struct {
	registerFunc         func(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error)
	loginFunc            func(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error)
	logoutFunc           func(ctx context.Context, user models.User) error
	verifyTokenFunc      func(ctx context.Context, tokenString string) (models.Token, error)
	resolvePrincipalFunc func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *authServiceMock) Register(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error) {
	return m.registerFunc(ctx, request)
}

func (m *authServiceMock) Login(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error) {
	return m.loginFunc(ctx, request)
}

func (m *authServiceMock) Logout(ctx context.Context, user models.User) error {
	return m.logoutFunc(ctx, user)
}

func (m *authServiceMock) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.verifyTokenFunc(ctx, tokenString)
}

func (m *authServiceMock) ResolvePrincipal(ctx context.Context, token models.Token) (models.User, error) {
	return m.resolvePrincipalFunc(ctx, token)
}

type userServiceMock struct {
	currentFunc func(ctx context.Context, user models.User) models.UserResponse
	updateFunc  func(ctx context.Context, user models.User, request models.UserUpdateRequest) (models.UserResponse, error)
}

func (m *userServiceMock) Current(ctx context.Context, user models.User) models.UserResponse {
	return m.currentFunc(ctx, user)
}

func (m *userServiceMock) Update(ctx context.Context, user models.User, request models.UserUpdateRequest) (models.UserResponse, error) {
	return m.updateFunc(ctx, user, request)
}

type contactServiceMock struct {
	createFunc    func(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error)
	getFunc       func(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error)
	updateFunc    func(ctx context.Context, user models.User, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error)
	deleteFunc    func(ctx context.Context, user models.User, contactID string) error
	searchFunc    func(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error)
	mustExistFunc func(ctx context.Context, username, contactID string) (models.Contact, error)
}

func (m *contactServiceMock) Create(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error) {
	return m.createFunc(ctx, user, request)
}

func (m *contactServiceMock) Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
	return m.getFunc(ctx, user, contactID)
}

func (m *contactServiceMock) Update(ctx context.Context, user models.User, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error) {
	return m.updateFunc(ctx, user, contactID, request)
}

func (m *contactServiceMock) Delete(ctx context.Context, user models.User, contactID string) error {
	return m.deleteFunc(ctx, user, contactID)
}

func (m *contactServiceMock) Search(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error) {
	return m.searchFunc(ctx, user, request)
}

func (m *contactServiceMock) MustExist(ctx context.Context, username, contactID string) (models.Contact, error) {
	return m.mustExistFunc(ctx, username, contactID)
}

type addressServiceMock struct {
	createFunc func(ctx context.Context, user models.User, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error)
	getFunc    func(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error)
	updateFunc func(ctx context.Context, user models.User, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error)
	deleteFunc func(ctx context.Context, user models.User, contactID, addressID string) error
	listFunc   func(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error)
}

func (m *addressServiceMock) Create(ctx context.Context, user models.User, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error) {
	return m.createFunc(ctx, user, contactID, request)
}

func (m *addressServiceMock) Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error) {
	return m.getFunc(ctx, user, contactID, addressID)
}

func (m *addressServiceMock) Update(ctx context.Context, user models.User, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error) {
	return m.updateFunc(ctx, user, contactID, addressID, request)
}

func (m *addressServiceMock) Delete(ctx context.Context, user models.User, contactID, addressID string) error {
	return m.deleteFunc(ctx, user, contactID, addressID)
}

func (m *addressServiceMock) List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error) {
	return m.listFunc(ctx, user, contactID)
}

// authorizedAuthService returns an auth mock that accepts the token
// "valid-token" as the session of user eddy.
func authorizedAuthService() *authServiceMock {
	return &authServiceMock{
		verifyTokenFunc: func(ctx context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Username: "eddy", Name: "Eddy", SignedString: tokenString}, nil
		},
		resolvePrincipalFunc: func(ctx context.Context, token models.Token) (models.User, error) {
			return models.User{Username: "eddy", Name: "Eddy"}, nil
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
