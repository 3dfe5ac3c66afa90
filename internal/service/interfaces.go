package service

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

// AuthService owns the credential boundary: registration, login, logout and
// per-request token verification.
type AuthService interface {
	// Register creates a new account with a bcrypt-hashed password.
	Register(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error)

	// Login verifies credentials, issues a signed session token, persists it
	// on the user row and returns it in the response.
	Login(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error)

	// Logout clears the stored session token. Because the boundary compares
	// the presented token against the stored one, logout acts as a true
	// revocation even for tokens that are still cryptographically valid.
	Logout(ctx context.Context, user models.User) error

	// VerifyToken checks the token's signature, expiry and issuer and returns
	// the decoded claims.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolvePrincipal turns verified claims into a live user record,
	// rejecting tokens whose user vanished or whose stored token no longer
	// matches.
	ResolvePrincipal(ctx context.Context, token models.Token) (models.User, error)
}

// UserService exposes the profile operations of the authenticated user.
type UserService interface {
	Current(ctx context.Context, user models.User) models.UserResponse
	Update(ctx context.Context, user models.User, request models.UserUpdateRequest) (models.UserResponse, error)
}

// ContactService orchestrates validation, ownership checks and persistence
// for the authenticated user's contacts.
type ContactService interface {
	Create(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error)
	Delete(ctx context.Context, user models.User, contactID string) error
	Search(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error)

	// MustExist is the ownership guard used by both this service and the
	// address service's ownership chain: it returns the contact only when it
	// exists and belongs to username, and store.ErrContactNotFound otherwise.
	MustExist(ctx context.Context, username, contactID string) (models.Contact, error)
}

// AddressService orchestrates the two-level ownership chain (the address
// belongs to a contact, the contact to a user) for the addresses of a contact.
type AddressService interface {
	Create(ctx context.Context, user models.User, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error)
	Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error)
	Update(ctx context.Context, user models.User, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error)
	Delete(ctx context.Context, user models.User, contactID, addressID string) error
	List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error)
}
