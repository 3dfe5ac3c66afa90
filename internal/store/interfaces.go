package store

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

// UserRepository persists user accounts keyed by username.
type UserRepository interface {
	// CreateUser inserts a new account. Returns ErrUsernameAlreadyExists when
	// the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrNoUserWasFound.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser overwrites the mutable columns (name, password, token) of an
	// existing account.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateToken sets or clears (nil) the stored session token.
	UpdateToken(ctx context.Context, username string, token *string) error
}

// ContactRepository persists contacts owned by users. Every lookup and
// mutation is filtered by the owner's username, so the single filtered query
// doubles as the authorization check.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)

	// FindContactByID returns the contact with the given id owned by username,
	// or ErrContactNotFound.
	FindContactByID(ctx context.Context, username, contactID string) (models.Contact, error)

	UpdateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, username, contactID string) error

	// SearchContacts returns one page of the user's contacts matching the
	// request filters plus the total number of matching rows.
	SearchContacts(ctx context.Context, username string, request models.ContactSearchRequest) ([]models.Contact, int, error)
}

// AddressRepository persists addresses owned by contacts. Lookups are filtered
// by the parent contact id; the caller is responsible for first authorizing
// access to the contact itself.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address models.Address) (models.Address, error)

	// FindAddressByID returns the address with the given id under contactID,
	// or ErrAddressNotFound.
	FindAddressByID(ctx context.Context, contactID, addressID string) (models.Address, error)

	UpdateAddress(ctx context.Context, address models.Address) (models.Address, error)
	DeleteAddress(ctx context.Context, contactID, addressID string) error
	ListAddressesByContact(ctx context.Context, contactID string) ([]models.Address, error)
}

// ErrorClassifier translates driver-specific errors into portable categories
// so repositories stay engine-agnostic.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err represents a unique-constraint
	// (or primary-key) violation.
	IsUniqueViolation(err error) bool
}
