// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Denisov

// Package adapter provides a Go client for the go-contact-keeper REST API.
//
// The primary abstraction is [ServerAdapter], which decouples calling code
// from the transport. The package ships an HTTP/REST implementation backed by
// resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the
// go-contact-keeper server. Implementations are responsible for
// serialisation, bearer token management, and mapping transport-level errors
// to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Register and Login call it automatically on
	// success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server.
	Register(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error)

	// Login authenticates and stores the returned session token for the
	// following requests.
	Login(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error)

	// Logout revokes the current session token on the server and clears the
	// locally stored one.
	Logout(ctx context.Context) error

	// CurrentUser fetches the profile of the authenticated user.
	CurrentUser(ctx context.Context) (models.UserResponse, error)

	// UpdateUser applies a partial profile update (name and/or password).
	UpdateUser(ctx context.Context, request models.UserUpdateRequest) (models.UserResponse, error)

	CreateContact(ctx context.Context, request models.ContactCreateRequest) (models.ContactResponse, error)
	GetContact(ctx context.Context, contactID string) (models.ContactResponse, error)
	UpdateContact(ctx context.Context, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error)
	DeleteContact(ctx context.Context, contactID string) error

	// SearchContacts runs a filtered, paginated search over the caller's
	// contacts. Zero-valued filters are omitted from the query string.
	SearchContacts(ctx context.Context, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error)

	CreateAddress(ctx context.Context, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error)
	GetAddress(ctx context.Context, contactID, addressID string) (models.AddressResponse, error)
	UpdateAddress(ctx context.Context, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error)
	DeleteAddress(ctx context.Context, contactID, addressID string) error
	ListAddresses(ctx context.Context, contactID string) ([]models.AddressResponse, error)
}
