package store

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/internal/config"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
)

// Storages bundles every repository together with the shared database
// handle. It is constructed once at startup and passed by reference into the
// service layer; no package carries global connection state.
type Storages struct {
	DB *DB

	UserRepository    UserRepository
	ContactRepository ContactRepository
	AddressRepository AddressRepository
}

// NewStorages opens the configured database and wires all repositories onto
// the shared handle.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDatabase(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		ContactRepository: NewContactRepository(db, log),
		AddressRepository: NewAddressRepository(db, log),
	}, nil
}
