package service

import (
	"github.com/ddenisov/go-contact-keeper/internal/config"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/store"
)

// Services bundles all application services for injection into the transport
// layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
}

// NewServices wires every service onto the shared repositories.
// The address service receives the contact service so address operations can
// reuse its ownership guard for the parent-contact link of the chain.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	contactService := NewContactService(storages.ContactRepository, logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ContactService: contactService,
		AddressService: NewAddressService(storages.AddressRepository, contactService, logger),
	}
}
