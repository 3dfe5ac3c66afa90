package service

import (
	"context"
	"fmt"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
	"github.com/ddenisov/go-contact-keeper/models"
)

// addressService is the concrete implementation of AddressService.
// Every operation first authorizes the parent contact through the contact
// service's ownership guard, then narrows to the address by contact id.
// The address belongs to a contact and the contact to a user; both links are
// checked on every access.
type addressService struct {
	addressRepository store.AddressRepository
	contactService    ContactService
	validator         validators.Validator
	logger            *logger.Logger
}

// NewAddressService constructs an AddressService wired to the given
// AddressRepository and the ContactService providing the ownership guard.
func NewAddressService(addressRepository store.AddressRepository, contactService ContactService, logger *logger.Logger) AddressService {
	return &addressService{
		addressRepository: addressRepository,
		contactService:    contactService,
		validator:         validators.NewAddressValidator(),
		logger:            logger,
	}
}

// Create validates the request, authorizes the parent contact, and inserts
// the address under it.
func (a *addressService) Create(ctx context.Context, user models.User, contactID string, request models.AddressCreateRequest) (models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid address create request")
		return models.AddressResponse{}, err
	}

	if _, err := a.contactService.MustExist(ctx, user.Username, contactID); err != nil {
		return models.AddressResponse{}, err
	}

	address, err := a.addressRepository.CreateAddress(ctx, models.Address{
		ContactID:  contactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("contact_id", contactID).Msg("address creation ended with error")
		return models.AddressResponse{}, fmt.Errorf("address creation ended with error: %w", err)
	}

	return models.ToAddressResponse(address), nil
}

// Get returns the address after walking the full ownership chain.
func (a *addressService) Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error) {
	if _, err := a.contactService.MustExist(ctx, user.Username, contactID); err != nil {
		return models.AddressResponse{}, err
	}

	address, err := a.addressRepository.FindAddressByID(ctx, contactID, addressID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	return models.ToAddressResponse(address), nil
}

// Update applies a partial update: only the fields present in the request
// change, absent fields keep their stored values.
func (a *addressService) Update(ctx context.Context, user models.User, contactID, addressID string, request models.AddressUpdateRequest) (models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid address update request")
		return models.AddressResponse{}, err
	}

	if _, err := a.contactService.MustExist(ctx, user.Username, contactID); err != nil {
		return models.AddressResponse{}, err
	}

	address, err := a.addressRepository.FindAddressByID(ctx, contactID, addressID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	if request.Street != nil {
		address.Street = *request.Street
	}
	if request.City != nil {
		address.City = *request.City
	}
	if request.Province != nil {
		address.Province = *request.Province
	}
	if request.Country != nil {
		address.Country = *request.Country
	}
	if request.PostalCode != nil {
		address.PostalCode = *request.PostalCode
	}

	updatedAddress, err := a.addressRepository.UpdateAddress(ctx, address)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("address_id", addressID).Msg("address update ended with error")
		return models.AddressResponse{}, fmt.Errorf("address update ended with error: %w", err)
	}

	return models.ToAddressResponse(updatedAddress), nil
}

// Delete removes the address after walking the full ownership chain.
func (a *addressService) Delete(ctx context.Context, user models.User, contactID, addressID string) error {
	log := logger.FromContext(ctx)

	if _, err := a.contactService.MustExist(ctx, user.Username, contactID); err != nil {
		return err
	}

	if _, err := a.addressRepository.FindAddressByID(ctx, contactID, addressID); err != nil {
		return err
	}

	if err := a.addressRepository.DeleteAddress(ctx, contactID, addressID); err != nil {
		log.Err(err).Str("username", user.Username).Str("address_id", addressID).Msg("address deletion ended with error")
		return fmt.Errorf("address deletion ended with error: %w", err)
	}

	return nil
}

// List returns every address of the contact after the ownership guard.
func (a *addressService) List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error) {
	log := logger.FromContext(ctx)

	if _, err := a.contactService.MustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := a.addressRepository.ListAddressesByContact(ctx, contactID)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("contact_id", contactID).Msg("address listing ended with error")
		return nil, fmt.Errorf("address listing ended with error: %w", err)
	}

	responses := make([]models.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, models.ToAddressResponse(address))
	}

	return responses, nil
}
