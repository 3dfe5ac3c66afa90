package service

import (
	"context"
	"fmt"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
	"github.com/ddenisov/go-contact-keeper/models"
)

// contactService is the concrete implementation of ContactService.
// Every operation runs the same pipeline: validate the request shape, guard
// ownership through an owner-filtered lookup, touch persistence, and shape
// the stored record into its response DTO.
type contactService struct {
	contactRepository store.ContactRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewContactService constructs a ContactService wired to the given
// ContactRepository.
func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		validator:         validators.NewContactValidator(),
		logger:            logger,
	}
}

// Create validates the request and inserts a contact owned by the
// authenticated user.
func (c *contactService) Create(ctx context.Context, user models.User, request models.ContactCreateRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid contact create request")
		return models.ContactResponse{}, err
	}

	contact, err := c.contactRepository.CreateContact(ctx, models.Contact{
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	})
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact creation ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	return models.ToContactResponse(contact), nil
}

// MustExist returns the contact only when it exists and belongs to username.
// A contact owned by another user yields store.ErrContactNotFound, exactly as
// a missing one does; the lookup deliberately leaks no existence information.
func (c *contactService) MustExist(ctx context.Context, username, contactID string) (models.Contact, error) {
	return c.contactRepository.FindContactByID(ctx, username, contactID)
}

// Get returns the contact after the ownership guard.
func (c *contactService) Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
	contact, err := c.MustExist(ctx, user.Username, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	return models.ToContactResponse(contact), nil
}

// Update applies a partial update: only the fields present in the request
// change, absent fields keep their stored values.
func (c *contactService) Update(ctx context.Context, user models.User, contactID string, request models.ContactUpdateRequest) (models.ContactResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid contact update request")
		return models.ContactResponse{}, err
	}

	contact, err := c.MustExist(ctx, user.Username, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	if request.FirstName != nil {
		contact.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		contact.LastName = request.LastName
	}
	if request.Email != nil {
		contact.Email = request.Email
	}
	if request.Phone != nil {
		contact.Phone = request.Phone
	}

	updatedContact, err := c.contactRepository.UpdateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("username", user.Username).Str("contact_id", contactID).Msg("contact update ended with error")
		return models.ContactResponse{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return models.ToContactResponse(updatedContact), nil
}

// Delete removes the contact after the ownership guard.
func (c *contactService) Delete(ctx context.Context, user models.User, contactID string) error {
	log := logger.FromContext(ctx)

	if _, err := c.MustExist(ctx, user.Username, contactID); err != nil {
		return err
	}

	if err := c.contactRepository.DeleteContact(ctx, user.Username, contactID); err != nil {
		log.Err(err).Str("username", user.Username).Str("contact_id", contactID).Msg("contact deletion ended with error")
		return fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return nil
}

// Search returns one page of the user's contacts matching the request
// filters plus the paging metadata. An empty filter set matches all of the
// user's contacts; the requested page is echoed back even when it lies
// beyond the last page.
func (c *contactService) Search(ctx context.Context, user models.User, request models.ContactSearchRequest) ([]models.ContactResponse, models.Paging, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid contact search request")
		return nil, models.Paging{}, err
	}

	contacts, total, err := c.contactRepository.SearchContacts(ctx, user.Username, request)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("contact search ended with error")
		return nil, models.Paging{}, fmt.Errorf("contact search ended with error: %w", err)
	}

	responses := make([]models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, models.ToContactResponse(contact))
	}

	return responses, models.NewPaging(request.Page, request.Size, total), nil
}
