package validators

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

type ContactValidator struct {
}

// NewContactValidator returns a Validator covering the contact create, update
// and search request shapes.
func NewContactValidator() Validator {
	return &ContactValidator{}
}

func (v *ContactValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.ContactCreateRequest:
		return v.validateCreate(value)
	case *models.ContactCreateRequest:
		return v.validateCreate(*value)

	case models.ContactUpdateRequest:
		return v.validateUpdate(value)
	case *models.ContactUpdateRequest:
		return v.validateUpdate(*value)

	case models.ContactSearchRequest:
		return v.validateSearch(value)
	case *models.ContactSearchRequest:
		return v.validateSearch(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContactValidator) validateCreate(request models.ContactCreateRequest) error {
	if err := requiredString("firstName", request.FirstName, maxStringLen); err != nil {
		return err
	}
	return v.validateOptionalFields(request.LastName, request.Email, request.Phone)
}

func (v *ContactValidator) validateUpdate(request models.ContactUpdateRequest) error {
	if err := optionalString("firstName", request.FirstName, maxStringLen); err != nil {
		return err
	}
	return v.validateOptionalFields(request.LastName, request.Email, request.Phone)
}

func (v *ContactValidator) validateSearch(request models.ContactSearchRequest) error {
	if request.Page < 1 {
		return fieldError("page", "must be at least 1")
	}
	if request.Size < 1 || request.Size > 100 {
		return fieldError("size", "must be between 1 and 100")
	}
	return nil
}

func (v *ContactValidator) validateOptionalFields(lastName, email, phone *string) error {
	if err := optionalString("lastName", lastName, maxStringLen); err != nil {
		return err
	}
	if err := optionalString("email", email, maxEmailLen); err != nil {
		return err
	}
	if email != nil {
		if err := emailFormat("email", *email); err != nil {
			return err
		}
	}
	return optionalString("phone", phone, maxShortLen)
}
