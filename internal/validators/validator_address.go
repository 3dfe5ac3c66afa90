package validators

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

type AddressValidator struct {
}

// NewAddressValidator returns a Validator covering the address create and
// update request shapes.
func NewAddressValidator() Validator {
	return &AddressValidator{}
}

func (v *AddressValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.AddressCreateRequest:
		return v.validateCreate(value)
	case *models.AddressCreateRequest:
		return v.validateCreate(*value)

	case models.AddressUpdateRequest:
		return v.validateUpdate(value)
	case *models.AddressUpdateRequest:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCreate requires every address field; partial addresses are only
// representable through updates.
func (v *AddressValidator) validateCreate(request models.AddressCreateRequest) error {
	if err := requiredString("street", request.Street, maxStringLen); err != nil {
		return err
	}
	if err := requiredString("city", request.City, maxStringLen); err != nil {
		return err
	}
	if err := requiredString("province", request.Province, maxStringLen); err != nil {
		return err
	}
	if err := requiredString("country", request.Country, maxStringLen); err != nil {
		return err
	}
	return requiredString("postalCode", request.PostalCode, maxShortLen)
}

func (v *AddressValidator) validateUpdate(request models.AddressUpdateRequest) error {
	if err := optionalString("street", request.Street, maxStringLen); err != nil {
		return err
	}
	if err := optionalString("city", request.City, maxStringLen); err != nil {
		return err
	}
	if err := optionalString("province", request.Province, maxStringLen); err != nil {
		return err
	}
	if err := optionalString("country", request.Country, maxStringLen); err != nil {
		return err
	}
	return optionalString("postalCode", request.PostalCode, maxShortLen)
}
