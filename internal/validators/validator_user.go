package validators

import (
	"context"

	"github.com/ddenisov/go-contact-keeper/models"
)

type UserValidator struct {
}

// NewUserValidator returns a Validator covering the register, login and
// profile-update request shapes.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.UserRegisterRequest:
		return v.validateRegister(value)
	case *models.UserRegisterRequest:
		return v.validateRegister(*value)

	case models.UserLoginRequest:
		return v.validateLogin(value)
	case *models.UserLoginRequest:
		return v.validateLogin(*value)

	case models.UserUpdateRequest:
		return v.validateUpdate(value)
	case *models.UserUpdateRequest:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(request models.UserRegisterRequest) error {
	if err := requiredString("username", request.Username, maxNameLen); err != nil {
		return err
	}
	if err := requiredString("password", request.Password, maxNameLen); err != nil {
		return err
	}
	return requiredString("name", request.Name, maxNameLen)
}

func (v *UserValidator) validateLogin(request models.UserLoginRequest) error {
	if err := requiredString("username", request.Username, maxNameLen); err != nil {
		return err
	}
	return requiredString("password", request.Password, maxNameLen)
}

// validateUpdate allows both fields to be absent: an empty update is a no-op,
// matching the partial-update contract.
func (v *UserValidator) validateUpdate(request models.UserUpdateRequest) error {
	if err := optionalString("name", request.Name, maxNameLen); err != nil {
		return err
	}
	return optionalString("password", request.Password, maxNameLen)
}
