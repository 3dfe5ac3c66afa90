package service

import (
	"context"
	"fmt"

	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/utils"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
	"github.com/ddenisov/go-contact-keeper/models"
)

// userService exposes the profile operations of the authenticated user.
// The principal has already been resolved by the boundary, so these methods
// operate on a trusted user record.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Current shapes the authenticated user into its response DTO.
func (u *userService) Current(ctx context.Context, user models.User) models.UserResponse {
	return models.ToUserResponse(user)
}

// Update applies a partial profile update: only the fields present in the
// request change, absent fields keep their stored values. A new password is
// re-hashed with bcrypt before persistence.
func (u *userService) Update(ctx context.Context, user models.User, request models.UserUpdateRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid user update request")
		return models.UserResponse{}, err
	}

	if request.Name != nil {
		user.Name = *request.Name
	}

	if request.Password != nil {
		passwordHash, err := utils.HashPassword(*request.Password)
		if err != nil {
			log.Err(err).Str("username", user.Username).Msg("password hashing failed")
			return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user update ended with error")
		return models.UserResponse{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return models.ToUserResponse(updatedUser), nil
}
