package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ddenisov/go-contact-keeper/internal/config"
	"github.com/ddenisov/go-contact-keeper/internal/logger"
	"github.com/ddenisov/go-contact-keeper/internal/store"
	"github.com/ddenisov/go-contact-keeper/internal/utils"
	"github.com/ddenisov/go-contact-keeper/internal/validators"
	"github.com/ddenisov/go-contact-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and JWT session token
// lifecycle using a UserRepository for persistence, bcrypt for password
// hashing and HMAC-SHA256 for token signing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the shape of register/login requests before any
	// persistence work.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request shape, hashes the password with bcrypt, and
// delegates persistence to the UserRepository. The plaintext password never
// leaves this method.
//
// Returns the response DTO or:
//   - a validators.FieldError if the request shape is invalid.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
func (a *authService) Register(ctx context.Context, request models.UserRegisterRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("invalid register request")
		return models.UserResponse{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Name:         request.Name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.ToUserResponse(registeredUser), nil
}

// Login authenticates an existing user and opens a session.
//
// An unknown username and a wrong password both surface as
// ErrInvalidCredentials so the two cases cannot be told apart. On success a
// signed token is issued and persisted as the user's current session token.
func (a *authService) Login(ctx context.Context, request models.UserLoginRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("invalid login request")
		return models.UserResponse{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", request.Username).Msg("login attempt for unknown username")
			return models.UserResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, request.Password) {
		log.Warn().Str("username", request.Username).Msg("login attempt with wrong password")
		return models.UserResponse{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Username, foundUser.Name, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("token creation failed")
		return models.UserResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if err = a.userRepository.UpdateToken(ctx, foundUser.Username, &token.SignedString); err != nil {
		log.Err(err).Str("username", request.Username).Msg("persisting session token failed")
		return models.UserResponse{}, fmt.Errorf("persisting session token failed: %w", err)
	}

	response := models.ToUserResponse(foundUser)
	response.Token = token.SignedString

	return response, nil
}

// Logout clears the stored session token, revoking the current session.
func (a *authService) Logout(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.UpdateToken(ctx, user.Username, nil); err != nil {
		log.Err(err).Str("username", user.Username).Msg("clearing session token failed")
		return fmt.Errorf("clearing session token failed: %w", err)
	}

	return nil
}

// VerifyToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry and issuer claim. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolvePrincipal turns verified token claims into a live user record.
//
// The stored session token must equal the presented one: a token issued
// before logout remains cryptographically valid until expiry but is rejected
// here, making logout a true revocation.
func (a *authService) ResolvePrincipal(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, token.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", token.Username).Msg("token subject no longer exists")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("username", token.Username).Msg("principal lookup failed")
		return models.User{}, fmt.Errorf("principal lookup failed: %w", err)
	}

	if foundUser.Token == nil || *foundUser.Token != token.SignedString {
		log.Warn().Str("username", token.Username).Msg("presented token does not match stored session token")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return foundUser, nil
}
