package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown username
	// and a wrong password. The two cases are deliberately indistinguishable
	// so that login responses cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("username or password is invalid")

	// ErrTokenIsExpiredOrInvalid covers every token rejection: bad signature,
	// expiry, wrong issuer, a principal that no longer exists, and a token
	// revoked by logout. Callers receive a single undifferentiated 401.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session token
	// fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
