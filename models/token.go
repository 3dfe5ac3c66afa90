package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the JWT claim set carried by every session token.
// The username travels in the standard "sub" claim; the display name is a
// private claim so the boundary can echo it without a storage round trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Name is the display name of the user the token was issued for.
	Name string `json:"name"`
}

// Token wraps a verified JWT session token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// Username and Name are parsed copies of the claims, populated during token
// generation or verification so callers do not re-parse the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the principal identifier extracted from the "sub" claim.
	Username string `json:"-"`

	// Name is the display name extracted from the private "name" claim.
	Name string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
