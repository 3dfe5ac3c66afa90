package models

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier used during authentication
	// and as the owner key for contacts.
	Username string `json:"username"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never contain the plaintext password and is never
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// Token is the currently active session token, or nil when the user is
	// logged out. It is compared against the presented bearer token on every
	// authenticated request.
	Token *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserRegisterRequest is the request body of POST /api/v1/users/register.
type UserRegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserLoginRequest is the request body of POST /api/v1/users/login.
type UserLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdateRequest is the request body of PATCH /api/v1/users/current.
// Nil fields are left unchanged.
type UserUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserResponse is the outward representation of a user account.
// Token is only populated by login.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse maps a stored user to its response DTO.
// The password hash and the stored session token are never copied.
func ToUserResponse(user User) UserResponse {
	return UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}
