package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddenisov/go-contact-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		request   models.UserRegisterRequest
		wantField string
	}{
		{
			name:    "valid request",
			request: models.UserRegisterRequest{Username: "eddy", Password: "rahasia", Name: "Eddy Khaerudin"},
		},
		{
			name:      "missing username",
			request:   models.UserRegisterRequest{Password: "rahasia", Name: "Eddy"},
			wantField: "username",
		},
		{
			name:      "missing password",
			request:   models.UserRegisterRequest{Username: "eddy", Name: "Eddy"},
			wantField: "password",
		},
		{
			name:      "missing name",
			request:   models.UserRegisterRequest{Username: "eddy", Password: "rahasia"},
			wantField: "name",
		},
		{
			name:      "username too long",
			request:   models.UserRegisterRequest{Username: strings.Repeat("a", 101), Password: "rahasia", Name: "Eddy"},
			wantField: "username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.request)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRequest)

			var fieldErr *FieldError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tt.wantField, fieldErr.Field)
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserLoginRequest{Username: "eddy", Password: "rahasia"}))

	err := v.Validate(ctx, models.UserLoginRequest{Username: "eddy"})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	err = v.Validate(ctx, models.UserLoginRequest{Password: "rahasia"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestUserValidator_Update(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	// both fields absent is a valid no-op update
	assert.NoError(t, v.Validate(ctx, models.UserUpdateRequest{}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdateRequest{Name: strPtr("Eddy")}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdateRequest{Password: strPtr("rahasia lagi")}))

	// a present field must still be non-empty and within bounds
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdateRequest{Name: strPtr("")}), ErrInvalidRequest)
	assert.ErrorIs(t, v.Validate(ctx, models.UserUpdateRequest{Password: strPtr(strings.Repeat("p", 101))}), ErrInvalidRequest)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserValidator_PointerRequests(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.UserRegisterRequest{Username: "eddy", Password: "rahasia", Name: "Eddy"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.UserLoginRequest{}), ErrInvalidRequest)
}
