package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/config"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
)

func newTestAuthenticator() *Authenticator {
	return New(&config.Config{
		AdminUsername:  "admin@example.com",
		AdminPassword:  "secret",
		AdminFirstName: "Ama",
		AdminLastName:  "Mensah",
	})
}

func TestLogin(t *testing.T) {
	a := newTestAuthenticator()

	res, err := a.Login("Admin@Example.com ", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Tokens.Access)
	assert.NotEqual(t, res.Tokens.Access, res.Tokens.Refresh)
	assert.Equal(t, "Ama Mensah", res.User.DisplayName())

	assert.True(t, a.Valid(res.Tokens.Access))
	assert.False(t, a.Valid(res.Tokens.Refresh))
	assert.False(t, a.Valid(""))

	a.Revoke(res.Tokens.Access)
	assert.False(t, a.Valid(res.Tokens.Access))
}

func TestLoginInvalidCredentials(t *testing.T) {
	a := newTestAuthenticator()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"wrong user", "ops@example.com", "secret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		})
	}
}
