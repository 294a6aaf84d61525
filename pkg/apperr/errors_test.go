package apperr

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		// 認証関連
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid credentials"},
		{"ErrNotLoggedIn", ErrNotLoggedIn, "not logged in"},
		// セッション関連
		{"ErrSessionNotFound", ErrSessionNotFound, "session not found"},
		{"ErrSessionExpired", ErrSessionExpired, "session expired"},
		// リソース関連
		{"ErrNotFound", ErrNotFound, "resource not found"},
		{"ErrConflict", ErrConflict, "resource conflict"},
		{"ErrCountryUnresolved", ErrCountryUnresolved, "country could not be resolved"},
		{"ErrPartnerUnresolved", ErrPartnerUnresolved, "partner could not be resolved"},
		// インフラ関連
		{"ErrValkeyConnection", ErrValkeyConnection, "valkey connection error"},
		{"ErrValkeyCommand", ErrValkeyCommand, "valkey command error"},
		{"ErrBackendCommunication", ErrBackendCommunication, "backend communication error"},
		{"ErrInvalidRequest", ErrInvalidRequest, "invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	allErrors := []error{
		ErrUnauthorized, ErrInvalidCredentials, ErrNotLoggedIn,
		ErrSessionNotFound, ErrSessionExpired,
		ErrNotFound, ErrConflict, ErrCountryUnresolved, ErrPartnerUnresolved,
		ErrValkeyConnection, ErrValkeyCommand, ErrBackendCommunication, ErrInvalidRequest,
	}

	for i, a := range allErrors {
		for j, b := range allErrors {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v and %v must be distinct", a, b)
			}
		}
	}
}
