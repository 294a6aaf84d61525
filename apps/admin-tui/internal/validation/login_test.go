package validation

import (
	"errors"
	"testing"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name       string
		input      LoginInput
		wantFields []string
	}{
		{"valid", LoginInput{Username: "ops@example.com", Password: "secret"}, nil},
		{"missing both", LoginInput{}, []string{"Username", "Password"}},
		{"not an email", LoginInput{Username: "ops", Password: "x"}, []string{"Username"}},
		{"no domain dot", LoginInput{Username: "ops@example", Password: "x"}, []string{"Username"}},
		{"space in email", LoginInput{Username: "o ps@example.com", Password: "x"}, []string{"Username"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(&tt.input)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("ValidateLogin() errors = %v, want fields %v", errs, tt.wantFields)
			}
			for i, err := range errs {
				var ve *apperr.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error %d is %T, want *apperr.ValidationError", i, err)
				}
				if ve.Field != tt.wantFields[i] {
					t.Errorf("error %d field = %q, want %q", i, ve.Field, tt.wantFields[i])
				}
			}
		})
	}
}

func TestNormalizeLoginInput(t *testing.T) {
	got := NormalizeLoginInput(&LoginInput{Username: "  ops@example.com ", Password: " pw "})
	if got.Username != "ops@example.com" {
		t.Errorf("Username = %q", got.Username)
	}
	if got.Password != " pw " {
		t.Errorf("Password should be kept as is, got %q", got.Password)
	}
}

func TestJoin(t *testing.T) {
	errs := []error{
		apperr.NewValidationError("Partner Name", "required"),
		apperr.NewValidationError("MNC", "required"),
	}
	if got := Join(errs); got != "Partner Name: required; MNC: required" {
		t.Errorf("Join() = %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("Join(nil) = %q", got)
	}
}
