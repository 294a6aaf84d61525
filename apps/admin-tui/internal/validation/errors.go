package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
)

// structErrors は構造体を検証し、フィールドごとのエラーに変換する。
func structErrors(s any) []error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, apperr.NewValidationError(fe.Field(), message(fe)))
	}
	return errs
}

// message はバリデーションタグに対応するメッセージを返す。
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "required_if":
		parts := strings.Fields(fe.Param())
		if len(parts) == 2 {
			return fmt.Sprintf("required for %s", parts[1])
		}
		return "required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "login_email":
		return "must be a valid e-mail address"
	case "category":
		return "must be a valid category"
	case "rate":
		return "must be a non-negative number"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

// Join は複数のバリデーションエラーを1行のメッセージにまとめる。
func Join(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
