package validation

import "strings"

// LoginInput はログインフォームの入力データを表す。
type LoginInput struct {
	Username string `label:"Username" validate:"required,login_email"`
	Password string `label:"Password" validate:"required"`
}

// ValidateLogin はログイン入力のバリデーションを行う。
func ValidateLogin(input *LoginInput) []error {
	return structErrors(input)
}

// NormalizeLoginInput はユーザー名の前後空白を除去する。パスワードはそのまま保持する。
func NormalizeLoginInput(input *LoginInput) *LoginInput {
	return &LoginInput{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
	}
}
