package validation

import (
	"strings"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// CountryInput は国フォームの入力データを表す。
type CountryInput struct {
	Name     string `label:"Country Name" validate:"required,max=100"`
	Category string `label:"Category" validate:"required,category"`
}

// ValidateCountry は国入力のバリデーションを行う。
func ValidateCountry(input *CountryInput) []error {
	return structErrors(input)
}

// BuildCountry は入力データを検証し、作成・更新リクエストボディを組み立てる。
// カテゴリはラベルでも値でも受け付け、値に正規化する。
func BuildCountry(input *CountryInput) (*model.CountryInput, []error) {
	in := &CountryInput{
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
	}
	if errs := ValidateCountry(in); len(errs) > 0 {
		return nil, errs
	}
	category, _ := model.ParseCategory(in.Category)
	return &model.CountryInput{Name: in.Name, Category: category}, nil
}
