// Package validation は入力フォームのバリデーションルールを提供する。
package validation

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// バリデーション正規表現
var (
	// EmailPattern はログインユーザー名（メールアドレス）形式
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// 定数
const (
	// MaxNameLength はパートナー名・国名の最大長
	MaxNameLength = 100
)

// validate は共有のバリデータインスタンス
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// エラーメッセージのフィールド名にはlabelタグを使う
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	mustRegister(v, "login_email", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseCategory(fl.Field().String())
		return ok
	})
	mustRegister(v, "rate", func(fl validator.FieldLevel) bool {
		_, err := model.ParseRate(fl.Field().String())
		return err == nil
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
