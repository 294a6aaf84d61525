package validation

import (
	"strings"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// PartnerInput はパートナーフォームの入力データを表す。
// Countryは国選択で選ばれた表示ラベル。MCC・MNC・RDCはバックエンドの値をそのまま扱い、形式は問わない。
type PartnerInput struct {
	Name        string `label:"Partner Name" validate:"required,max=100"`
	Category    string `label:"Category" validate:"required,category"`
	Country     string `label:"Country" validate:"required"`
	Mechanism   string `label:"Mechanism" validate:"required,oneof=SRDC LBTR"`
	NetworkType string `label:"Network Type" validate:"required_if=Mechanism LBTR,omitempty,oneof=F P N"`
	MCC         string `label:"MCC" validate:"required"`
	MNC         string `label:"MNC" validate:"required"`
	RDC         string `label:"RDC" validate:"required_if=Mechanism SRDC"`
}

// ValidatePartner はパートナー入力のバリデーションを行う。
func ValidatePartner(input *PartnerInput) []error {
	return structErrors(input)
}

// NormalizePartnerInput は入力データを正規化する（前後空白除去、大文字化）。
// 精算方式に応じて使用しないフィールドはクリアする。
func NormalizePartnerInput(input *PartnerInput) *PartnerInput {
	out := &PartnerInput{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Country:     strings.TrimSpace(input.Country),
		Mechanism:   strings.ToUpper(strings.TrimSpace(input.Mechanism)),
		NetworkType: strings.ToUpper(strings.TrimSpace(input.NetworkType)),
		MCC:         strings.TrimSpace(input.MCC),
		MNC:         strings.TrimSpace(input.MNC),
		RDC:         strings.TrimSpace(input.RDC),
	}
	switch model.Mechanism(out.Mechanism) {
	case model.MechanismSRDC:
		out.NetworkType = ""
	case model.MechanismLBTR:
		out.RDC = ""
	}
	return out
}

// BuildPartner は入力データを検証し、バックエンドに送信するパートナーを組み立てる。
// 国ラベルはバックエンドの国一覧と大文字小文字を区別せずに照合する。
func BuildPartner(input *PartnerInput, countries []model.Country) (*model.Partner, []error) {
	in := NormalizePartnerInput(input)
	if errs := ValidatePartner(in); len(errs) > 0 {
		return nil, errs
	}

	countryID, ok := reconcile.ResolveCountryID(in.Country, countries)
	if !ok {
		return nil, []error{CountryNotResolved()}
	}

	p := &model.Partner{
		Name:        in.Name,
		Country:     model.CountryRef{ID: countryID},
		Mechanism:   model.Mechanism(in.Mechanism),
		NetworkType: model.NetworkType(in.NetworkType),
		MCC:         model.FlexString(in.MCC),
		MNC:         model.FlexString(in.MNC),
		RDC:         model.FlexString(in.RDC),
	}
	p.Normalize()
	return p, nil
}

// CountryNotResolved は国を解決できない場合のバリデーションエラーを返す。
func CountryNotResolved() error {
	return &resolveError{
		ValidationError: apperr.NewValidationError("Country", "Please select a valid country."),
		cause:           apperr.ErrCountryUnresolved,
	}
}

// resolveError は参照解決失敗を表すバリデーションエラー
type resolveError struct {
	*apperr.ValidationError
	cause error
}

func (e *resolveError) Unwrap() []error {
	return []error{e.ValidationError, e.cause}
}
