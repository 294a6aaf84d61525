package validation

import (
	"strings"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// TariffInput はパートナー料金表フォームの入力データを表す。
type TariffInput struct {
	Partner            string `label:"Partner" validate:"required"`
	LocalCalls         string `label:"Local Calls" validate:"required,rate"`
	ReceivingCalls     string `label:"Receiving Calls" validate:"required,rate"`
	CallBackHome       string `label:"Call Back Home" validate:"required,rate"`
	SendingSMS         string `label:"Sending SMS" validate:"required,rate"`
	DataRoaming        string `label:"Data Roaming" validate:"omitempty,rate"`
	MT                 string `label:"MT" validate:"omitempty,rate"`
	InternationalCalls string `label:"International Calls" validate:"omitempty,rate"`
	Satellite          string `label:"Satellite" validate:"omitempty,rate"`
}

// ValidateTariff はパートナー料金表入力のバリデーションを行う。
func ValidateTariff(input *TariffInput) []error {
	return structErrors(trimTariff(input))
}

// BuildTariff は入力データを検証し、料金表を組み立てる。
// partnerとcountryは呼び出し元で解決済みの参照。
func BuildTariff(input *TariffInput, partner model.Partner, country model.Country) (*model.Tariff, []error) {
	in := trimTariff(input)
	if errs := structErrors(in); len(errs) > 0 {
		return nil, errs
	}
	if country.ID == 0 {
		return nil, []error{apperr.NewValidationError("Partner", "owning country could not be resolved")}
	}

	t := &model.Tariff{
		Partner:     model.PartnerRef{ID: partner.ID},
		Country:     model.CountryRef{ID: country.ID},
		PartnerName: partner.Name,
		CountryName: country.Name,
	}
	t.LocalCalls, _ = model.ParseRate(in.LocalCalls)
	t.ReceivingCalls, _ = model.ParseRate(in.ReceivingCalls)
	t.CallBackHome, _ = model.ParseRate(in.CallBackHome)
	t.SendingSMS, _ = model.ParseRate(in.SendingSMS)
	t.DataRoaming, _ = model.ParseOptionalRate(in.DataRoaming)
	t.MT, _ = model.ParseOptionalRate(in.MT)
	t.InternationalCalls, _ = model.ParseOptionalRate(in.InternationalCalls)
	t.Satellite, _ = model.ParseOptionalRate(in.Satellite)
	return t, nil
}

// TariffInputFrom は既存の料金表から編集用の入力データを生成する。
func TariffInputFrom(t *model.Tariff) *TariffInput {
	return &TariffInput{
		Partner:            t.PartnerName,
		LocalCalls:         t.LocalCalls.String(),
		ReceivingCalls:     t.ReceivingCalls.String(),
		CallBackHome:       t.CallBackHome.String(),
		SendingSMS:         t.SendingSMS.String(),
		DataRoaming:        model.OptionalRateString(t.DataRoaming),
		MT:                 model.OptionalRateString(t.MT),
		InternationalCalls: model.OptionalRateString(t.InternationalCalls),
		Satellite:          model.OptionalRateString(t.Satellite),
	}
}

func trimTariff(input *TariffInput) *TariffInput {
	return &TariffInput{
		Partner:            strings.TrimSpace(input.Partner),
		LocalCalls:         strings.TrimSpace(input.LocalCalls),
		ReceivingCalls:     strings.TrimSpace(input.ReceivingCalls),
		CallBackHome:       strings.TrimSpace(input.CallBackHome),
		SendingSMS:         strings.TrimSpace(input.SendingSMS),
		DataRoaming:        strings.TrimSpace(input.DataRoaming),
		MT:                 strings.TrimSpace(input.MT),
		InternationalCalls: strings.TrimSpace(input.InternationalCalls),
		Satellite:          strings.TrimSpace(input.Satellite),
	}
}

// OpcoTariffInput はOPCO料金表フォームの入力データを表す。
// Countryは国選択で選ばれた表示ラベル。
type OpcoTariffInput struct {
	Country            string `label:"Country" validate:"required"`
	LocalCalls         string `label:"Local Calls" validate:"required,rate"`
	ReceivingCalls     string `label:"Receiving Calls" validate:"required,rate"`
	CallbackHome       string `label:"Callback Home" validate:"required,rate"`
	SMS                string `label:"SMS" validate:"required,rate"`
	RowMin             string `label:"ROW Min" validate:"omitempty,rate"`
	MTNMin             string `label:"MTN Min" validate:"omitempty,rate"`
	Satellite          string `label:"Satellite" validate:"omitempty,rate"`
	Data               string `label:"Data" validate:"omitempty,rate"`
	InternationalCalls string `label:"International Calls" validate:"omitempty,rate"`
}

// ValidateOpcoTariff はOPCO料金表入力のバリデーションを行う。
func ValidateOpcoTariff(input *OpcoTariffInput) []error {
	return structErrors(trimOpcoTariff(input))
}

// BuildOpcoTariff は入力データを検証し、OPCO料金表を組み立てる。
// 国ラベルはバックエンドの国一覧と照合する。
func BuildOpcoTariff(input *OpcoTariffInput, countries []model.Country) (*model.OpcoTariff, []error) {
	in := trimOpcoTariff(input)
	if errs := structErrors(in); len(errs) > 0 {
		return nil, errs
	}

	var country *model.Country
	for i := range countries {
		if strings.EqualFold(countries[i].Name, in.Country) {
			country = &countries[i]
			break
		}
	}
	if country == nil {
		return nil, []error{CountryNotResolved()}
	}

	t := &model.OpcoTariff{
		Country:     model.CountryRef{ID: country.ID},
		CountryName: country.Name,
	}
	t.LocalCalls, _ = model.ParseRate(in.LocalCalls)
	t.ReceivingCalls, _ = model.ParseRate(in.ReceivingCalls)
	t.CallbackHome, _ = model.ParseRate(in.CallbackHome)
	t.SMS, _ = model.ParseRate(in.SMS)
	t.RowMin, _ = model.ParseOptionalRate(in.RowMin)
	t.MTNMin, _ = model.ParseOptionalRate(in.MTNMin)
	t.Satellite, _ = model.ParseOptionalRate(in.Satellite)
	t.Data, _ = model.ParseOptionalRate(in.Data)
	t.InternationalCalls, _ = model.ParseOptionalRate(in.InternationalCalls)
	return t, nil
}

// OpcoTariffInputFrom は既存のOPCO料金表から編集用の入力データを生成する。
func OpcoTariffInputFrom(t *model.OpcoTariff) *OpcoTariffInput {
	return &OpcoTariffInput{
		Country:            t.CountryName,
		LocalCalls:         t.LocalCalls.String(),
		ReceivingCalls:     t.ReceivingCalls.String(),
		CallbackHome:       t.CallbackHome.String(),
		SMS:                t.SMS.String(),
		RowMin:             model.OptionalRateString(t.RowMin),
		MTNMin:             model.OptionalRateString(t.MTNMin),
		Satellite:          model.OptionalRateString(t.Satellite),
		Data:               model.OptionalRateString(t.Data),
		InternationalCalls: model.OptionalRateString(t.InternationalCalls),
	}
}

func trimOpcoTariff(input *OpcoTariffInput) *OpcoTariffInput {
	return &OpcoTariffInput{
		Country:            strings.TrimSpace(input.Country),
		LocalCalls:         strings.TrimSpace(input.LocalCalls),
		ReceivingCalls:     strings.TrimSpace(input.ReceivingCalls),
		CallbackHome:       strings.TrimSpace(input.CallbackHome),
		SMS:                strings.TrimSpace(input.SMS),
		RowMin:             strings.TrimSpace(input.RowMin),
		MTNMin:             strings.TrimSpace(input.MTNMin),
		Satellite:          strings.TrimSpace(input.Satellite),
		Data:               strings.TrimSpace(input.Data),
		InternationalCalls: strings.TrimSpace(input.InternationalCalls),
	}
}
