package model

import "strconv"

// Tariff はパートナー単位のプリペイド料金表を表す。
type Tariff struct {
	ID                 int64      `json:"tariffId,omitempty"`
	Partner            PartnerRef `json:"partner"`
	Country            CountryRef `json:"country"`
	PartnerName        string     `json:"partnerName,omitempty"`
	CountryName        string     `json:"countryName,omitempty"`
	LocalCalls         Rate       `json:"localCallsPrepaid"`
	ReceivingCalls     Rate       `json:"receivingCallsPrepaid"`
	CallBackHome       Rate       `json:"callBackHomePrepaid"`
	SendingSMS         Rate       `json:"sendingSmsPrepaid"`
	DataRoaming        *Rate      `json:"dataRoamingPrepaid,omitempty"`
	MT                 *Rate      `json:"mtPrepaid,omitempty"`
	InternationalCalls *Rate      `json:"internationalCallsPrepaid,omitempty"`
	Satellite          *Rate      `json:"satelitePrepaid,omitempty"`
}

// IDString はIDを文字列で返す。
func (t *Tariff) IDString() string {
	return strconv.FormatInt(t.ID, 10)
}

// OpcoTariff は国（OPCO）単位のプリペイド料金表を表す。
type OpcoTariff struct {
	ID                 int64      `json:"opcoTariffId,omitempty"`
	Country            CountryRef `json:"country"`
	CountryName        string     `json:"countryName,omitempty"`
	LocalCalls         Rate       `json:"localCallsPrepaid"`
	ReceivingCalls     Rate       `json:"receivingCallsPrepaid"`
	CallbackHome       Rate       `json:"callbackHomePrepaid"`
	SMS                Rate       `json:"smsPrepaid"`
	RowMin             *Rate      `json:"rowMinPrepaid,omitempty"`
	MTNMin             *Rate      `json:"mtnMinPrepaid,omitempty"`
	Satellite          *Rate      `json:"satellitePrepaid,omitempty"`
	Data               *Rate      `json:"dataPrepaid,omitempty"`
	InternationalCalls *Rate      `json:"internationalCallsPrepaid,omitempty"`
}

// IDString はIDを文字列で返す。
func (t *OpcoTariff) IDString() string {
	return strconv.FormatInt(t.ID, 10)
}
