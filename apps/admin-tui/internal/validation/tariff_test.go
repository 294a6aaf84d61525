package validation

import (
	"errors"
	"testing"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

func validTariffInput() *TariffInput {
	return &TariffInput{
		Partner:        "MTN Ghana",
		LocalCalls:     "0.25",
		ReceivingCalls: "0.1",
		CallBackHome:   "0.5",
		SendingSMS:     "0.05",
	}
}

func TestValidateTariff(t *testing.T) {
	if errs := ValidateTariff(validTariffInput()); len(errs) != 0 {
		t.Fatalf("valid input errors = %v", errs)
	}

	in := validTariffInput()
	in.LocalCalls = ""
	in.SendingSMS = "-1"
	in.MT = "abc"
	got := fieldsOf(t, ValidateTariff(in))
	want := []string{"Local Calls", "Sending SMS", "MT"}
	if len(got) != len(want) {
		t.Fatalf("fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildTariff(t *testing.T) {
	partner := model.Partner{ID: 1, Name: "MTN Ghana"}
	country := model.Country{ID: 9, Name: "Ghana"}

	in := validTariffInput()
	in.DataRoaming = "1.2"

	tariff, errs := BuildTariff(in, partner, country)
	if len(errs) > 0 {
		t.Fatalf("BuildTariff() errors = %v", errs)
	}
	if tariff.Partner.ID != 1 || tariff.Country.ID != 9 {
		t.Errorf("refs = %+v / %+v", tariff.Partner, tariff.Country)
	}
	if tariff.LocalCalls != 0.25 || tariff.SendingSMS != 0.05 {
		t.Errorf("rates = %v / %v", tariff.LocalCalls, tariff.SendingSMS)
	}
	if tariff.DataRoaming == nil || *tariff.DataRoaming != 1.2 {
		t.Errorf("DataRoaming = %v", tariff.DataRoaming)
	}
	if tariff.MT != nil {
		t.Errorf("MT should be nil, got %v", *tariff.MT)
	}

	if _, errs := BuildTariff(validTariffInput(), partner, model.Country{}); len(errs) != 1 {
		t.Errorf("unresolved country errors = %v", errs)
	}
}

func TestTariffInputRoundTrip(t *testing.T) {
	dr := model.Rate(2)
	src := &model.Tariff{PartnerName: "Glo", LocalCalls: 0.3, ReceivingCalls: 0, CallBackHome: 1, SendingSMS: 0.01, DataRoaming: &dr}
	in := TariffInputFrom(src)
	if in.LocalCalls != "0.3" || in.DataRoaming != "2" || in.MT != "" {
		t.Errorf("TariffInputFrom() = %+v", in)
	}
	if errs := ValidateTariff(in); len(errs) != 0 {
		t.Errorf("round trip input invalid: %v", errs)
	}
}

func TestBuildOpcoTariff(t *testing.T) {
	countries := []model.Country{{ID: 9, Name: "Ghana"}}
	in := &OpcoTariffInput{
		Country:        "ghana",
		LocalCalls:     "0.2",
		ReceivingCalls: "0",
		CallbackHome:   "0.4",
		SMS:            "0.03",
	}

	got, errs := BuildOpcoTariff(in, countries)
	if len(errs) > 0 {
		t.Fatalf("BuildOpcoTariff() errors = %v", errs)
	}
	if got.Country.ID != 9 || got.CountryName != "Ghana" {
		t.Errorf("country = %+v %q", got.Country, got.CountryName)
	}

	in.Country = "Atlantis"
	_, errs = BuildOpcoTariff(in, countries)
	if len(errs) != 1 || !errors.Is(errs[0], apperr.ErrCountryUnresolved) {
		t.Errorf("errors = %v", errs)
	}

	// 必須項目がすべて揃っていること
	_, errs = BuildOpcoTariff(&OpcoTariffInput{Country: "Ghana"}, countries)
	if len(errs) != 4 {
		t.Errorf("missing fields errors = %v, want 4", errs)
	}
}

func TestOpcoTariffInputFrom(t *testing.T) {
	row := model.Rate(0.7)
	in := OpcoTariffInputFrom(&model.OpcoTariff{CountryName: "Ghana", SMS: 0.03, RowMin: &row})
	if in.Country != "Ghana" || in.SMS != "0.03" || in.RowMin != "0.7" || in.Data != "" {
		t.Errorf("OpcoTariffInputFrom() = %+v", in)
	}
}
