package ui

import (
	"testing"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

func pickerFixture() *CountryPicker {
	countries := []model.Country{
		{ID: 9, Name: "Ghana", Category: model.CategoryAfrica},
		{ID: 10, Name: "Atlantis", Category: model.CategoryAfrica},
		{ID: 11, Name: "France", Category: model.CategoryEurope},
		{ID: 12, Name: "kenya", Category: "AFRICA"},
	}
	static := []countrydata.Entry{
		{Code: "GH", Label: "Ghana"},
		{Code: "FR", Label: "France"},
		{Code: "KE", Label: "Kenya"},
	}
	return NewCountryPicker(countries, static)
}

func TestCountryPickerInitial(t *testing.T) {
	p := pickerFixture()
	if p.Category() != "" || p.CountryName() != "" {
		t.Errorf("initial selection = %q/%q, want empty", p.Category(), p.CountryName())
	}
	if len(p.Options()) != 0 {
		t.Errorf("Options() = %v, want none before category", p.Options())
	}
}

func TestCountryPickerSelect(t *testing.T) {
	p := pickerFixture()
	p.Select(model.CategoryAfrica, "KENYA")

	if p.Category() != "africa" {
		t.Errorf("Category() = %q, want africa", p.Category())
	}
	if p.CountryName() != "Kenya" {
		t.Errorf("CountryName() = %q, want Kenya", p.CountryName())
	}
	// Atlantisは静的リストにないため選択肢から除外される
	opts := p.Options()
	if len(opts) != 2 || opts[0] != "🇬🇭 Ghana" || opts[1] != "🇰🇪 Kenya" {
		t.Errorf("Options() = %v", opts)
	}
}

func TestCountryPickerCategoryChangeResetsCountry(t *testing.T) {
	p := pickerFixture()
	p.Select(model.CategoryAfrica, "Ghana")
	p.Select(model.CategoryEurope, "")

	if p.CountryName() != "" {
		t.Errorf("CountryName() = %q, want empty after category change", p.CountryName())
	}
	if opts := p.Options(); len(opts) != 1 || opts[0] != "🇫🇷 France" {
		t.Errorf("Options() = %v", opts)
	}
}

func TestCountryPickerMergesCaseVariants(t *testing.T) {
	countries := []model.Country{
		{ID: 9, Name: "Ghana", Category: model.CategoryAfrica},
		{ID: 13, Name: "GHANA", Category: model.CategoryAfrica},
	}
	static := []countrydata.Entry{{Code: "GH", Label: "Ghana"}}
	p := NewCountryPicker(countries, static)
	p.Select(model.CategoryAfrica, "ghana")

	if opts := p.Options(); len(opts) != 1 || opts[0] != "🇬🇭 Ghana" {
		t.Errorf("Options() = %v, want a single Ghana", opts)
	}
	if p.CountryName() != "Ghana" {
		t.Errorf("CountryName() = %q, want Ghana", p.CountryName())
	}
}

func TestCountryPickerAddTo(t *testing.T) {
	form := tview.NewForm()
	pickerFixture().AddTo(form)
	if form.GetFormItemCount() != 2 {
		t.Errorf("form items = %d, want 2", form.GetFormItemCount())
	}
	if form.GetFormItemByLabel(LabelCountry) == nil {
		t.Error("country drop-down not found")
	}
}
