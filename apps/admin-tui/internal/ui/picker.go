package ui

import (
	"strings"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelCategory = "Category"
	LabelCountry  = "Country"
)

// CountryPicker はカテゴリを選んでから国を選ぶ2段階の選択を管理する。
// 国の選択肢はバックエンドの国一覧をカテゴリで絞り込み、静的な表示リストにある国だけを国旗付きで並べる。
type CountryPicker struct {
	countries []model.Country
	static    []countrydata.Entry
	category  *tview.DropDown
	country   *tview.DropDown
	// names は国の選択肢に対応する国名
	names []string
}

// NewCountryPicker は新しいCountryPickerを生成する。
func NewCountryPicker(countries []model.Country, static []countrydata.Entry) *CountryPicker {
	p := &CountryPicker{
		countries: countries,
		static:    static,
		category:  tview.NewDropDown().SetLabel(LabelCategory).SetFieldWidth(28),
		country:   tview.NewDropDown().SetLabel(LabelCountry).SetFieldWidth(32),
	}
	p.category.SetOptions(model.CategoryLabels(), func(_ string, index int) {
		p.refreshCountries(index)
	})
	p.category.SetCurrentOption(-1)
	p.refreshCountries(-1)
	return p
}

// AddTo はカテゴリと国のドロップダウンをフォームに追加する。
func (p *CountryPicker) AddTo(form *tview.Form) {
	form.AddFormItem(p.category)
	form.AddFormItem(p.country)
}

// Select はカテゴリと国名を選択状態にする。国名は大文字小文字を区別せずに照合する。
// 選択肢にない国名の場合は国を未選択のままにする。
func (p *CountryPicker) Select(category model.Category, countryName string) {
	idx := -1
	for i, c := range model.Categories() {
		if c.Matches(string(category)) {
			idx = i
			break
		}
	}
	p.category.SetCurrentOption(idx)

	for i, name := range p.names {
		if strings.EqualFold(name, countryName) {
			p.country.SetCurrentOption(i)
			return
		}
	}
}

// Category は選択中のカテゴリ値を返す。未選択なら空文字。
func (p *CountryPicker) Category() string {
	idx, _ := p.category.GetCurrentOption()
	cats := model.Categories()
	if idx < 0 || idx >= len(cats) {
		return ""
	}
	return string(cats[idx])
}

// CountryName は選択中の国名を返す。未選択なら空文字。
func (p *CountryPicker) CountryName() string {
	idx, _ := p.country.GetCurrentOption()
	if idx < 0 || idx >= len(p.names) {
		return ""
	}
	return p.names[idx]
}

// Options は現在のカテゴリで選択できる国の表示ラベルを返す。
func (p *CountryPicker) Options() []string {
	labels := make([]string, 0, len(p.names))
	for _, name := range p.names {
		if e, ok := p.lookup(name); ok {
			labels = append(labels, e.DisplayLabel())
		}
	}
	return labels
}

func (p *CountryPicker) lookup(name string) (countrydata.Entry, bool) {
	for _, e := range p.static {
		if e.Label == name {
			return e, true
		}
	}
	return countrydata.Entry{}, false
}

// refreshCountries はカテゴリの選択に合わせて国の選択肢を作り直す。
// ドロップダウンはindex -1でも呼び出すことがあるため、その場合は選択肢を空にする。
// 大文字小文字違いで同じ静的エントリに対応する国は1件にまとめる。
func (p *CountryPicker) refreshCountries(categoryIndex int) {
	p.names = p.names[:0]
	cats := model.Categories()
	if categoryIndex >= 0 && categoryIndex < len(cats) {
		seen := make(map[string]bool)
		for _, e := range reconcile.CountryOptions(p.countries, string(cats[categoryIndex]), p.static) {
			if seen[e.Code] {
				continue
			}
			seen[e.Code] = true
			p.names = append(p.names, e.Label)
		}
	}
	p.country.SetOptions(p.Options(), nil)
	p.country.SetCurrentOption(-1)
}
