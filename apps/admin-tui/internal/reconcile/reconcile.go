// Package reconcile は個別に取得したパートナー・国コレクションを突き合わせる。
// 関数はいずれも入力のみに依存し、エラーを返さない。解決できない参照は番兵値に置き換える。
package reconcile

import (
	"strings"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Unknown は所属国を解決できなかった行の国名・カテゴリに使う番兵値。
const Unknown = "Unknown"

// MergePartnersWithCountries はパートナーごとに所属国を探し、一覧表示用の行を生成する。
// 所属国は、パートナーIDを所属一覧に含む最初の国とする。
// 出力はパートナーと同じ件数・順序で、所属国がない行は国名・カテゴリともUnknownになる。
func MergePartnersWithCountries(partners []model.Partner, countries []model.Country) []model.MergedPartner {
	return NewIndex(countries).Merge(partners)
}

// FilterCountriesByCategory はカテゴリが一致する国のみを返す。
// 比較は大文字小文字を区別しない完全一致。該当がなければ空スライスを返す。
func FilterCountriesByCategory(countries []model.Country, category string) []model.Country {
	out := make([]model.Country, 0, len(countries))
	for _, c := range countries {
		if c.Category.Matches(category) {
			out = append(out, c)
		}
	}
	return out
}

// MapAPICountryToStaticDisplay はバックエンドの国レコードに対応する静的表示エントリを探す。
// 国名の大文字小文字を区別しない一致で照合し、見つからなければfalseを返す。
func MapAPICountryToStaticDisplay(country model.Country, static []countrydata.Entry) (countrydata.Entry, bool) {
	for _, e := range static {
		if strings.EqualFold(e.Label, country.Name) {
			return e, true
		}
	}
	return countrydata.Entry{}, false
}

// CountryOptions はカテゴリで絞り込んだ国を静的表示エントリに変換する。
// 静的リストに存在しない国は選択肢から除外する。
func CountryOptions(countries []model.Country, category string, static []countrydata.Entry) []countrydata.Entry {
	filtered := FilterCountriesByCategory(countries, category)
	out := make([]countrydata.Entry, 0, len(filtered))
	for _, c := range filtered {
		if e, ok := MapAPICountryToStaticDisplay(c, static); ok {
			out = append(out, e)
		}
	}
	return out
}

// ResolveCountryID は選択された表示ラベルからバックエンドの国IDを求める。
// 国名の大文字小文字を区別しない一致で照合する。
func ResolveCountryID(label string, countries []model.Country) (int64, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	for _, c := range countries {
		if strings.EqualFold(c.Name, label) {
			return c.ID, true
		}
	}
	return 0, false
}
