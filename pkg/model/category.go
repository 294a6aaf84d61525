// Package model はローミング管理コンソールで共有するデータモデルを提供する。
package model

import "strings"

// Category は国の地域・事業区分を表す。
// 国レコードとUIのカテゴリ選択で共通に使用する閉じた列挙型。
type Category string

// カテゴリ定義
const (
	CategoryAmerica      Category = "america"
	CategoryAfrica       Category = "africa"
	CategoryEurope       Category = "europe"
	CategoryAsia         Category = "asia"
	CategoryONA          Category = "ona"
	CategoryMTNOpcos     Category = "mtn_opcos"
	CategoryNorthAmerica Category = "north_america"
	CategorySouthAmerica Category = "south_america"
)

// allCategories は表示順のカテゴリ一覧
var allCategories = []Category{
	CategoryAmerica,
	CategoryAfrica,
	CategoryEurope,
	CategoryAsia,
	CategoryONA,
	CategoryMTNOpcos,
	CategoryNorthAmerica,
	CategorySouthAmerica,
}

var categoryLabels = map[Category]string{
	CategoryAmerica:      "America",
	CategoryAfrica:       "Rest of Africa",
	CategoryEurope:       "Europe",
	CategoryAsia:         "Asia",
	CategoryONA:          "ONA",
	CategoryMTNOpcos:     "MTN OPCOS",
	CategoryNorthAmerica: "North America & Canada",
	CategorySouthAmerica: "South America",
}

// Categories は全カテゴリを表示順で返す。
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoryLabels は全カテゴリの表示ラベルを表示順で返す。
func CategoryLabels() []string {
	labels := make([]string, 0, len(allCategories))
	for _, c := range allCategories {
		labels = append(labels, c.Label())
	}
	return labels
}

// ParseCategory は文字列をCategoryに変換する。
// 値・ラベルのいずれとも大文字小文字を区別せずに照合する。
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range allCategories {
		if strings.EqualFold(string(c), s) || strings.EqualFold(categoryLabels[c], s) {
			return c, true
		}
	}
	return "", false
}

// IsValid は定義済みのカテゴリかどうかを返す。
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label は表示ラベルを返す。未定義の値はそのまま返す。
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Matches は値が同一カテゴリかどうかを大文字小文字を区別せずに判定する。
// 前後の空白は除去しない。
func (c Category) Matches(value string) bool {
	return strings.EqualFold(string(c), value)
}
