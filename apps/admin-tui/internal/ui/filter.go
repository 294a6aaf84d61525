package ui

import (
	"strings"
)

// Filter は一覧画面のクライアント側検索を管理する。
// 検索は大文字小文字を区別しない部分一致。
type Filter struct {
	Query  string
	Active bool
	// Field は検索対象の表示名（"Partner Name" など）。
	Field string
}

// NewFilter は新しいFilterを生成する。
func NewFilter(field string) *Filter {
	return &Filter{Field: field}
}

// SetQuery はフィルタクエリを設定する。空白のみのクエリはフィルタ解除として扱う。
func (f *Filter) SetQuery(query string) {
	f.Query = strings.TrimSpace(query)
	f.Active = f.Query != ""
}

// Clear はフィルタをクリアする。
func (f *Filter) Clear() {
	f.SetQuery("")
}

// MatchAny は値のいずれかがクエリを含むかどうかを返す。
// フィルタが無効なら常にtrue。
func (f *Filter) MatchAny(values ...string) bool {
	if !f.Active {
		return true
	}
	query := strings.ToLower(f.Query)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// FilterItems はフィルタ条件にマッチするアイテムを元の順序のまま抽出する。
func FilterItems[T any](items []T, filter *Filter, getValues func(T) []string) []T {
	if !filter.Active {
		return items
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if filter.MatchAny(getValues(item)...) {
			result = append(result, item)
		}
	}
	return result
}

// FormatFilterStatus はフィルタの状態を文字列で返す。
func (f *Filter) FormatFilterStatus() string {
	if !f.Active {
		return ""
	}
	return f.Field + ": \"" + f.Query + "\""
}
