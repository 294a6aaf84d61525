// Package logging はログ関連のユーティリティを提供する。
package logging

import "strings"

// MaskToken はアクセストークンをマスキングする。
// 先頭4文字 + マスク + 末尾4文字
// 例: abcdefghijkl → abcd****ijkl
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskToken(token string, enabled bool) string {
	if !enabled {
		return token
	}
	return MaskPartial(token, 4, 4, '*')
}

// MaskEmail はメールアドレスのローカル部をマスキングする。
// 例: operator@example.com → o*******@example.com
func MaskEmail(email string, enabled bool) string {
	if !enabled {
		return email
	}
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return MaskPartial(email, 1, 0, '*')
	}
	return MaskPartial(email[:at], 1, 0, '*') + email[at:]
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, 0, length)
	result = append(result, runes[:keepPrefix]...)
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result = append(result, maskChar)
	}
	result = append(result, runes[length-keepSuffix:]...)

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// Token はトークンをマスキングする。
func (m *Masker) Token(token string) string {
	return MaskToken(token, m.enabled)
}

// Email はメールアドレスをマスキングする。
func (m *Masker) Email(email string) string {
	return MaskEmail(email, m.enabled)
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
