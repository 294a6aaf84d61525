// Package format は表示用の文字列整形を提供する。
package format

import "unicode/utf8"

// Truncate は文字列を指定した長さに切り詰める。
// 切り詰めた場合は末尾に "..." を付加する。
func Truncate(s string, maxLen int) string {
	if maxLen <= 3 {
		if maxLen <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= maxLen {
			return s
		}
		return string(runes[:maxLen])
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
