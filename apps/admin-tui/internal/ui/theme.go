package ui

import "github.com/gdamore/tcell/v2"

// 色定義
var (
	ColorBorder      = tcell.ColorBlue
	ColorBorderModal = tcell.ColorWhite
	ColorHeader      = tcell.ColorYellow
	ColorText        = tcell.ColorWhite
	// ColorUnknown は所属国を解決できなかった行の色
	ColorUnknown = tcell.ColorOrange
	ColorTab     = tcell.ColorDarkBlue
)

// StyleBold は太字スタイルを適用した文字列を返す。
func StyleBold(text string) string {
	return "[::b]" + text + "[::-]"
}

// StyleDim は薄い色のスタイルを適用した文字列を返す。
func StyleDim(text string) string {
	return "[gray]" + text + "[-]"
}
