package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// アクションキー
var (
	KeyHelp    = tcell.KeyF1
	KeyCreate  = tcell.KeyF2
	KeyEdit    = tcell.KeyF3
	KeyDelete  = tcell.KeyF4
	KeyRefresh = tcell.KeyF5
	KeyQuit    = tcell.KeyCtrlQ
	KeyLogout  = tcell.KeyCtrlL
)

// 代替の文字キー
const (
	RuneCreate   = 'n'
	RuneEdit     = 'e'
	RuneDelete   = 'd'
	RuneRefresh  = 'r'
	RuneSearch   = '/'
	RuneView     = 'v'
	RunePageSize = 's'
	RuneHelp     = '?'
	RuneBack     = 'q'
)

// KeyBinding はキーバインドの情報を表す。Keyが0の場合はRuneを使用する。
type KeyBinding struct {
	Key         tcell.Key
	Rune        rune
	Description string
}

// Label はキーの表示名を返す。
func (b KeyBinding) Label() string {
	if b.Key != 0 {
		return keyToString(b.Key)
	}
	return string(b.Rune)
}

// ListKeyBindings は一覧画面のキーバインドを返す。
// viewableがtrueの場合は詳細表示キーを含める。
func ListKeyBindings(viewable bool) []KeyBinding {
	bindings := []KeyBinding{
		{tcell.KeyPgUp, 0, "Previous page"},
		{tcell.KeyPgDn, 0, "Next page"},
		{0, RunePageSize, "Rows per page"},
		{KeyCreate, 0, "Add"},
		{KeyEdit, 0, "Edit"},
		{KeyDelete, 0, "Delete"},
		{KeyRefresh, 0, "Refresh"},
		{0, RuneSearch, "Search"},
	}
	if viewable {
		bindings = append(bindings, KeyBinding{tcell.KeyEnter, 0, "View"})
	}
	return append(bindings, KeyBinding{tcell.KeyEsc, 0, "Clear search/Back"})
}

// FormKeyBindings はフォーム画面のキーバインドを返す。
func FormKeyBindings() []KeyBinding {
	return []KeyBinding{
		{tcell.KeyTab, 0, "Next field"},
		{tcell.KeyBacktab, 0, "Previous field"},
		{tcell.KeyEnter, 0, "Select/Press button"},
		{tcell.KeyEsc, 0, "Cancel"},
	}
}

// GlobalKeyBindings はどの画面でも有効なキーバインドを返す。
func GlobalKeyBindings() []KeyBinding {
	return []KeyBinding{
		{KeyHelp, 0, "Help"},
		{KeyLogout, 0, "Logout"},
		{KeyQuit, 0, "Exit"},
	}
}

// FormatKeyBindingHint はキーバインドのヒント文字列を生成する。
func FormatKeyBindingHint(bindings []KeyBinding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Label()+":"+b.Description)
	}
	return strings.Join(parts, " | ")
}

// keyToString はキーコードを表示名に変換する。
func keyToString(key tcell.Key) string {
	switch key {
	case tcell.KeyF1:
		return "F1"
	case tcell.KeyF2:
		return "F2"
	case tcell.KeyF3:
		return "F3"
	case tcell.KeyF4:
		return "F4"
	case tcell.KeyF5:
		return "F5"
	case tcell.KeyPgUp:
		return "PgUp"
	case tcell.KeyPgDn:
		return "PgDn"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyBacktab:
		return "Shift+Tab"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEsc:
		return "Esc"
	case tcell.KeyCtrlQ:
		return "Ctrl+Q"
	case tcell.KeyCtrlL:
		return "Ctrl+L"
	default:
		return "?"
	}
}
