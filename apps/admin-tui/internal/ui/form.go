package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewForm は枠付きのフォームを生成する。Escでは onCancel を呼び出す。
func NewForm(onCancel func()) *tview.Form {
	form := tview.NewForm()
	form.SetBorder(true).
		SetBorderColor(ColorBorder)
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			if onCancel != nil {
				onCancel()
			}
			return nil
		}
		return event
	})
	return form
}

// InputText はラベルに対応する入力フィールドの値を返す。存在しなければ空文字。
func InputText(form *tview.Form, label string) string {
	if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
		return field.GetText()
	}
	return ""
}

// SetInputText はラベルに対応する入力フィールドに値を設定する。
func SetInputText(form *tview.Form, label, value string) {
	if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
		field.SetText(value)
	}
}

// DropDownOption はラベルに対応するドロップダウンの選択中の文字列を返す。
// 未選択の場合は空文字。
func DropDownOption(form *tview.Form, label string) string {
	dd, ok := form.GetFormItemByLabel(label).(*tview.DropDown)
	if !ok {
		return ""
	}
	idx, option := dd.GetCurrentOption()
	if idx < 0 {
		return ""
	}
	return option
}

// IndexOf はoptions内のvalueの位置を返す。見つからなければ-1。
func IndexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
