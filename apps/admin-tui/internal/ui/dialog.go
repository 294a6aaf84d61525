package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ダイアログのボタン
const (
	ButtonYes      = "Yes"
	ButtonNo       = "No"
	ButtonContinue = "Continue"
	ButtonCancel   = "Cancel"
)

// ConfirmDialog は確認ダイアログを表す。
type ConfirmDialog struct {
	modal *tview.Modal
}

// NewConfirmDialog は新しいConfirmDialogを生成する。
func NewConfirmDialog(title, message string, onConfirm, onCancel func()) *ConfirmDialog {
	return &ConfirmDialog{
		modal: newChoiceModal(title, message, ButtonYes, ButtonNo, tcell.ColorWhite, onConfirm, onCancel),
	}
}

// NewWarningDialog は警告付きの確認ダイアログを生成する。
// 所属パートナーがいる国の削除など、影響の大きい操作の前に使用する。
func NewWarningDialog(title, message string, onConfirm, onCancel func()) *ConfirmDialog {
	modal := newChoiceModal(title, "⚠ WARNING ⚠\n\n"+message, ButtonContinue, ButtonCancel, tcell.ColorYellow, onConfirm, onCancel)
	modal.SetBackgroundColor(tcell.ColorBlack)
	return &ConfirmDialog{modal: modal}
}

// GetModal は内部のtview.Modalを返す。
func (d *ConfirmDialog) GetModal() *tview.Modal {
	return d.modal
}

func newChoiceModal(title, message, ok, cancel string, border tcell.Color, onConfirm, onCancel func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{ok, cancel}).
		SetDoneFunc(func(_ int, label string) {
			if label == ok {
				if onConfirm != nil {
					onConfirm()
				}
				return
			}
			// Escキーではlabelが空で呼ばれる
			if onCancel != nil {
				onCancel()
			}
		})

	modal.SetTitle(" " + title + " ").
		SetBorder(true).
		SetBorderColor(border)
	return modal
}

// InputDialog は1行入力のダイアログを表す。
type InputDialog struct {
	form *tview.Form
}

// NewInputDialog は新しいInputDialogを生成する。
func NewInputDialog(title, label, defaultValue string, onSubmit func(value string), onCancel func()) *InputDialog {
	form := tview.NewForm()
	input := tview.NewInputField().
		SetLabel(label).
		SetText(defaultValue).
		SetFieldWidth(30)

	submit := func() {
		if onSubmit != nil {
			onSubmit(input.GetText())
		}
	}
	cancel := func() {
		if onCancel != nil {
			onCancel()
		}
	}

	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			submit()
		case tcell.KeyEsc:
			cancel()
		}
	})

	form.AddFormItem(input)
	form.AddButton("OK", submit)
	form.AddButton("Cancel", cancel)
	form.SetCancelFunc(cancel)

	form.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignCenter).
		SetBorderColor(ColorBorderModal)

	return &InputDialog{form: form}
}

// GetForm は内部のtview.Formを返す。
func (d *InputDialog) GetForm() *tview.Form {
	return d.form
}

