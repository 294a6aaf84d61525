package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// StartupErrorScreen は起動時に外部サービスへ接続できなかったことを表示する。
type StartupErrorScreen struct {
	modal *tview.Modal
}

// NewStartupErrorScreen は新しいStartupErrorScreenを生成する。
// serviceは接続先の名前、hintsは確認事項の一覧。
func NewStartupErrorScreen(service, errorMessage string, hints []string, onRetry, onExit func()) *StartupErrorScreen {
	text := "Failed to connect to " + service + ":\n\n" + errorMessage
	if len(hints) > 0 {
		text += "\n\nPlease check:"
		for _, h := range hints {
			text += "\n- " + h
		}
	}

	modal := tview.NewModal().
		SetText(text).
		AddButtons([]string{"Retry", "Exit"}).
		SetDoneFunc(func(_ int, label string) {
			if label == "Retry" {
				if onRetry != nil {
					onRetry()
				}
				return
			}
			if onExit != nil {
				onExit()
			}
		})

	modal.SetTitle(" Connection Error ").
		SetBorder(true).
		SetBorderColor(tcell.ColorRed)
	modal.SetBackgroundColor(tcell.ColorBlack)

	return &StartupErrorScreen{modal: modal}
}

// GetModal は内部のtview.Modalを返す。
func (s *StartupErrorScreen) GetModal() *tview.Modal {
	return s.modal
}
