package ui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
)

// StatusType はステータスメッセージの種類を表す。
type StatusType int

const (
	// StatusInfo は情報メッセージ
	StatusInfo StatusType = iota
	// StatusSuccess は成功メッセージ
	StatusSuccess
	// StatusWarning は警告メッセージ
	StatusWarning
	// StatusError はエラーメッセージ
	StatusError
)

// statusDuration はメッセージを表示してからデフォルト表示に戻るまでの時間
const statusDuration = 5 * time.Second

// StatusBar は画面下部のステータスバーを管理する。
// ブラウザ版のアラートに相当する通知はすべてここに表示する。
type StatusBar struct {
	view        *tview.TextView
	app         *tview.Application
	mu          sync.Mutex
	clearTimer  *time.Timer
	defaultText string
}

// NewStatusBar は新しいStatusBarを生成する。
func NewStatusBar() *StatusBar {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)

	view.SetBackgroundColor(tcell.ColorDarkBlue)
	view.SetTextColor(tcell.ColorWhite)

	return &StatusBar{
		view:        view,
		defaultText: " " + FormatKeyBindingHint(GlobalKeyBindings()),
	}
}

// SetApp はtview.Applicationへの参照を設定する。
func (s *StatusBar) SetApp(app *tview.Application) {
	s.app = app
	s.ShowDefault()
}

// ShowDefault はデフォルトのステータスメッセージを表示する。
func (s *StatusBar) ShowDefault() {
	s.view.SetText(s.defaultText)
}

// Text は現在表示しているテキストを返す。
func (s *StatusBar) Text() string {
	return s.view.GetText(false)
}

// Show はステータスメッセージを表示し、一定時間後にデフォルトに戻す。
func (s *StatusBar) Show(statusType StatusType, message string) {
	s.ShowWithDuration(statusType, message, statusDuration)
}

// ShowWithDuration は指定された時間後にデフォルトに戻るステータスメッセージを表示する。
// durationが0以下の場合は次のメッセージまで表示し続ける。
func (s *StatusBar) ShowWithDuration(statusType StatusType, message string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}

	message = tview.Escape(message)
	var colored string
	switch statusType {
	case StatusSuccess:
		colored = "[green::b] ✓ " + message + " [-::-]"
	case StatusWarning:
		colored = "[yellow::b] ⚠ " + message + " [-::-]"
	case StatusError:
		colored = "[red::b] ✗ " + message + " [-::-]"
	default:
		colored = "[cyan] ℹ " + message + " [-]"
	}
	s.view.SetText(colored)

	if duration > 0 && s.app != nil {
		s.clearTimer = time.AfterFunc(duration, func() {
			s.app.QueueUpdateDraw(s.ShowDefault)
		})
	}
}

// ShowInfo は情報メッセージを表示する。
func (s *StatusBar) ShowInfo(message string) {
	s.Show(StatusInfo, message)
}

// ShowSuccess は成功メッセージを表示する。
func (s *StatusBar) ShowSuccess(message string) {
	s.Show(StatusSuccess, message)
}

// ShowWarning は警告メッセージを表示する。
func (s *StatusBar) ShowWarning(message string) {
	s.Show(StatusWarning, message)
}

// ShowError はエラーメッセージを表示する。
func (s *StatusBar) ShowError(message string) {
	s.Show(StatusError, message)
}

// ShowAPIError はAPIエラーを利用者向けの文言に変換して表示する。
func (s *StatusBar) ShowAPIError(action string, err error) {
	s.ShowError(action + ": " + api.UserMessage(err))
}
