// Package ui はローミング管理コンソールのTUI基盤を提供する。
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Title はヘッダーに表示するアプリケーション名
const Title = "Roaming Partners Admin"

// App はTUIアプリケーションを管理する。
// ヘッダー・ページ・ステータスバーの3段で構成する。
type App struct {
	app       *tview.Application
	header    *tview.TextView
	pages     *tview.Pages
	statusBar *StatusBar
	layout    *tview.Flex
}

// NewApp は新しいAppを生成する。
func NewApp() *App {
	app := tview.NewApplication()
	pages := tview.NewPages()
	statusBar := NewStatusBar()

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	header.SetBackgroundColor(ColorTab)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(pages, 0, 1, true).
		AddItem(statusBar.view, 1, 0, false)

	a := &App{
		app:       app,
		header:    header,
		pages:     pages,
		statusBar: statusBar,
		layout:    layout,
	}
	a.SetUser("")
	statusBar.SetApp(app)
	return a
}

// Run はアプリケーションを実行する。
func (a *App) Run() error {
	return a.app.SetRoot(a.layout, true).EnableMouse(false).Run()
}

// Stop はアプリケーションを停止する。
func (a *App) Stop() {
	a.app.Stop()
}

// SetUser はヘッダーにログインユーザー名を表示する。空文字の場合は未ログイン表示。
func (a *App) SetUser(name string) {
	text := " " + StyleBold(Title)
	if name != "" {
		text += "  " + StyleDim("signed in as") + " " + tview.Escape(name)
	}
	a.header.SetText(text)
}

// GetStatusBar はステータスバーを返す。
func (a *App) GetStatusBar() *StatusBar {
	return a.statusBar
}

// AddPage はページを追加する。
func (a *App) AddPage(name string, page tview.Primitive, resize, visible bool) {
	a.pages.AddPage(name, page, resize, visible)
}

// SwitchToPage は指定されたページに切り替える。
func (a *App) SwitchToPage(name string) {
	a.pages.SwitchToPage(name)
}

// HasPage は指定された名前のページがあるかどうかを返す。
func (a *App) HasPage(name string) bool {
	return a.pages.HasPage(name)
}

// RemovePage はページを削除する。
func (a *App) RemovePage(name string) {
	a.pages.RemovePage(name)
}

// ShowModal はページの上にモーダルを重ねて表示し、フォーカスを移す。
func (a *App) ShowModal(name string, p tview.Primitive) {
	a.pages.AddPage(name, p, true, true)
	a.app.SetFocus(p)
}

// CloseModal はモーダルを閉じ、フォーカスをbackに戻す。
func (a *App) CloseModal(name string, back tview.Primitive) {
	a.pages.RemovePage(name)
	if back != nil {
		a.app.SetFocus(back)
	}
}

// SetFocus はフォーカスを設定する。
func (a *App) SetFocus(p tview.Primitive) {
	a.app.SetFocus(p)
}

// QueueUpdateDraw はUIの更新をイベントループにキューイングする。
// ゴルーチンからUIを更新する場合は必ずこれを経由する。
func (a *App) QueueUpdateDraw(f func()) {
	a.app.QueueUpdateDraw(f)
}

// SetInputCapture はグローバルなキー入力ハンドラを設定する。
func (a *App) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	a.app.SetInputCapture(capture)
}

// Centered はプリミティブを指定サイズで画面中央に配置する。
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
