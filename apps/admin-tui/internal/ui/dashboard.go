package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Tab はダッシュボードのタブ（メニュー項目）を表す。
type Tab struct {
	Label       string
	Description string
	Key         rune
	Action      func()
}

// ダッシュボードのタブ順序
const (
	TabOpcos = iota
	TabPartners
	TabPartnerTariffs
	TabOpcoTariffs
	TabExport
	TabLogout
)

// DefaultTabs はダッシュボードのタブを表示順で返す。Actionは呼び出し側で設定する。
func DefaultTabs() []Tab {
	return []Tab{
		TabOpcos:          {Label: "Opcos", Description: "Countries and their categories", Key: '1'},
		TabPartners:       {Label: "Partners", Description: "Roaming partners with their owning country", Key: '2'},
		TabPartnerTariffs: {Label: "Partner Tariffs", Description: "Prepaid rates per partner", Key: '3'},
		TabOpcoTariffs:    {Label: "Opco Tariffs", Description: "Prepaid rates per country", Key: '4'},
		TabExport:         {Label: "Export", Description: "Write CSV snapshots", Key: '5'},
		TabLogout:         {Label: "Logout", Description: "End the session and return to login", Key: 'q'},
	}
}

// Dashboard はログイン後のメニュー画面を表す。
type Dashboard struct {
	list   *tview.List
	tabs   []Tab
	onQuit func()
}

// NewDashboard は新しいDashboardを生成する。
func NewDashboard(tabs []Tab) *Dashboard {
	list := tview.NewList().
		ShowSecondaryText(true)

	d := &Dashboard{list: list, tabs: tabs}
	for _, tab := range tabs {
		list.AddItem(tab.Label, tab.Description, tab.Key, tab.Action)
	}

	list.SetTitle(" Dashboard ").
		SetTitleAlign(tview.AlignCenter).
		SetBorder(true).
		SetBorderColor(ColorBorder)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			if d.onQuit != nil {
				d.onQuit()
			}
			return nil
		}
		return event
	})
	return d
}

// SetOnQuit はEsc押下時のコールバックを設定する。
func (d *Dashboard) SetOnQuit(handler func()) {
	d.onQuit = handler
}

// GetList は内部のtview.Listを返す。
func (d *Dashboard) GetList() *tview.List {
	return d.list
}
