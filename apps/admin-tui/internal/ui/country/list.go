// Package country は国（OPCO）管理画面を提供する。
package country

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

const deleteDialogPage = "country-delete"

// ListScreen は国一覧画面を表す。
type ListScreen struct {
	list        *ui.ListView[model.Country]
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
}

// NewListScreen は新しいListScreenを生成する。
// staticは国名に国旗を添えるための静的リスト。
func NewListScreen(app *ui.App, service Service, auditLogger *audit.Logger, static []countrydata.Entry, pageSize int) *ListScreen {
	list := ui.NewListView(app, "Opcos", pageSize, config.PageSizeOptions, columns(static))
	// カテゴリは値（europe）でもラベル（Rest of Africa）でも検索できる
	list.SetSearch("Category", func(c model.Country) []string {
		return []string{string(c.Category), c.Category.Label()}
	})
	list.SetOnSearch(func(query string, n int) {
		auditLogger.LogSearch(audit.TargetCountry, query, n)
	})

	s := &ListScreen{
		list:        list,
		app:         app,
		service:     service,
		auditLogger: auditLogger,
	}
	list.SetOnRefresh(s.Reload)
	list.SetOnDelete(s.confirmDelete)
	return s
}

func columns(static []countrydata.Entry) []ui.Column[model.Country] {
	return []ui.Column[model.Country]{
		{Header: "ID", Value: func(c model.Country) string { return c.IDString() }},
		{Header: "Country", Value: func(c model.Country) string { return displayName(c, static) }},
		{Header: "Category", Value: func(c model.Country) string { return c.Category.Label() }},
		{Header: "Partners", Value: func(c model.Country) string { return strconv.Itoa(len(c.Partners)) }},
	}
}

// displayName は静的リストにある国なら国旗付きのラベルを返す。
func displayName(c model.Country, static []countrydata.Entry) string {
	if e, ok := reconcile.MapAPICountryToStaticDisplay(c, static); ok {
		return e.DisplayLabel()
	}
	return c.Name
}

// List は内部の一覧ビューを返す。
func (s *ListScreen) List() *ui.ListView[model.Country] {
	return s.list
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.list.GetTable()
}

// Load は国一覧を取得して表示する。失敗時は空の一覧を表示してエラーを返す。
func (s *ListScreen) Load(ctx context.Context) error {
	countries, err := api.FetchList(ctx, api.ResourceCountries, s.service.ListCountries)
	s.list.SetItems(countries)
	return err
}

// Reload はバックグラウンドで再取得し、完了後に一覧を更新する。
func (s *ListScreen) Reload() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.LoadTimeout)
		defer cancel()
		countries, err := api.FetchList(ctx, api.ResourceCountries, s.service.ListCountries)

		s.app.QueueUpdateDraw(func() {
			s.list.SetItems(countries)
			if err != nil {
				s.app.GetStatusBar().ShowAPIError("Failed to load countries", err)
				return
			}
			s.app.GetStatusBar().ShowSuccess(format.Count(len(countries), "opco") + " loaded")
		})
	}()
}

// confirmDelete は削除確認ダイアログを表示する。
// パートナーが所属している国は警告ダイアログにする。
func (s *ListScreen) confirmDelete(c model.Country) {
	onConfirm := func() {
		s.app.CloseModal(deleteDialogPage, s.GetTable())
		if err := s.Delete(c); err != nil {
			s.app.GetStatusBar().ShowAPIError("Failed to delete country", err)
			return
		}
		s.app.GetStatusBar().ShowSuccess("Country deleted: " + c.Name)
		s.Reload()
	}
	onCancel := func() {
		s.app.CloseModal(deleteDialogPage, s.GetTable())
	}

	var dialog *ui.ConfirmDialog
	if n := len(c.Partners); n > 0 {
		dialog = ui.NewWarningDialog("Delete Country",
			fmt.Sprintf("%s has %s.\nDelete it anyway?", c.Name, format.Count(n, "partner")),
			onConfirm, onCancel)
	} else {
		dialog = ui.NewConfirmDialog("Delete Country",
			"Are you sure you want to delete this country?\n\n"+c.Name,
			onConfirm, onCancel)
	}
	s.app.ShowModal(deleteDialogPage, dialog.GetModal())
}

// Delete は国を削除し、監査ログを出力する。
func (s *ListScreen) Delete(c model.Country) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	if err := s.service.DeleteCountry(ctx, c.ID); err != nil {
		return err
	}
	s.auditLogger.LogDelete(audit.TargetCountry, c.IDString(), c.Name)
	return nil
}
