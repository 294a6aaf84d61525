// Package tariff はパートナー料金表の管理画面を提供する。
package tariff

import (
	"context"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

const deleteDialogPage = "tariff-delete"

// ListScreen はパートナー料金表一覧画面を表す。
type ListScreen struct {
	list        *ui.ListView[model.Tariff]
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, service Service, auditLogger *audit.Logger, pageSize int) *ListScreen {
	list := ui.NewListView(app, "Partner Tariffs", pageSize, config.PageSizeOptions, []ui.Column[model.Tariff]{
		{Header: "Partner", Value: func(t model.Tariff) string { return format.Cell(t.PartnerName) }, MaxWidth: 32},
		{Header: "Country", Value: func(t model.Tariff) string { return format.Cell(t.CountryName) }},
		{Header: "Local", Value: func(t model.Tariff) string { return t.LocalCalls.String() }},
		{Header: "Receiving", Value: func(t model.Tariff) string { return t.ReceivingCalls.String() }},
		{Header: "Call back home", Value: func(t model.Tariff) string { return t.CallBackHome.String() }},
		{Header: "SMS", Value: func(t model.Tariff) string { return t.SendingSMS.String() }},
	})
	list.SetSearch("Partner Name", func(t model.Tariff) []string {
		return []string{t.PartnerName}
	})
	list.SetOnSearch(func(query string, n int) {
		auditLogger.LogSearch(audit.TargetTariff, query, n)
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

// List は内部の一覧ビューを返す。
func (s *ListScreen) List() *ui.ListView[model.Tariff] {
	return s.list
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.list.GetTable()
}

// Load は料金表一覧を取得して表示する。
func (s *ListScreen) Load(ctx context.Context) error {
	tariffs, err := api.FetchList(ctx, api.ResourceTariffs, s.service.ListTariffs)
	s.list.SetItems(tariffs)
	return err
}

// Reload はバックグラウンドで再取得し、完了後に一覧を更新する。
func (s *ListScreen) Reload() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.LoadTimeout)
		defer cancel()
		tariffs, err := api.FetchList(ctx, api.ResourceTariffs, s.service.ListTariffs)

		s.app.QueueUpdateDraw(func() {
			s.list.SetItems(tariffs)
			if err != nil {
				s.app.GetStatusBar().ShowAPIError("Failed to load tariffs", err)
				return
			}
			s.app.GetStatusBar().ShowSuccess(format.Count(len(tariffs), "tariff") + " loaded")
		})
	}()
}

func (s *ListScreen) confirmDelete(t model.Tariff) {
	dialog := ui.NewConfirmDialog(
		"Delete Tariff",
		"Are you sure you want to delete the tariff of\n\n"+t.PartnerName,
		func() {
			s.app.CloseModal(deleteDialogPage, s.GetTable())
			if err := s.Delete(t); err != nil {
				s.app.GetStatusBar().ShowAPIError("Failed to delete tariff", err)
				return
			}
			s.app.GetStatusBar().ShowSuccess("Tariff deleted: " + t.PartnerName)
			s.Reload()
		},
		func() {
			s.app.CloseModal(deleteDialogPage, s.GetTable())
		},
	)
	s.app.ShowModal(deleteDialogPage, dialog.GetModal())
}

// Delete は料金表を削除し、監査ログを出力する。
func (s *ListScreen) Delete(t model.Tariff) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	if err := s.service.DeleteTariff(ctx, t.ID); err != nil {
		return err
	}
	s.auditLogger.LogDelete(audit.TargetTariff, t.IDString(), t.PartnerName)
	return nil
}
