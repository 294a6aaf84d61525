// Package partner はローミングパートナー管理画面を提供する。
package partner

import (
	"context"
	"errors"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ListScreen はパートナー一覧画面を表す。
// 一覧の各行は所属国と突き合わせた結果で、所属国がない行はUnknownと表示する。
type ListScreen struct {
	list        *ui.ListView[model.MergedPartner]
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
	loader      *reconcile.Loader
	snapshot    *reconcile.Snapshot
}

// NewListScreen は新しいListScreenを生成する。
func NewListScreen(app *ui.App, service Service, auditLogger *audit.Logger, pageSize int) *ListScreen {
	list := ui.NewListView(app, "Partners", pageSize, config.PageSizeOptions, columns())
	list.SetSearch("Partner Name", func(row model.MergedPartner) []string {
		return []string{row.PartnerName}
	})
	list.SetOnSearch(func(query string, n int) {
		auditLogger.LogSearch(audit.TargetPartner, query, n)
	})

	s := &ListScreen{
		list:        list,
		app:         app,
		service:     service,
		auditLogger: auditLogger,
		loader:      reconcile.NewLoader(service),
		snapshot:    &reconcile.Snapshot{Index: reconcile.NewIndex(nil)},
	}
	list.SetOnRefresh(s.Reload)
	list.SetOnDelete(s.confirmDelete)
	return s
}

// nameWidth はパートナー名列の最大表示文字数。
const nameWidth = 32

func columns() []ui.Column[model.MergedPartner] {
	unknown := func(row model.MergedPartner) tcell.Color {
		if row.CountryName == reconcile.Unknown {
			return ui.ColorUnknown
		}
		return ui.ColorText
	}
	return []ui.Column[model.MergedPartner]{
		{Header: "ID", Value: func(r model.MergedPartner) string { return strconv.FormatInt(r.ID, 10) }},
		{Header: "Partner", Value: func(r model.MergedPartner) string { return r.PartnerName }, MaxWidth: nameWidth},
		{Header: "Country", Value: func(r model.MergedPartner) string { return r.CountryName }, Color: unknown},
		{Header: "Category", Value: func(r model.MergedPartner) string { return model.Category(r.Category).Label() }, Color: unknown},
		{Header: "Network Type", Value: func(r model.MergedPartner) string { return format.Cell(string(r.NetworkType)) }},
		{Header: "RDC", Value: func(r model.MergedPartner) string { return format.RDC(r.RDC) }},
	}
}

// List は内部の一覧ビューを返す。
func (s *ListScreen) List() *ui.ListView[model.MergedPartner] {
	return s.list
}

// GetTable は内部のtview.Tableを返す。
func (s *ListScreen) GetTable() *tview.Table {
	return s.list.GetTable()
}

// Snapshot は直近の取得結果を返す。フォームの国選択に使用する。
func (s *ListScreen) Snapshot() *reconcile.Snapshot {
	return s.snapshot
}

// Load はパートナーと国を取得して突き合わせる。
// 取得に失敗した側は空として扱い、エラーはそのまま返す。
func (s *ListScreen) Load(ctx context.Context) error {
	snap := s.loader.Load(ctx)
	s.Apply(snap)
	return snap.Err
}

// Apply は取得結果を一覧に反映する。
func (s *ListScreen) Apply(snap *reconcile.Snapshot) {
	s.snapshot = snap
	s.list.SetItems(snap.Merged)
}

// Reload はバックグラウンドで再取得し、完了後に一覧を更新する。
func (s *ListScreen) Reload() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.LoadTimeout)
		defer cancel()
		snap := s.loader.Load(ctx)

		s.app.QueueUpdateDraw(func() {
			s.Apply(snap)
			if snap.Err != nil {
				s.app.GetStatusBar().ShowAPIError("Failed to load partners", snap.Err)
				return
			}
			loaded := format.Count(len(snap.Merged), "partner") + " loaded"
			if n := len(snap.Index.Unresolved(snap.Partners)); n > 0 {
				s.app.GetStatusBar().ShowWarning(loaded + ", " + strconv.Itoa(n) + " without country")
				return
			}
			s.app.GetStatusBar().ShowSuccess(loaded)
		})
	}()
}

const deleteDialogPage = "partner-delete"

func (s *ListScreen) confirmDelete(row model.MergedPartner) {
	dialog := ui.NewConfirmDialog(
		"Delete Partner",
		"Are you sure you want to delete this partner?\n\n"+row.PartnerName,
		func() {
			s.app.CloseModal(deleteDialogPage, s.GetTable())
			if err := s.Delete(row); err != nil {
				s.app.GetStatusBar().ShowError(deleteMessage(err))
				return
			}
			s.app.GetStatusBar().ShowSuccess("Partner deleted: " + row.PartnerName)
			s.Reload()
		},
		func() {
			s.app.CloseModal(deleteDialogPage, s.GetTable())
		},
	)
	s.app.ShowModal(deleteDialogPage, dialog.GetModal())
}

// Delete はパートナーを削除し、監査ログを出力する。
func (s *ListScreen) Delete(row model.MergedPartner) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()
	if err := s.service.DeletePartner(ctx, row.ID); err != nil {
		return err
	}
	s.auditLogger.LogDelete(audit.TargetPartner, strconv.FormatInt(row.ID, 10), row.PartnerName)
	return nil
}

// deleteMessage は削除失敗時の文言を返す。料金表が紐づく場合はバックエンドが409を返す。
func deleteMessage(err error) string {
	if errors.Is(err, apperr.ErrConflict) {
		return "Partner has tariffs and cannot be deleted."
	}
	return "Failed to delete partner: " + api.UserMessage(err)
}
