// Package export はCSVエクスポート画面を提供する。
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/exporter"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
)

// フォームのラベル
const (
	LabelResource = "Resource"
	LabelFile     = "Output File"
)

// Screen はエクスポート画面を表す。
type Screen struct {
	form        *tview.Form
	app         *ui.App
	exporter    *exporter.Exporter
	auditLogger *audit.Logger
	dir         string
	now         func() time.Time
	busy        bool
	onDone      func()
	onCancel    func()
}

// NewScreen は新しいScreenを生成する。dirは出力ファイルの既定ディレクトリ。
func NewScreen(app *ui.App, exp *exporter.Exporter, auditLogger *audit.Logger, dir string) *Screen {
	s := &Screen{
		app:         app,
		exporter:    exp,
		auditLogger: auditLogger,
		dir:         dir,
		now:         time.Now,
	}
	s.form = ui.NewForm(s.handleCancel)
	s.form.SetTitle(" Export CSV ")
	return s
}

// SetOnDone はエクスポート完了時のコールバックを設定する。
func (s *Screen) SetOnDone(handler func()) {
	s.onDone = handler
}

// SetOnCancel はキャンセル時のコールバックを設定する。
func (s *Screen) SetOnCancel(handler func()) {
	s.onCancel = handler
}

// GetForm は内部のtview.Formを返す。
func (s *Screen) GetForm() *tview.Form {
	return s.form
}

// Setup はフォームを初期状態に戻す。
func (s *Screen) Setup() {
	s.form.Clear(true)

	resources := exporter.Resources()
	labels := make([]string, 0, len(resources))
	for _, r := range resources {
		labels = append(labels, r.Label())
	}

	file := tview.NewInputField().SetLabel(LabelFile).SetFieldWidth(50)
	s.form.AddDropDown(LabelResource, labels, 0, func(_ string, index int) {
		if index >= 0 && index < len(resources) {
			file.SetText(s.DefaultPath(resources[index]))
		}
	})
	file.SetText(s.DefaultPath(resources[0]))
	s.form.AddFormItem(file)

	s.form.AddButton("Export", s.handleExport)
	s.form.AddButton("Cancel", s.handleCancel)
}

// DefaultPath はリソースに応じた既定の出力パスを返す。
func (s *Screen) DefaultPath(r exporter.Resource) string {
	return filepath.Join(s.dir, format.ExportFileName(string(r), s.now()))
}

// Selected は選択中のリソースと出力パスを返す。
func (s *Screen) Selected() (exporter.Resource, string, error) {
	r, err := exporter.ParseResource(ui.DropDownOption(s.form, LabelResource))
	if err != nil {
		return "", "", err
	}
	return r, ui.InputText(s.form, LabelFile), nil
}

// Export はCSVを書き出し、監査ログを出力する。
func (s *Screen) Export(ctx context.Context, r exporter.Resource, path string) (int, error) {
	n, err := s.exporter.ToFile(ctx, r, path)
	if err != nil {
		return 0, err
	}
	s.auditLogger.LogExport(r.AuditTarget(), n, path)
	return n, nil
}

func (s *Screen) handleExport() {
	if s.busy {
		return
	}
	r, path, err := s.Selected()
	if err != nil {
		s.app.GetStatusBar().ShowError(err.Error())
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Exporting " + r.Label() + "...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.ExportTimeout)
		defer cancel()
		n, err := s.Export(ctx, r, path)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowAPIError("Export failed", err)
				return
			}
			s.app.GetStatusBar().ShowSuccess(fmt.Sprintf("Exported %s to %s", format.Count(n, "row"), path))
			if s.onDone != nil {
				s.onDone()
			}
		})
	}()
}

func (s *Screen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
