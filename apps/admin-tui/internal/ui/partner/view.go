package partner

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ViewScreen はパートナー詳細画面を表す。
type ViewScreen struct {
	view     *tview.TextView
	service  Service
	snapshot *reconcile.Snapshot
	onBack   func()
}

// NewViewScreen は新しいViewScreenを生成する。
func NewViewScreen(service Service, snapshot *reconcile.Snapshot) *ViewScreen {
	view := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	view.SetTitle(" Partner Details ").
		SetBorder(true).
		SetBorderColor(ui.ColorBorder)

	s := &ViewScreen{view: view, service: service, snapshot: snapshot}
	view.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Key() == tcell.KeyEnter || event.Rune() == ui.RuneBack {
			if s.onBack != nil {
				s.onBack()
			}
			return nil
		}
		return event
	})
	return s
}

// SetOnBack は戻る時のコールバックを設定する。
func (s *ViewScreen) SetOnBack(handler func()) {
	s.onBack = handler
}

// GetView は内部のtview.TextViewを返す。
func (s *ViewScreen) GetView() *tview.TextView {
	return s.view
}

// Load はバックエンドからパートナーを取得して表示する。
func (s *ViewScreen) Load(ctx context.Context, id int64) error {
	p, err := s.service.GetPartner(ctx, id)
	if err != nil {
		return err
	}
	s.view.SetText(s.Render(p))
	return nil
}

// Render はパートナー詳細の表示テキストを生成する。
func (s *ViewScreen) Render(p *model.Partner) string {
	country := reconcile.Unknown
	if c, ok := s.snapshot.Index.CountryForPartner(*p, s.snapshot.Countries); ok {
		country = c.Name + " (" + c.Category.Label() + ")"
	}

	rows := [][2]string{
		{"Name", p.Name},
		{"Country", country},
		{"Mechanism", string(p.Mechanism)},
		{"Network Type", string(p.NetworkType)},
		{"RDC", p.RDC.String()},
		{"MCC", p.MCC.String()},
		{"MNC", p.MNC.String()},
	}
	var b strings.Builder
	for _, r := range rows {
		value := format.Cell(r[1])
		if r[0] == "RDC" {
			value = format.RDC(p.RDC)
		}
		fmt.Fprintf(&b, "[yellow]%-14s[-] %s\n", r[0], tview.Escape(value))
	}
	b.WriteString("\n" + ui.StyleDim("Esc: Back"))
	return b.String()
}
