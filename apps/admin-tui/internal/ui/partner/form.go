package partner

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/validation"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelName        = "Partner Name"
	LabelMechanism   = "Mechanism"
	LabelNetworkType = "Network Type"
	LabelMCC         = "MCC"
	LabelMNC         = "MNC"
	LabelRDC         = "RDC (%)"
)

// FormScreen はパートナー登録/編集画面を表す。
// 精算方式がSRDCならRDC、LBTRならNetwork Typeのみ入力できる。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
	static      []countrydata.Entry
	snapshot    *reconcile.Snapshot
	picker      *ui.CountryPicker
	mechanism   *tview.DropDown
	networkType *tview.DropDown
	rdc         *tview.InputField
	editID      int64
	onSave      func()
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
// snapshotは国の選択肢と所属国の解決に使う直近の取得結果。
func NewFormScreen(app *ui.App, service Service, auditLogger *audit.Logger, static []countrydata.Entry, snapshot *reconcile.Snapshot) *FormScreen {
	s := &FormScreen{
		app:         app,
		service:     service,
		auditLogger: auditLogger,
		static:      static,
		snapshot:    snapshot,
	}
	s.form = ui.NewForm(s.handleCancel)
	return s
}

// SetOnSave は保存時のコールバックを設定する。
func (s *FormScreen) SetOnSave(handler func()) {
	s.onSave = handler
}

// SetOnCancel はキャンセル時のコールバックを設定する。
func (s *FormScreen) SetOnCancel(handler func()) {
	s.onCancel = handler
}

// GetForm は内部のtview.Formを返す。
func (s *FormScreen) GetForm() *tview.Form {
	return s.form
}

// SetupCreate は新規作成モードでフォームをセットアップする。
func (s *FormScreen) SetupCreate() {
	s.editID = 0
	s.build(" Add Partner ", model.Partner{Mechanism: model.MechanismSRDC}, nil)
}

// SetupEdit は編集モードでフォームをセットアップする。
// パートナーはバックエンドから取得し直し、所属国を選択状態にする。
func (s *FormScreen) SetupEdit(ctx context.Context, id int64) error {
	p, err := s.service.GetPartner(ctx, id)
	if err != nil {
		return err
	}
	s.editID = id

	var owner *model.Country
	if c, ok := s.snapshot.Index.CountryForPartner(*p, s.snapshot.Countries); ok {
		owner = &c
	}
	s.build(" Edit Partner ", *p, owner)
	return nil
}

func (s *FormScreen) build(title string, p model.Partner, owner *model.Country) {
	s.form.Clear(true)
	s.form.SetTitle(title)

	s.form.AddInputField(LabelName, p.Name, 40, nil, nil)

	s.picker = ui.NewCountryPicker(s.snapshot.Countries, s.static)
	s.picker.AddTo(s.form)
	if owner != nil {
		s.picker.Select(owner.Category, owner.Name)
	}

	s.networkType = tview.NewDropDown().SetLabel(LabelNetworkType)
	s.networkType.SetOptions(networkTypeOptions(), nil)
	s.networkType.SetCurrentOption(ui.IndexOf(networkTypeOptions(), string(p.NetworkType)))

	s.rdc = tview.NewInputField().
		SetLabel(LabelRDC).
		SetText(p.RDC.String()).
		SetFieldWidth(10)

	s.mechanism = tview.NewDropDown().SetLabel(LabelMechanism)
	s.mechanism.SetOptions(mechanismOptions(), func(option string, _ int) {
		s.toggleMechanism(model.Mechanism(option))
	})

	s.form.AddFormItem(s.mechanism)
	s.form.AddFormItem(s.networkType)
	s.form.AddInputField(LabelMCC, p.MCC.String(), 5, nil, nil)
	s.form.AddInputField(LabelMNC, p.MNC.String(), 5, nil, nil)
	s.form.AddFormItem(s.rdc)

	// 選択時のコールバックで入力可否を切り替える
	s.mechanism.SetCurrentOption(ui.IndexOf(mechanismOptions(), string(p.Mechanism)))
	s.toggleMechanism(p.Mechanism)

	s.form.AddButton("Save", s.handleSave)
	s.form.AddButton("Cancel", s.handleCancel)
}

// toggleMechanism は精算方式に応じてRDCとNetwork Typeの入力可否を切り替える。
func (s *FormScreen) toggleMechanism(m model.Mechanism) {
	s.rdc.SetDisabled(m != model.MechanismSRDC)
	s.networkType.SetDisabled(m != model.MechanismLBTR)
}

// Input はフォームの入力内容を返す。
func (s *FormScreen) Input() *validation.PartnerInput {
	return &validation.PartnerInput{
		Name:        ui.InputText(s.form, LabelName),
		Category:    s.picker.Category(),
		Country:     s.picker.CountryName(),
		Mechanism:   ui.DropDownOption(s.form, LabelMechanism),
		NetworkType: ui.DropDownOption(s.form, LabelNetworkType),
		MCC:         ui.InputText(s.form, LabelMCC),
		MNC:         ui.InputText(s.form, LabelMNC),
		RDC:         s.rdc.GetText(),
	}
}

// Picker は国選択を返す。
func (s *FormScreen) Picker() *ui.CountryPicker {
	return s.picker
}

func (s *FormScreen) handleSave() {
	p, errs := validation.BuildPartner(s.Input(), s.snapshot.Countries)
	if len(errs) > 0 {
		s.app.GetStatusBar().ShowError("Validation error: " + validation.Join(errs))
		return
	}
	if err := s.Save(p); err != nil {
		s.app.GetStatusBar().ShowAPIError("Failed to save partner", err)
		return
	}
	if s.onSave != nil {
		s.onSave()
	}
}

// Save はパートナーを登録または更新し、監査ログを出力する。
func (s *FormScreen) Save(p *model.Partner) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()

	if s.editID != 0 {
		p.ID = s.editID
		updated, err := s.service.UpdatePartner(ctx, p)
		if err != nil {
			return err
		}
		s.auditLogger.LogUpdate(audit.TargetPartner, strconv.FormatInt(updated.ID, 10), updated.Name)
		s.app.GetStatusBar().ShowSuccess("Partner updated: " + updated.Name)
		return nil
	}

	created, err := s.service.CreatePartner(ctx, p)
	if err != nil {
		return err
	}
	s.auditLogger.LogCreate(audit.TargetPartner, strconv.FormatInt(created.ID, 10), created.Name)
	s.app.GetStatusBar().ShowSuccess(fmt.Sprintf("Partner created: %s (#%d)", created.Name, created.ID))
	return nil
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}

func mechanismOptions() []string {
	out := make([]string, 0, 2)
	for _, m := range model.Mechanisms() {
		out = append(out, string(m))
	}
	return out
}

func networkTypeOptions() []string {
	out := make([]string, 0, 3)
	for _, n := range model.NetworkTypes() {
		out = append(out, string(n))
	}
	return out
}
