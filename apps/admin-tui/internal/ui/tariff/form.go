package tariff

import (
	"context"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/validation"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelPartner            = "Partner"
	LabelLocalCalls         = "Local Calls"
	LabelReceivingCalls     = "Receiving Calls"
	LabelCallBackHome       = "Call Back Home"
	LabelSendingSMS         = "Sending SMS"
	LabelDataRoaming        = "Data Roaming"
	LabelMT                 = "MT"
	LabelInternationalCalls = "International Calls"
	LabelSatellite          = "Satellite"
)

// rateField は料金入力欄のラベルと入力データの対応
type rateField struct {
	label string
	field func(*validation.TariffInput) *string
}

var rateFields = []rateField{
	{LabelLocalCalls, func(in *validation.TariffInput) *string { return &in.LocalCalls }},
	{LabelReceivingCalls, func(in *validation.TariffInput) *string { return &in.ReceivingCalls }},
	{LabelCallBackHome, func(in *validation.TariffInput) *string { return &in.CallBackHome }},
	{LabelSendingSMS, func(in *validation.TariffInput) *string { return &in.SendingSMS }},
	{LabelDataRoaming, func(in *validation.TariffInput) *string { return &in.DataRoaming }},
	{LabelMT, func(in *validation.TariffInput) *string { return &in.MT }},
	{LabelInternationalCalls, func(in *validation.TariffInput) *string { return &in.InternationalCalls }},
	{LabelSatellite, func(in *validation.TariffInput) *string { return &in.Satellite }},
}

// FormScreen はパートナー料金表の登録/編集画面を表す。
// 料金表の国は選択したパートナーの所属国から決定する。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
	loader      *reconcile.Loader
	snapshot    *reconcile.Snapshot
	editID      int64
	onSave      func()
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
func NewFormScreen(app *ui.App, service Service, auditLogger *audit.Logger) *FormScreen {
	s := &FormScreen{
		app:         app,
		service:     service,
		auditLogger: auditLogger,
		loader:      reconcile.NewLoader(service),
		snapshot:    &reconcile.Snapshot{Index: reconcile.NewIndex(nil)},
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

// Prepare はパートナー選択肢と所属国の索引を取得し直す。
// 取得に失敗した場合も取得できた範囲でフォームを構成できる。
func (s *FormScreen) Prepare(ctx context.Context) error {
	s.snapshot = s.loader.Load(ctx)
	return s.snapshot.Err
}

// SetupCreate は新規作成モードでフォームをセットアップする。
func (s *FormScreen) SetupCreate() {
	s.editID = 0
	s.build(" Add Partner Tariff ", &validation.TariffInput{}, -1)
}

// SetupEdit は一覧で選択した料金表で編集モードをセットアップする。
func (s *FormScreen) SetupEdit(t model.Tariff) {
	s.editID = t.ID
	s.build(" Edit Partner Tariff ", validation.TariffInputFrom(&t), s.partnerIndex(t.Partner.ID))
}

func (s *FormScreen) build(title string, in *validation.TariffInput, partner int) {
	s.form.Clear(true)
	s.form.SetTitle(title)

	names := s.partnerNames()
	s.form.AddDropDown(LabelPartner, names, partner, nil)
	for _, f := range rateFields {
		s.form.AddInputField(f.label, *f.field(in), 12, nil, nil)
	}

	s.form.AddButton("Save", s.handleSave)
	s.form.AddButton("Cancel", s.handleCancel)
}

func (s *FormScreen) partnerNames() []string {
	names := make([]string, 0, len(s.snapshot.Partners))
	for _, p := range s.snapshot.Partners {
		names = append(names, p.Name)
	}
	return names
}

// partnerIndex はパートナー選択肢の位置を返す。見つからなければ-1。
func (s *FormScreen) partnerIndex(id int64) int {
	for i, p := range s.snapshot.Partners {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Input はフォームの入力内容を返す。
func (s *FormScreen) Input() *validation.TariffInput {
	in := &validation.TariffInput{Partner: ui.DropDownOption(s.form, LabelPartner)}
	for _, f := range rateFields {
		*f.field(in) = ui.InputText(s.form, f.label)
	}
	return in
}

// Resolve は選択中のパートナーとその所属国を返す。
// 所属国が解決できない場合、国はゼロ値になる。
func (s *FormScreen) Resolve() (model.Partner, model.Country) {
	dd, ok := s.form.GetFormItemByLabel(LabelPartner).(*tview.DropDown)
	if !ok {
		return model.Partner{}, model.Country{}
	}
	idx, _ := dd.GetCurrentOption()
	if idx < 0 || idx >= len(s.snapshot.Partners) {
		return model.Partner{}, model.Country{}
	}
	p := s.snapshot.Partners[idx]
	c, _ := s.snapshot.Index.CountryForPartner(p, s.snapshot.Countries)
	return p, c
}

func (s *FormScreen) handleSave() {
	partner, country := s.Resolve()
	t, errs := validation.BuildTariff(s.Input(), partner, country)
	if len(errs) > 0 {
		s.app.GetStatusBar().ShowError("Validation error: " + validation.Join(errs))
		return
	}
	if err := s.Save(t); err != nil {
		s.app.GetStatusBar().ShowAPIError("Failed to save tariff", err)
		return
	}
	if s.onSave != nil {
		s.onSave()
	}
}

// Save は料金表を登録または更新し、監査ログを出力する。
func (s *FormScreen) Save(t *model.Tariff) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()

	if s.editID != 0 {
		t.ID = s.editID
		updated, err := s.service.UpdateTariff(ctx, t)
		if err != nil {
			return err
		}
		s.auditLogger.LogUpdate(audit.TargetTariff, updated.IDString(), updated.PartnerName)
		s.app.GetStatusBar().ShowSuccess("Tariff updated: " + updated.PartnerName)
		return nil
	}

	created, err := s.service.CreateTariff(ctx, t)
	if err != nil {
		return err
	}
	s.auditLogger.LogCreate(audit.TargetTariff, created.IDString(), created.PartnerName)
	s.app.GetStatusBar().ShowSuccess("Tariff created: " + created.PartnerName)
	return nil
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
