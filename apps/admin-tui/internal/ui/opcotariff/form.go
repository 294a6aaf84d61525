package opcotariff

import (
	"context"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/validation"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelLocalCalls         = "Local Calls"
	LabelReceivingCalls     = "Receiving Calls"
	LabelCallbackHome       = "Callback Home"
	LabelSMS                = "SMS"
	LabelRowMin             = "ROW Min"
	LabelMTNMin             = "MTN Min"
	LabelSatellite          = "Satellite"
	LabelData               = "Data"
	LabelInternationalCalls = "International Calls"
)

type rateField struct {
	label string
	field func(*validation.OpcoTariffInput) *string
}

var rateFields = []rateField{
	{LabelLocalCalls, func(in *validation.OpcoTariffInput) *string { return &in.LocalCalls }},
	{LabelReceivingCalls, func(in *validation.OpcoTariffInput) *string { return &in.ReceivingCalls }},
	{LabelCallbackHome, func(in *validation.OpcoTariffInput) *string { return &in.CallbackHome }},
	{LabelSMS, func(in *validation.OpcoTariffInput) *string { return &in.SMS }},
	{LabelRowMin, func(in *validation.OpcoTariffInput) *string { return &in.RowMin }},
	{LabelMTNMin, func(in *validation.OpcoTariffInput) *string { return &in.MTNMin }},
	{LabelSatellite, func(in *validation.OpcoTariffInput) *string { return &in.Satellite }},
	{LabelData, func(in *validation.OpcoTariffInput) *string { return &in.Data }},
	{LabelInternationalCalls, func(in *validation.OpcoTariffInput) *string { return &in.InternationalCalls }},
}

// FormScreen はOPCO料金表の登録/編集画面を表す。
// 国はカテゴリを選んでから選択する。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
	static      []countrydata.Entry
	countries   []model.Country
	picker      *ui.CountryPicker
	editID      int64
	onSave      func()
	onCancel    func()
}

// NewFormScreen は新しいFormScreenを生成する。
func NewFormScreen(app *ui.App, service Service, auditLogger *audit.Logger, static []countrydata.Entry) *FormScreen {
	s := &FormScreen{
		app:         app,
		service:     service,
		auditLogger: auditLogger,
		static:      static,
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

// Picker は国選択を返す。
func (s *FormScreen) Picker() *ui.CountryPicker {
	return s.picker
}

// Prepare は国の選択肢を取得し直す。失敗時は空の選択肢になる。
func (s *FormScreen) Prepare(ctx context.Context) error {
	countries, err := api.FetchList(ctx, api.ResourceCountries, s.service.ListCountries)
	s.countries = countries
	return err
}

// SetupCreate は新規作成モードでフォームをセットアップする。
func (s *FormScreen) SetupCreate() {
	s.editID = 0
	s.build(" Add Opco Tariff ", &validation.OpcoTariffInput{}, nil)
}

// SetupEdit は一覧で選択したOPCO料金表で編集モードをセットアップする。
func (s *FormScreen) SetupEdit(t model.OpcoTariff) {
	s.editID = t.ID
	var owner *model.Country
	for i := range s.countries {
		if s.countries[i].ID == t.Country.ID {
			owner = &s.countries[i]
			break
		}
	}
	s.build(" Edit Opco Tariff ", validation.OpcoTariffInputFrom(&t), owner)
}

func (s *FormScreen) build(title string, in *validation.OpcoTariffInput, owner *model.Country) {
	s.form.Clear(true)
	s.form.SetTitle(title)

	s.picker = ui.NewCountryPicker(s.countries, s.static)
	s.picker.AddTo(s.form)
	if owner != nil {
		s.picker.Select(owner.Category, owner.Name)
	}
	for _, f := range rateFields {
		s.form.AddInputField(f.label, *f.field(in), 12, nil, nil)
	}

	s.form.AddButton("Save", s.handleSave)
	s.form.AddButton("Cancel", s.handleCancel)
}

// Input はフォームの入力内容を返す。
func (s *FormScreen) Input() *validation.OpcoTariffInput {
	in := &validation.OpcoTariffInput{Country: s.picker.CountryName()}
	for _, f := range rateFields {
		*f.field(in) = ui.InputText(s.form, f.label)
	}
	return in
}

func (s *FormScreen) handleSave() {
	t, errs := validation.BuildOpcoTariff(s.Input(), s.countries)
	if len(errs) > 0 {
		s.app.GetStatusBar().ShowError("Validation error: " + validation.Join(errs))
		return
	}
	if err := s.Save(t); err != nil {
		s.app.GetStatusBar().ShowAPIError("Failed to save opco tariff", err)
		return
	}
	if s.onSave != nil {
		s.onSave()
	}
}

// Save はOPCO料金表を登録または更新し、監査ログを出力する。
func (s *FormScreen) Save(t *model.OpcoTariff) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()

	if s.editID != 0 {
		t.ID = s.editID
		updated, err := s.service.UpdateOpcoTariff(ctx, t)
		if err != nil {
			return err
		}
		s.auditLogger.LogUpdate(audit.TargetOpcoTariff, updated.IDString(), updated.CountryName)
		s.app.GetStatusBar().ShowSuccess("Opco tariff updated: " + updated.CountryName)
		return nil
	}

	created, err := s.service.CreateOpcoTariff(ctx, t)
	if err != nil {
		return err
	}
	s.auditLogger.LogCreate(audit.TargetOpcoTariff, created.IDString(), created.CountryName)
	s.app.GetStatusBar().ShowSuccess("Opco tariff created: " + created.CountryName)
	return nil
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
