package country

import (
	"context"
	"strings"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/validation"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelName     = "Country Name"
	LabelCategory = "Category"
)

// maxSuggestions は国名入力の補完候補の最大数
const maxSuggestions = 8

// FormScreen は国登録/編集画面を表す。
type FormScreen struct {
	form        *tview.Form
	app         *ui.App
	service     Service
	auditLogger *audit.Logger
	static      []countrydata.Entry
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

// SetupCreate は新規作成モードでフォームをセットアップする。
func (s *FormScreen) SetupCreate() {
	s.editID = 0
	s.build(" Add Opco ", model.Country{})
}

// SetupEdit は編集モードでフォームをセットアップする。
func (s *FormScreen) SetupEdit(ctx context.Context, id int64) error {
	c, err := s.service.GetCountry(ctx, id)
	if err != nil {
		return err
	}
	s.editID = id
	s.build(" Edit Opco ", *c)
	return nil
}

func (s *FormScreen) build(title string, c model.Country) {
	s.form.Clear(true)
	s.form.SetTitle(title)

	name := tview.NewInputField().
		SetLabel(LabelName).
		SetText(c.Name).
		SetFieldWidth(40)
	name.SetAutocompleteFunc(func(text string) []string {
		return Suggest(s.static, text)
	})
	s.form.AddFormItem(name)

	labels := model.CategoryLabels()
	current := -1
	for i, cat := range model.Categories() {
		if cat == c.Category {
			current = i
		}
	}
	s.form.AddDropDown(LabelCategory, labels, current, nil)

	s.form.AddButton("Save", s.handleSave)
	s.form.AddButton("Cancel", s.handleCancel)
}

// Suggest は入力中の文字列を含む静的リストの国名を返す。
// 国旗を付けると入力欄に絵文字が入るため国名のみを返す。
func Suggest(static []countrydata.Entry, text string) []string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}
	var out []string
	for _, e := range static {
		if strings.Contains(strings.ToLower(e.Label), text) {
			out = append(out, e.Label)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Input はフォームの入力内容を返す。
func (s *FormScreen) Input() *validation.CountryInput {
	return &validation.CountryInput{
		Name:     ui.InputText(s.form, LabelName),
		Category: ui.DropDownOption(s.form, LabelCategory),
	}
}

func (s *FormScreen) handleSave() {
	in, errs := validation.BuildCountry(s.Input())
	if len(errs) > 0 {
		s.app.GetStatusBar().ShowError("Validation error: " + validation.Join(errs))
		return
	}
	if err := s.Save(*in); err != nil {
		s.app.GetStatusBar().ShowAPIError("Failed to save country", err)
		return
	}
	if s.onSave != nil {
		s.onSave()
	}
}

// Save は国を登録または更新し、監査ログを出力する。
func (s *FormScreen) Save(in model.CountryInput) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.SaveTimeout)
	defer cancel()

	if s.editID != 0 {
		updated, err := s.service.UpdateCountry(ctx, s.editID, in)
		if err != nil {
			return err
		}
		s.auditLogger.LogUpdate(audit.TargetCountry, updated.IDString(), updated.Name)
		s.app.GetStatusBar().ShowSuccess("Country updated: " + updated.Name)
		return nil
	}

	created, err := s.service.CreateCountry(ctx, in)
	if err != nil {
		return err
	}
	s.auditLogger.LogCreate(audit.TargetCountry, created.IDString(), created.Name)
	s.app.GetStatusBar().ShowSuccess("Country created: " + created.Name)
	return nil
}

func (s *FormScreen) handleCancel() {
	if s.onCancel != nil {
		s.onCancel()
	}
}
