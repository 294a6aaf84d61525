package country

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

type fakeService struct {
	countries []model.Country
	created   *model.CountryInput
	updatedID int64
	updated   *model.CountryInput
	deleted   int64
	listErr   error
}

func (f *fakeService) ListCountries(context.Context) ([]model.Country, error) {
	return f.countries, f.listErr
}

func (f *fakeService) GetCountry(_ context.Context, id int64) (*model.Country, error) {
	for _, c := range f.countries {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, &api.APIError{StatusCode: 404, Resource: api.ResourceCountries}
}

func (f *fakeService) CreateCountry(_ context.Context, in model.CountryInput) (*model.Country, error) {
	f.created = &in
	return &model.Country{ID: 77, Name: in.Name, Category: in.Category}, nil
}

func (f *fakeService) UpdateCountry(_ context.Context, id int64, in model.CountryInput) (*model.Country, error) {
	f.updatedID = id
	f.updated = &in
	return &model.Country{ID: id, Name: in.Name, Category: in.Category}, nil
}

func (f *fakeService) DeleteCountry(_ context.Context, id int64) error {
	f.deleted = id
	return nil
}

var static = []countrydata.Entry{
	{Code: "GH", Label: "Ghana"},
	{Code: "GR", Label: "Greece"},
	{Code: "FR", Label: "France"},
	{Code: "DE", Label: "Germany"},
}

func newFake() *fakeService {
	return &fakeService{countries: []model.Country{
		{ID: 9, Name: "Ghana", Category: model.CategoryAfrica, Partners: []model.PartnerRef{{ID: 1}, {ID: 2}}},
		{ID: 11, Name: "France", Category: model.CategoryEurope},
		{ID: 12, Name: "Atlantis", Category: model.CategoryEurope},
	}}
}

func TestListScreenLoad(t *testing.T) {
	s := NewListScreen(ui.NewApp(), newFake(), audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, 5)
	require.NoError(t, s.Load(context.Background()))

	table := s.GetTable()
	require.Equal(t, 4, table.GetRowCount())
	assert.Equal(t, "🇬🇭 Ghana", table.GetCell(1, 1).Text)
	assert.Equal(t, "Rest of Africa", table.GetCell(1, 2).Text)
	assert.Equal(t, "2", table.GetCell(1, 3).Text)
	// 静的リストにない国は国名のみ
	assert.Equal(t, "Atlantis", table.GetCell(3, 1).Text)
}

func TestListScreenLoadError(t *testing.T) {
	svc := newFake()
	svc.listErr = &api.ConnectionError{Cause: assert.AnError}
	s := NewListScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, 5)

	assert.Error(t, s.Load(context.Background()))
	assert.Empty(t, s.List().Items())
}

func TestListScreenSearchByCategory(t *testing.T) {
	s := NewListScreen(ui.NewApp(), newFake(), audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, 5)
	require.NoError(t, s.Load(context.Background()))

	tests := []struct {
		query string
		want  int
	}{
		{"europe", 2},
		{"EUROPE", 2},
		{"rest of", 1},
		{"asia", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, s.List().Search(tt.query))
		})
	}
}

func TestListScreenDelete(t *testing.T) {
	svc := newFake()
	var buf bytes.Buffer
	s := NewListScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&buf, ""), static, 5)

	require.NoError(t, s.Delete(svc.countries[1]))
	assert.Equal(t, int64(11), svc.deleted)
	assert.Contains(t, buf.String(), `"target_type":"country"`)
}

func TestFormCreate(t *testing.T) {
	svc := newFake()
	var buf bytes.Buffer
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&buf, ""), static)
	saved := false
	s.SetOnSave(func() { saved = true })
	s.SetupCreate()

	ui.SetInputText(s.GetForm(), LabelName, "  Germany ")
	setDropDown(t, s, "Europe")

	s.handleSave()

	require.True(t, saved)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Germany", svc.created.Name)
	assert.Equal(t, model.CategoryEurope, svc.created.Category)
	assert.Contains(t, buf.String(), `"target_key":"77"`)
}

func TestFormCreateRequiresCategory(t *testing.T) {
	svc := newFake()
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static)
	s.SetupCreate()
	ui.SetInputText(s.GetForm(), LabelName, "Germany")

	s.handleSave()

	assert.Nil(t, svc.created)
	assert.Contains(t, s.app.GetStatusBar().Text(), "Category")
}

func TestFormEdit(t *testing.T) {
	svc := newFake()
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static)
	require.NoError(t, s.SetupEdit(context.Background(), 9))

	in := s.Input()
	assert.Equal(t, "Ghana", in.Name)
	assert.Equal(t, "Rest of Africa", in.Category)

	s.handleSave()
	assert.Equal(t, int64(9), svc.updatedID)
	require.NotNil(t, svc.updated)
	assert.Equal(t, model.CategoryAfrica, svc.updated.Category)
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"Ghana"}, Suggest(static, "gha"))
	assert.Equal(t, []string{"Ghana", "Greece", "Germany"}, Suggest(static, "g"))
	assert.ElementsMatch(t, []string{"Greece", "France"}, Suggest(static, "CE"))
	assert.Nil(t, Suggest(static, "  "))
	assert.Empty(t, Suggest(static, "zz"))
}

func setDropDown(t *testing.T, s *FormScreen, option string) {
	t.Helper()
	for i, label := range model.CategoryLabels() {
		if strings.EqualFold(label, option) {
			s.GetForm().GetFormItemByLabel(LabelCategory).(*tview.DropDown).SetCurrentOption(i)
			return
		}
	}
	t.Fatalf("unknown option %q", option)
}
