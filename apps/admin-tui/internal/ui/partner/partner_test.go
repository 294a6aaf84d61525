package partner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/countrydata"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

type fakeService struct {
	partners  []model.Partner
	countries []model.Country
	created   *model.Partner
	updated   *model.Partner
	deleted   int64
	err       error
}

func (f *fakeService) ListPartners(context.Context) ([]model.Partner, error) {
	return f.partners, nil
}

func (f *fakeService) ListCountries(context.Context) ([]model.Country, error) {
	return f.countries, nil
}

func (f *fakeService) GetPartner(_ context.Context, id int64) (*model.Partner, error) {
	for _, p := range f.partners {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &api.APIError{StatusCode: 404, Resource: api.ResourcePartners}
}

func (f *fakeService) CreatePartner(_ context.Context, p *model.Partner) (*model.Partner, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := *p
	c.ID = 42
	f.created = &c
	return &c, nil
}

func (f *fakeService) UpdatePartner(_ context.Context, p *model.Partner) (*model.Partner, error) {
	if f.err != nil {
		return nil, f.err
	}
	u := *p
	f.updated = &u
	return &u, nil
}

func (f *fakeService) DeletePartner(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

var static = []countrydata.Entry{
	{Code: "GH", Label: "Ghana"},
	{Code: "NG", Label: "Nigeria"},
	{Code: "FR", Label: "France"},
}

func newFake() *fakeService {
	return &fakeService{
		partners: []model.Partner{
			{ID: 1, Name: "MTN Ghana", Country: model.CountryRef{ID: 9}, Mechanism: model.MechanismSRDC, MCC: "620", MNC: "01", RDC: "12.5"},
			{ID: 2, Name: "Glo", Country: model.CountryRef{ID: 10}, Mechanism: model.MechanismLBTR, NetworkType: model.NetworkTypeP, MCC: "621", MNC: "50"},
			{ID: 3, Name: "Orphan", Mechanism: model.MechanismSRDC, MCC: "001", MNC: "01", RDC: "1"},
		},
		countries: []model.Country{
			{ID: 9, Name: "Ghana", Category: model.CategoryAfrica, Partners: []model.PartnerRef{{ID: 1}}},
			{ID: 10, Name: "Nigeria", Category: model.CategoryAfrica, Partners: []model.PartnerRef{{ID: 2}}},
			{ID: 11, Name: "France", Category: model.CategoryEurope},
		},
	}
}

func snapshotOf(svc *fakeService) *reconcile.Snapshot {
	return reconcile.NewLoader(svc).Load(context.Background())
}

func TestListScreenLoad(t *testing.T) {
	svc := newFake()
	s := NewListScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), 10)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	table := s.GetTable()
	if got := table.GetRowCount(); got != 4 {
		t.Fatalf("row count = %d, want 4", got)
	}
	if got := table.GetCell(1, 2).Text; got != "Ghana" {
		t.Errorf("country cell = %q, want Ghana", got)
	}
	if got := table.GetCell(1, 3).Text; got != "Rest of Africa" {
		t.Errorf("category cell = %q, want label", got)
	}
	if got := table.GetCell(3, 2).Text; got != reconcile.Unknown {
		t.Errorf("orphan country cell = %q, want Unknown", got)
	}
	if got := table.GetCell(1, 5).Text; got != "12.5%" {
		t.Errorf("rdc cell = %q", got)
	}
	if s.Snapshot().Index.Len() != 2 {
		t.Errorf("index size = %d, want 2", s.Snapshot().Index.Len())
	}
}

func TestListScreenSearchAudited(t *testing.T) {
	var buf bytes.Buffer
	s := NewListScreen(ui.NewApp(), newFake(), audit.NewLoggerWithWriter(&buf, "ops@example.com"), 10)
	_ = s.Load(context.Background())

	if n := s.List().Search("glo"); n != 1 {
		t.Errorf("Search() = %d, want 1", n)
	}
	if !strings.Contains(buf.String(), `"operation":"search"`) {
		t.Errorf("search not audited: %s", buf.String())
	}
}

func TestListScreenDelete(t *testing.T) {
	svc := newFake()
	var buf bytes.Buffer
	s := NewListScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&buf, ""), 10)

	if err := s.Delete(model.MergedPartner{ID: 2, PartnerName: "Glo"}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if svc.deleted != 2 {
		t.Errorf("deleted = %d, want 2", svc.deleted)
	}
	if !strings.Contains(buf.String(), `"operation":"delete"`) {
		t.Errorf("delete not audited: %s", buf.String())
	}

	svc.err = &api.APIError{StatusCode: 409, Resource: api.ResourcePartners, Message: "has tariffs"}
	err := s.Delete(model.MergedPartner{ID: 1})
	if got := deleteMessage(err); got != "Partner has tariffs and cannot be deleted." {
		t.Errorf("deleteMessage() = %q", got)
	}
}

func TestFormCreate(t *testing.T) {
	svc := newFake()
	var buf bytes.Buffer
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&buf, ""), static, snapshotOf(svc))
	saved := false
	s.SetOnSave(func() { saved = true })
	s.SetupCreate()

	form := s.GetForm()
	ui.SetInputText(form, LabelName, "Vodafone Ghana")
	s.Picker().Select(model.CategoryAfrica, "Ghana")
	ui.SetInputText(form, LabelMCC, "620")
	ui.SetInputText(form, LabelMNC, "02")
	ui.SetInputText(form, LabelRDC, "10")

	s.handleSave()

	if !saved {
		t.Fatalf("onSave not called; status = %q", s.app.GetStatusBar().Text())
	}
	if svc.created == nil || svc.created.Country.ID != 9 {
		t.Fatalf("created = %+v, want country 9", svc.created)
	}
	if svc.created.RDC != "10" || svc.created.NetworkType != "" {
		t.Errorf("SRDC partner = %+v", svc.created)
	}
	if !strings.Contains(buf.String(), `"target_key":"42"`) {
		t.Errorf("create not audited: %s", buf.String())
	}
}

func TestFormCreateWithoutCountry(t *testing.T) {
	svc := newFake()
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, snapshotOf(svc))
	s.SetupCreate()
	ui.SetInputText(s.GetForm(), LabelName, "Nowhere Mobile")
	ui.SetInputText(s.GetForm(), LabelMCC, "620")
	ui.SetInputText(s.GetForm(), LabelMNC, "02")
	ui.SetInputText(s.GetForm(), LabelRDC, "10")

	s.handleSave()

	if svc.created != nil {
		t.Error("partner must not be created without a country")
	}
}

func TestFormEditPrefill(t *testing.T) {
	svc := newFake()
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, snapshotOf(svc))

	if err := s.SetupEdit(context.Background(), 2); err != nil {
		t.Fatalf("SetupEdit() error = %v", err)
	}
	in := s.Input()
	if in.Name != "Glo" || in.Country != "Nigeria" || in.Category != "africa" {
		t.Errorf("Input() = %+v", in)
	}
	if in.Mechanism != "LBTR" || in.NetworkType != "P" {
		t.Errorf("mechanism fields = %q/%q", in.Mechanism, in.NetworkType)
	}
	if in.RDC != "" {
		t.Errorf("RDC = %q, want empty for LBTR", in.RDC)
	}

	s.handleSave()
	if svc.updated == nil || svc.updated.ID != 2 || svc.updated.Country.ID != 10 {
		t.Errorf("updated = %+v", svc.updated)
	}
}

func TestFormEditNotFound(t *testing.T) {
	svc := newFake()
	s := NewFormScreen(ui.NewApp(), svc, audit.NewLoggerWithWriter(&bytes.Buffer{}, ""), static, snapshotOf(svc))
	err := s.SetupEdit(context.Background(), 404)
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
		t.Errorf("SetupEdit() error = %v, want 404", err)
	}
}

func TestViewRender(t *testing.T) {
	svc := newFake()
	v := NewViewScreen(svc, snapshotOf(svc))

	if err := v.Load(context.Background(), 1); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	text := v.GetView().GetText(true)
	for _, want := range []string{"MTN Ghana", "Ghana (Rest of Africa)", "SRDC", "12.5%", "620"} {
		if !strings.Contains(text, want) {
			t.Errorf("view missing %q:\n%s", want, text)
		}
	}

	orphan := v.Render(&svc.partners[2])
	if !strings.Contains(orphan, reconcile.Unknown) {
		t.Errorf("orphan view should show Unknown:\n%s", orphan)
	}
}
