package exporter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

type stubSource struct {
	partners    []model.Partner
	countries   []model.Country
	tariffs     []model.Tariff
	opcoTariffs []model.OpcoTariff
	err         error
}

func (s *stubSource) ListPartners(context.Context) ([]model.Partner, error) {
	return s.partners, s.err
}

func (s *stubSource) ListCountries(context.Context) ([]model.Country, error) {
	return s.countries, s.err
}

func (s *stubSource) ListTariffs(context.Context) ([]model.Tariff, error) {
	return s.tariffs, s.err
}

func (s *stubSource) ListOpcoTariffs(context.Context) ([]model.OpcoTariff, error) {
	return s.opcoTariffs, s.err
}

func newStub() *stubSource {
	return &stubSource{
		partners: []model.Partner{
			{ID: 1, Name: "MTN Ghana", Mechanism: model.MechanismSRDC, RDC: "12"},
			{ID: 2, Name: "Orphan", Mechanism: model.MechanismLBTR, NetworkType: model.NetworkTypeF},
		},
		countries: []model.Country{
			{ID: 9, Name: "Ghana", Category: model.CategoryAfrica, Partners: []model.PartnerRef{{ID: 1}}},
		},
		tariffs: []model.Tariff{
			{ID: 3, Partner: model.PartnerRef{ID: 1}, Country: model.CountryRef{ID: 9}, PartnerName: "MTN Ghana", CountryName: "Ghana"},
		},
		opcoTariffs: []model.OpcoTariff{},
	}
}

func TestParseResource(t *testing.T) {
	tests := []struct {
		input   string
		want    Resource
		wantErr bool
	}{
		{"partners", ResourcePartners, false},
		{"Opcos", ResourceCountries, false},
		{"countries", ResourceCountries, false},
		{"partner tariffs", ResourceTariffs, false},
		{" opco-tariffs ", ResourceOpcoTariffs, false},
		{"subscribers", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResource(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownResource)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResourceAuditTarget(t *testing.T) {
	assert.Equal(t, audit.TargetPartner, ResourcePartners.AuditTarget())
	assert.Equal(t, audit.TargetCountry, ResourceCountries.AuditTarget())
	assert.Equal(t, audit.TargetTariff, ResourceTariffs.AuditTarget())
	assert.Equal(t, audit.TargetOpcoTariff, ResourceOpcoTariffs.AuditTarget())
}

func TestWritePartners(t *testing.T) {
	var buf bytes.Buffer
	n, err := New(newStub()).Write(context.Background(), ResourcePartners, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,partner_name,country_name,category,network_type,rdc", lines[0])
	assert.Equal(t, "1,MTN Ghana,Ghana,africa,,12", lines[1])
	assert.Equal(t, "2,Orphan,Unknown,Unknown,F,", lines[2])
}

func TestWriteOtherResources(t *testing.T) {
	exp := New(newStub())

	tests := []struct {
		resource Resource
		wantRows int
	}{
		{ResourceCountries, 1},
		{ResourceTariffs, 1},
		{ResourceOpcoTariffs, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.resource), func(t *testing.T) {
			var buf bytes.Buffer
			n, err := exp.Write(context.Background(), tt.resource, &buf)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, n)
			// ヘッダー + データ行
			assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), tt.wantRows+1)
		})
	}
}

func TestWriteFetchError(t *testing.T) {
	src := newStub()
	src.err = errors.New("backend down")
	exp := New(src)

	for _, r := range Resources() {
		t.Run(string(r), func(t *testing.T) {
			var buf bytes.Buffer
			_, err := exp.Write(context.Background(), r, &buf)
			assert.ErrorIs(t, err, src.err)
		})
	}
}

func TestWriteUnknownResource(t *testing.T) {
	_, err := New(newStub()).Write(context.Background(), Resource("subscribers"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestToFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("success", func(t *testing.T) {
		path := filepath.Join(dir, "countries.csv")
		n, err := New(newStub()).ToFile(context.Background(), ResourceCountries, path)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "9,Ghana,africa,1")
	})

	t.Run("fetch error removes file", func(t *testing.T) {
		src := newStub()
		src.err = errors.New("backend down")
		path := filepath.Join(dir, "broken.csv")

		_, err := New(src).ToFile(context.Background(), ResourceTariffs, path)
		require.Error(t, err)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := New(newStub()).ToFile(context.Background(), ResourceTariffs, "  ")
		assert.Error(t, err)
	})
}
