package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

func TestIndex(t *testing.T) {
	countries := []model.Country{
		country(1, "Ghana", model.CategoryAfrica, 10, 11),
		country(2, "Nigeria", model.CategoryMTNOpcos, 11, 12),
	}
	idx := NewIndex(countries)

	assert.Equal(t, 3, idx.Len())

	c, ok := idx.CountryOf(11)
	require.True(t, ok)
	assert.Equal(t, "Ghana", c.Name)

	c, ok = idx.CountryOf(12)
	require.True(t, ok)
	assert.Equal(t, "Nigeria", c.Name)

	_, ok = idx.CountryOf(99)
	assert.False(t, ok)
}

func TestIndexUnresolved(t *testing.T) {
	idx := NewIndex([]model.Country{country(1, "Ghana", model.CategoryAfrica, 10)})
	got := idx.Unresolved([]model.Partner{partner(10, "a"), partner(20, "b"), partner(30, "c")})
	assert.Equal(t, []int64{20, 30}, got)

	assert.Empty(t, idx.Unresolved([]model.Partner{partner(10, "a")}))
}

func TestIndexCountryForPartner(t *testing.T) {
	countries := []model.Country{
		country(1, "Ghana", model.CategoryAfrica, 10),
		country(2, "Nigeria", model.CategoryMTNOpcos),
	}
	idx := NewIndex(countries)

	tests := []struct {
		name    string
		partner model.Partner
		wantID  int64
		wantOK  bool
	}{
		{"resolved by index", model.Partner{ID: 10, Country: model.CountryRef{ID: 2}}, 1, true},
		{"fallback to own reference", model.Partner{ID: 20, Country: model.CountryRef{ID: 2}}, 2, true},
		{"own reference missing", model.Partner{ID: 20, Country: model.CountryRef{ID: 99}}, 0, false},
		{"no reference", model.Partner{ID: 20}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := idx.CountryForPartner(tt.partner, countries)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, c.ID)
		})
	}
}
