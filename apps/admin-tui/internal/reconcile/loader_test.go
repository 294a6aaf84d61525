package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

func TestLoaderLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	src.EXPECT().ListPartners(gomock.Any()).Return([]model.Partner{partner(1, "MTN Ghana"), partner(2, "Orange")}, nil)
	src.EXPECT().ListCountries(gomock.Any()).Return([]model.Country{country(9, "Ghana", model.CategoryAfrica, 1)}, nil)

	snap := NewLoader(src).Load(context.Background())

	require.NoError(t, snap.Err)
	require.Len(t, snap.Merged, 2)
	assert.Equal(t, "Ghana", snap.Merged[0].CountryName)
	assert.Equal(t, "africa", snap.Merged[0].Category)
	assert.Equal(t, Unknown, snap.Merged[1].CountryName)
	assert.Equal(t, 1, snap.Index.Len())
	assert.Len(t, snap.Countries, 1)
}

func TestLoaderLoadCountriesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	fetchErr := errors.New("connection refused")

	src.EXPECT().ListPartners(gomock.Any()).Return([]model.Partner{partner(1, "MTN Ghana")}, nil)
	src.EXPECT().ListCountries(gomock.Any()).Return(nil, fetchErr)

	snap := NewLoader(src).Load(context.Background())

	require.Error(t, snap.Err)
	assert.ErrorIs(t, snap.Err, fetchErr)
	require.NotNil(t, snap.Countries)
	assert.Empty(t, snap.Countries)
	require.Len(t, snap.Merged, 1)
	assert.Equal(t, Unknown, snap.Merged[0].CountryName)
	assert.Equal(t, Unknown, snap.Merged[0].Category)
}

func TestLoaderLoadPartnersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	src.EXPECT().ListPartners(gomock.Any()).Return(nil, errors.New("500"))
	src.EXPECT().ListCountries(gomock.Any()).Return([]model.Country{country(9, "Ghana", model.CategoryAfrica, 1)}, nil)

	snap := NewLoader(src).Load(context.Background())

	assert.Error(t, snap.Err)
	require.NotNil(t, snap.Merged)
	assert.Empty(t, snap.Merged)
	assert.Len(t, snap.Countries, 1)
}

func TestLoaderLoadNilCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	src.EXPECT().ListPartners(gomock.Any()).Return(nil, nil)
	src.EXPECT().ListCountries(gomock.Any()).Return(nil, nil)

	snap := NewLoader(src).Load(context.Background())

	assert.NoError(t, snap.Err)
	assert.NotNil(t, snap.Partners)
	assert.NotNil(t, snap.Countries)
	assert.Empty(t, snap.Merged)
}
