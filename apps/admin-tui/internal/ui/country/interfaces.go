package country

import (
	"context"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Service は国画面が使用するバックエンド操作のインターフェース。
type Service interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	GetCountry(ctx context.Context, id int64) (*model.Country, error)
	CreateCountry(ctx context.Context, in model.CountryInput) (*model.Country, error)
	UpdateCountry(ctx context.Context, id int64, in model.CountryInput) (*model.Country, error)
	DeleteCountry(ctx context.Context, id int64) error
}
