package opcotariff

import (
	"context"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Service はOPCO料金表画面が使用するバックエンド操作のインターフェース。
type Service interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	ListOpcoTariffs(ctx context.Context) ([]model.OpcoTariff, error)
	CreateOpcoTariff(ctx context.Context, t *model.OpcoTariff) (*model.OpcoTariff, error)
	UpdateOpcoTariff(ctx context.Context, t *model.OpcoTariff) (*model.OpcoTariff, error)
	DeleteOpcoTariff(ctx context.Context, id int64) error
}
