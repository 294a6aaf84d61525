package tariff

import (
	"context"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Service はパートナー料金表画面が使用するバックエンド操作のインターフェース。
// パートナー選択と所属国の解決のためにパートナーと国の一覧も取得する。
type Service interface {
	reconcile.Source
	ListTariffs(ctx context.Context) ([]model.Tariff, error)
	CreateTariff(ctx context.Context, t *model.Tariff) (*model.Tariff, error)
	UpdateTariff(ctx context.Context, t *model.Tariff) (*model.Tariff, error)
	DeleteTariff(ctx context.Context, id int64) error
}
