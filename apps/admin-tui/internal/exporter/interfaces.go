package exporter

import (
	"context"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Source はエクスポート対象の一覧取得元インターフェース。
type Source interface {
	reconcile.Source
	ListTariffs(ctx context.Context) ([]model.Tariff, error)
	ListOpcoTariffs(ctx context.Context) ([]model.OpcoTariff, error)
}
