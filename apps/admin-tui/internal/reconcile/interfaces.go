package reconcile

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=reconcile

import (
	"context"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Source はパートナー・国コレクションの取得元インターフェース。
type Source interface {
	ListPartners(ctx context.Context) ([]model.Partner, error)
	ListCountries(ctx context.Context) ([]model.Country, error)
}
