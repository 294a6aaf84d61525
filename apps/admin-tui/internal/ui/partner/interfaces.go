package partner

import (
	"context"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/reconcile"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Service はパートナー画面が使用するバックエンド操作のインターフェース。
type Service interface {
	reconcile.Source
	GetPartner(ctx context.Context, id int64) (*model.Partner, error)
	CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error)
	UpdatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error)
	DeletePartner(ctx context.Context, id int64) error
}
