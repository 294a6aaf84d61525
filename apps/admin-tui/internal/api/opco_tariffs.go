package api

import (
	"context"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ListOpcoTariffs はOPCO料金表の一覧を取得する。
func (c *Client) ListOpcoTariffs(ctx context.Context) ([]model.OpcoTariff, error) {
	var tariffs []model.OpcoTariff
	if err := c.do(ctx, request{method: http.MethodGet, path: PathOpcoTariffs, resource: ResourceOpcoTariffs, auth: true}, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}

// CreateOpcoTariff はOPCO料金表を登録する。
func (c *Client) CreateOpcoTariff(ctx context.Context, t *model.OpcoTariff) (*model.OpcoTariff, error) {
	body := *t
	body.ID = 0
	created := body
	if err := c.do(ctx, request{method: http.MethodPost, path: PathOpcoTariffs, resource: ResourceOpcoTariffs, body: &body, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOpcoTariff はOPCO料金表を更新する。
func (c *Client) UpdateOpcoTariff(ctx context.Context, t *model.OpcoTariff) (*model.OpcoTariff, error) {
	updated := *t
	if err := c.do(ctx, request{method: http.MethodPut, path: itemPath(PathOpcoTariffs, t.ID), resource: ResourceOpcoTariffs, body: t, auth: true}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOpcoTariff はOPCO料金表を削除する。
func (c *Client) DeleteOpcoTariff(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: itemPath(PathOpcoTariffs, id), resource: ResourceOpcoTariffs, auth: true}, nil)
}
