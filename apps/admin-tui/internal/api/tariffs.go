package api

import (
	"context"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ListTariffs はパートナー料金表の一覧を取得する。
func (c *Client) ListTariffs(ctx context.Context) ([]model.Tariff, error) {
	var tariffs []model.Tariff
	if err := c.do(ctx, request{method: http.MethodGet, path: PathTariffs, resource: ResourceTariffs, auth: true}, &tariffs); err != nil {
		return nil, err
	}
	return tariffs, nil
}

// CreateTariff はパートナー料金表を登録する。
func (c *Client) CreateTariff(ctx context.Context, t *model.Tariff) (*model.Tariff, error) {
	body := *t
	body.ID = 0
	created := body
	if err := c.do(ctx, request{method: http.MethodPost, path: PathTariffs, resource: ResourceTariffs, body: &body, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTariff はパートナー料金表を更新する。
func (c *Client) UpdateTariff(ctx context.Context, t *model.Tariff) (*model.Tariff, error) {
	updated := *t
	if err := c.do(ctx, request{method: http.MethodPut, path: itemPath(PathTariffs, t.ID), resource: ResourceTariffs, body: t, auth: true}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTariff はパートナー料金表を削除する。
func (c *Client) DeleteTariff(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: itemPath(PathTariffs, id), resource: ResourceTariffs, auth: true}, nil)
}
