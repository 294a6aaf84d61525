package api

import (
	"context"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ListPartners はパートナー一覧を取得する。
func (c *Client) ListPartners(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner
	if err := c.do(ctx, request{method: http.MethodGet, path: PathPartners, resource: ResourcePartners, auth: true}, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

// GetPartner は指定IDのパートナーを取得する。
func (c *Client) GetPartner(ctx context.Context, id int64) (*model.Partner, error) {
	var p model.Partner
	if err := c.do(ctx, request{method: http.MethodGet, path: itemPath(PathPartners, id), resource: ResourcePartners, auth: true}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePartner はパートナーを登録する。
// 送信前に精算方式に応じて不要なフィールドを除去する。
func (c *Client) CreatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	body := *p
	body.ID = 0
	body.Normalize()

	created := body
	if err := c.do(ctx, request{method: http.MethodPost, path: PathPartners, resource: ResourcePartners, body: &body, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePartner はパートナーを更新する。
func (c *Client) UpdatePartner(ctx context.Context, p *model.Partner) (*model.Partner, error) {
	body := *p
	body.Normalize()

	updated := body
	if err := c.do(ctx, request{method: http.MethodPut, path: itemPath(PathPartners, p.ID), resource: ResourcePartners, body: &body, auth: true}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePartner はパートナーを削除する。
// 料金表が紐づくパートナーはバックエンドが409で拒否する。
func (c *Client) DeletePartner(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: itemPath(PathPartners, id), resource: ResourcePartners, auth: true}, nil)
}
