package api

import (
	"context"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// ListCountries は国一覧を取得する。
func (c *Client) ListCountries(ctx context.Context) ([]model.Country, error) {
	var countries []model.Country
	if err := c.do(ctx, request{method: http.MethodGet, path: PathCountries, resource: ResourceCountries, auth: true}, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// GetCountry は指定IDの国を取得する。
func (c *Client) GetCountry(ctx context.Context, id int64) (*model.Country, error) {
	var country model.Country
	if err := c.do(ctx, request{method: http.MethodGet, path: itemPath(PathCountries, id), resource: ResourceCountries, auth: true}, &country); err != nil {
		return nil, err
	}
	return &country, nil
}

// CreateCountry は国を登録する。
func (c *Client) CreateCountry(ctx context.Context, in model.CountryInput) (*model.Country, error) {
	created := model.Country{Name: in.Name, Category: in.Category}
	if err := c.do(ctx, request{method: http.MethodPost, path: PathCountries, resource: ResourceCountries, body: in, auth: true}, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCountry は国を更新する。
func (c *Client) UpdateCountry(ctx context.Context, id int64, in model.CountryInput) (*model.Country, error) {
	updated := model.Country{ID: id, Name: in.Name, Category: in.Category}
	if err := c.do(ctx, request{method: http.MethodPut, path: itemPath(PathCountries, id), resource: ResourceCountries, body: in, auth: true}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCountry は国を削除する。
func (c *Client) DeleteCountry(ctx context.Context, id int64) error {
	return c.do(ctx, request{method: http.MethodDelete, path: itemPath(PathCountries, id), resource: ResourceCountries, auth: true}, nil)
}
