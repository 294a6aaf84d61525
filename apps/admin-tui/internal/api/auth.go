package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Login はユーザー名とパスワードでログインする。
// 資格情報が不正な場合はapperr.ErrInvalidCredentialsを返す。
func (c *Client) Login(ctx context.Context, username, password string) (*model.LoginResult, error) {
	var result model.LoginResult
	err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     PathLogin,
		resource: ResourceAuth,
		body:     model.LoginRequest{Username: username, Password: password},
	}, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusOK) {
			return nil, fmt.Errorf("%w: %w", apperr.ErrInvalidCredentials, err)
		}
		return nil, err
	}
	if result.Tokens.Access == "" {
		return nil, fmt.Errorf("%w: access token missing", ErrInvalidResponse)
	}
	slog.Debug("access token issued",
		logging.WithEventID("AUTH_TOKEN"),
		c.fields.WithUser(username),
		c.fields.WithToken(result.Tokens.Access),
	)
	return &result, nil
}
