// Package api はローミング管理バックエンドのRESTクライアントを提供する。
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

// Client はバックエンドAPIクライアントの実装
type Client struct {
	httpClient *resty.Client
	cb         *gobreaker.CircuitBreaker
	baseURL    string
	tokens     TokenSource
	fields     *logging.CommonFields
}

// NewClient は新しいAPIクライアントを生成する。
// tokensは認証済みリクエストのBearerトークン取得に使用する。
func NewClient(cfg *config.Config, tokens TokenSource) *Client {
	httpClient := resty.New().
		SetTimeout(cfg.APITimeout)

	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker(cbSettings),
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		tokens:     tokens,
		fields:     logging.NewCommonFields(logging.NewMasker(cfg.LogMask)),
	}
}

// request は1回のAPI呼び出しの内容を表す。
type request struct {
	method   string
	path     string
	resource string
	body     any
	auth     bool
}

// envelopeJSON はレスポンスエンベロープのパース用構造体
type envelopeJSON struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do はリクエストを送信し、エンベロープのdataをoutに読み込む。
// 5xxと接続エラーのみCircuit Breakerの失敗として数える。
func (c *Client) do(ctx context.Context, req request, out any) error {
	var token string
	if req.auth {
		t, err := c.tokens.AccessToken()
		if err != nil {
			return err
		}
		token = t
	}

	traceID := uuid.NewString()
	start := time.Now()

	result, err := c.cb.Execute(func() (any, error) {
		r := c.httpClient.R().
			SetContext(ctx).
			SetHeader(HeaderTraceID, traceID).
			SetHeader(HeaderContentType, ContentTypeJSON)
		if token != "" {
			r.SetAuthToken(token)
		}
		if req.body != nil {
			r.SetBody(req.body)
		}

		resp, err := r.Execute(req.method, c.baseURL+req.path)
		if err != nil {
			return nil, &ConnectionError{Cause: err}
		}

		latencyMs := time.Since(start).Milliseconds()
		statusCode := resp.StatusCode()

		if statusCode >= 500 {
			apiErr := parseAPIError(req.resource, statusCode, resp.Body())
			slog.Error("backend api error", append(c.fields.APILogFields(traceID, "API_ERR", req.resource),
				logging.WithError(apiErr),
				logging.WithHTTPStatus(statusCode),
				logging.WithLatency(latencyMs),
			)...)
			return nil, apiErr
		}

		if statusCode < 200 || statusCode >= 300 {
			apiErr := parseAPIError(req.resource, statusCode, resp.Body())
			slog.Warn("backend api rejected request", append(c.fields.APILogFields(traceID, "API_ERR", req.resource),
				logging.WithError(apiErr),
				logging.WithHTTPStatus(statusCode),
				logging.WithLatency(latencyMs),
			)...)
			// CB対象外エラーはnilを返してCBカウントに含めない
			return apiErr, nil
		}

		slog.Debug("backend api success",
			logging.WithTraceID(traceID),
			slog.String("method", req.method),
			slog.String("path", req.path),
			logging.WithHTTPStatus(statusCode),
			logging.WithLatency(latencyMs),
		)

		return resp.Body(), nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ErrCircuitOpen
		}
		return err
	}

	if apiErr, ok := result.(*APIError); ok {
		return apiErr
	}

	body, ok := result.([]byte)
	if !ok {
		return ErrInvalidResponse
	}

	return decodeEnvelope(req.resource, body, out)
}

// decodeEnvelope は {success, data, message} を検査し、dataをoutに読み込む。
func decodeEnvelope(resource string, body []byte, out any) error {
	if len(body) == 0 {
		if out == nil {
			return nil
		}
		return fmt.Errorf("%w: empty body", ErrInvalidResponse)
	}

	var env envelopeJSON
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: json unmarshal: %v", ErrInvalidResponse, err)
	}
	if !env.Success {
		return &APIError{StatusCode: 200, Resource: resource, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: data unmarshal: %v", ErrInvalidResponse, err)
	}
	return nil
}

// parseAPIError はHTTPエラーレスポンスをAPIErrorに変換する。
func parseAPIError(resource string, statusCode int, body []byte) *APIError {
	var env envelopeJSON
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Resource:   resource,
			Message:    env.Message,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Resource:   resource,
		Message:    strings.TrimSpace(string(body)),
	}
}

// itemPath はIDを含むパスを返す。
func itemPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}
