package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はバックエンドからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from backend")
)

// APIError はHTTP APIエラーを表す。
// 2xx以外の応答に加え、success=falseのエンベロープもAPIErrorとして扱う。
type APIError struct {
	StatusCode int
	Resource   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s api error: %d %s", e.Resource, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s api error: %d %s", e.Resource, e.StatusCode, e.Message)
}

// Is はステータスコードに対応する共通エラーとの比較を行う。
func (e *APIError) Is(target error) bool {
	switch target {
	case apperr.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case apperr.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case apperr.ErrConflict:
		return e.StatusCode == http.StatusConflict
	case apperr.ErrBackendCommunication:
		return e.IsServerError()
	}
	return false
}

// IsNotFound はリソース未登録エラーかどうかを判定する
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is は接続エラーをバックエンド通信エラーとして扱う。
func (e *ConnectionError) Is(target error) bool {
	return target == apperr.ErrBackendCommunication
}

// UserMessage はステータスバーに表示する短いメッセージを返す。
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCircuitOpen):
		return "Backend is unavailable. Please retry later."
	case errors.Is(err, apperr.ErrNotLoggedIn), errors.Is(err, apperr.ErrUnauthorized):
		return "Session is not valid. Please log in again."
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return http.StatusText(apiErr.StatusCode)
	case errors.Is(err, apperr.ErrBackendCommunication):
		return "Could not reach the backend."
	}
	return err.Error()
}
