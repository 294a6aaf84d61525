// Package httputil はHTTP関連のユーティリティを提供する。
package httputil

import (
	"encoding/json"
	"net/http"
)

// Failure は {success:false, message} 形式のエラーレスポンスを表す。
type Failure struct {
	Status  int    `json:"-"`       // HTTPステータスコード
	Success bool   `json:"success"` // 常にfalse
	Message string `json:"message"` // エラーメッセージ
}

// NewFailure は新しいFailureを生成する。
func NewFailure(status int, message string) *Failure {
	return &Failure{
		Status:  status,
		Success: false,
		Message: message,
	}
}

// BadRequest は400 Bad Requestのエラーレスポンスを生成する。
func BadRequest(message string) *Failure {
	return NewFailure(http.StatusBadRequest, message)
}

// Unauthorized は401 Unauthorizedのエラーレスポンスを生成する。
func Unauthorized(message string) *Failure {
	return NewFailure(http.StatusUnauthorized, message)
}

// NotFound は404 Not Foundのエラーレスポンスを生成する。
func NotFound(message string) *Failure {
	return NewFailure(http.StatusNotFound, message)
}

// Conflict は409 Conflictのエラーレスポンスを生成する。
func Conflict(message string) *Failure {
	return NewFailure(http.StatusConflict, message)
}

// InternalServerError は500 Internal Server Errorのエラーレスポンスを生成する。
func InternalServerError(message string) *Failure {
	return NewFailure(http.StatusInternalServerError, message)
}

// Success は {success:true, data, message?} 形式の成功レスポンスを表す。
type Success struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// NewSuccess は新しいSuccessを生成する。
func NewSuccess(data any, message string) *Success {
	return &Success{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// JSON はFailureをJSON形式にエンコードする。
func (f *Failure) JSON() ([]byte, error) {
	return json.Marshal(f)
}

// ContentType はレスポンスのContent-Typeヘッダー値。
const ContentType = "application/json; charset=utf-8"
