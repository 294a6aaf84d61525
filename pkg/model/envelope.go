package model

// Envelope はREST APIの共通レスポンス形式 {success, data, message} を表す。
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}
