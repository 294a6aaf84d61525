package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldResource   = "resource"
	FieldCount      = "count"
	FieldUser       = "user"
	FieldToken      = "token"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithResource は対象リソース名のslog.Attrを返す。
func WithResource(resource string) slog.Attr {
	return slog.String(FieldResource, resource)
}

// WithCount は件数のslog.Attrを返す。
func WithCount(n int) slog.Attr {
	return slog.Int(FieldCount, n)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithUser はマスキングされたユーザー名（メールアドレス）のslog.Attrを返す。
func (cf *CommonFields) WithUser(user string) slog.Attr {
	return slog.String(FieldUser, cf.masker.Email(user))
}

// WithToken はマスキングされたトークンのslog.Attrを返す。
func (cf *CommonFields) WithToken(token string) slog.Attr {
	return slog.String(FieldToken, cf.masker.Token(token))
}

// APILogFields はAPI呼び出しログ用の共通フィールドを返す。
func (cf *CommonFields) APILogFields(traceID, eventID, resource string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		WithResource(resource),
	}
}
