// Package handler はmock-backendのHTTPリクエストハンドラーを提供する。
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/auth"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/store"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// イベントID
const (
	EventAuthOK   = "AUTH_OK"
	EventAuthErr  = "AUTH_ERR"
	EventWriteOK  = "WRITE_OK"
	EventWriteErr = "WRITE_ERR"
)

// Handler はREST APIのハンドラー。
type Handler struct {
	store *store.Store
	auth  *auth.Authenticator
}

// New は新しいHandlerを生成する。
func New(s *store.Store, a *auth.Authenticator) *Handler {
	return &Handler{store: s, auth: a}
}

// Authenticator はトークン検証に使うAuthenticatorを返す。
func (h *Handler) Authenticator() *auth.Authenticator {
	return h.auth
}

func traceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

// parseID はパスパラメータ :id を正の整数として解析する。
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteError(c, httputil.BadRequest(fmt.Sprintf("invalid id %q", c.Param("id"))))
		return 0, false
	}
	return id, true
}

// bindJSON はリクエストボディを読み込む。失敗時は400を書き込みfalseを返す。
func bindJSON(c *gin.Context, resource string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		slog.Warn("invalid request body",
			logging.WithTraceID(traceID(c)),
			logging.WithEventID(EventWriteErr),
			logging.WithResource(resource),
			logging.WithError(err),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return false
	}
	return true
}

// writeStoreError はストアのエラーをHTTPステータスに対応付けて書き込む。
func writeStoreError(c *gin.Context, resource string, err error) {
	var failure *httputil.Failure
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		failure = httputil.NotFound(err.Error())
	case errors.Is(err, apperr.ErrConflict):
		failure = httputil.Conflict(err.Error())
	case errors.Is(err, apperr.ErrCountryUnresolved),
		errors.Is(err, apperr.ErrPartnerUnresolved),
		errors.Is(err, apperr.ErrInvalidRequest):
		failure = httputil.BadRequest(err.Error())
	default:
		failure = httputil.InternalServerError("An unexpected error occurred")
	}

	slog.Warn("request rejected",
		logging.WithTraceID(traceID(c)),
		logging.WithEventID(EventWriteErr),
		logging.WithResource(resource),
		logging.WithHTTPStatus(failure.Status),
		logging.WithError(err),
	)
	httputil.WriteError(c, failure)
}

func logWrite(c *gin.Context, resource, action string, id int64) {
	slog.Info(resource+" "+action,
		logging.WithTraceID(traceID(c)),
		logging.WithEventID(EventWriteOK),
		logging.WithResource(resource),
		slog.Int64("id", id),
	)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperr.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// HandleHealth はGET /health のハンドラー。
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
