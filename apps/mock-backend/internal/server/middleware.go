package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/auth"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/handler"
	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

const (
	traceIDHeader       = "X-Trace-ID"
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// TraceIDMiddleware はX-Trace-IDヘッダからトレースIDを取得する。
// ヘッダがない場合は新たに採番し、レスポンスヘッダにも返す。
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Set(handler.TraceIDKey, traceID)
		c.Header(traceIDHeader, traceID)
		c.Next()
	}
}

// LoggingMiddleware はリクエストログを出力する。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		slog.Info("request completed",
			logging.WithTraceID(c.GetString(handler.TraceIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			logging.WithHTTPStatus(c.Writer.Status()),
			logging.WithLatency(time.Since(start).Milliseconds()),
		)
	}
}

// RecoveryMiddleware はパニックからの復旧を行う。
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("panic recovered",
					logging.WithTraceID(c.GetString(handler.TraceIDKey)),
					slog.Any("error", err),
				)
				httputil.AbortWithError(c, httputil.InternalServerError("An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}

// BearerAuthMiddleware はAuthorizationヘッダのBearerトークンを検証する。
func BearerAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || !a.Valid(strings.TrimSpace(token)) {
			slog.Warn("unauthorized request",
				logging.WithTraceID(c.GetString(handler.TraceIDKey)),
				logging.WithEventID(handler.EventAuthErr),
				slog.String("path", c.Request.URL.Path),
			)
			httputil.AbortWithError(c, httputil.Unauthorized("Authentication credentials were not provided or are invalid"))
			return
		}
		c.Next()
	}
}
