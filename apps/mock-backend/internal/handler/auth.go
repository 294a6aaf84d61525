package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/httputil"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

// loginRequest はPOST /auth/login のリクエストボディ。
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleLogin はPOST /auth/login のハンドラー。
func (h *Handler) HandleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.WriteError(c, httputil.BadRequest("username and password are required"))
		return
	}

	masker := logging.NewMasker(true)
	result, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed",
			logging.WithTraceID(traceID(c)),
			logging.WithEventID(EventAuthErr),
			slog.String("user", masker.Email(req.Username)),
		)
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			httputil.WriteError(c, httputil.Unauthorized("Invalid username or password"))
			return
		}
		httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
		return
	}

	slog.Info("login succeeded",
		logging.WithTraceID(traceID(c)),
		logging.WithEventID(EventAuthOK),
		slog.String("user", masker.Email(req.Username)),
	)
	httputil.WriteMessage(c, http.StatusOK, result, "Login successful")
}
