// Package server はHTTPサーバーの管理を提供する。
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/handler"
)

// Server はHTTPサーバーを管理する。
type Server struct {
	engine *gin.Engine
	server *http.Server
	cfg    *config.Config
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *handler.Handler) *Server {
	gin.SetMode(cfg.GinMode)

	engine := NewEngine(h)

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: engine,
		},
		cfg: cfg,
	}
}

// NewEngine はミドルウェアとルーティングを設定したgin.Engineを生成する。
func NewEngine(h *handler.Handler) *gin.Engine {
	engine := gin.New()

	engine.Use(TraceIDMiddleware())
	engine.Use(LoggingMiddleware())
	engine.Use(RecoveryMiddleware())

	SetupRouter(engine, h)
	return engine
}

// Handler はテストなどで直接利用するためのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run はサーバーを起動する。
func (s *Server) Run() error {
	slog.Info("starting server", "addr", s.cfg.ListenAddr)
	return s.server.ListenAndServe()
}

// Shutdown はサーバーをシャットダウンする。
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down server")
	return s.server.Shutdown(ctx)
}
