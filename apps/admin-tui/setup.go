package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/session"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
	"github.com/oyaguma3/roaming-admin/pkg/valkey"
)

var timeNow = time.Now

// setupLogging は運用ログをJSON形式でファイルに出力するよう設定する。
// TUIが端末を占有するため標準出力には書かない。
func setupLogging(level, file string) (func(), error) {
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: parseLevel(level),
	})).With("app", "admin-tui")
	slog.SetDefault(logger)
	return func() { _ = f.Close() }, nil
}

// parseLevel はLOG_LEVELの値をslog.Levelに変換する。不明な値はINFO。
func parseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// openAuditFile は監査ログの出力先を開く。
// pathが空の場合はfallbackを使い、fallbackも空なら標準出力に書く。
func openAuditFile(path, fallback string) (io.Writer, func(), error) {
	if path == "" {
		path = fallback
	}
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open audit file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openSessionStore は設定に応じたセッション保存先を返す。
func openSessionStore(cfg *config.Config) (session.Store, func(), error) {
	if !cfg.UseValkeySession() {
		return session.NewMemoryStore(), func() {}, nil
	}

	opts := valkey.SessionOptions().
		WithAddr(cfg.ValkeyAddr).
		WithPassword(cfg.ValkeyPassword)
	client, err := valkey.NewClient(opts)
	if err != nil {
		slog.Error("valkey connection failed",
			logging.WithEventID("VALKEY_CONN_ERR"),
			slog.String("addr", cfg.ValkeyAddr),
			logging.WithError(err),
		)
		return nil, nil, err
	}
	return session.NewValkeyStore(client, opts), func() { _ = client.Close() }, nil
}
