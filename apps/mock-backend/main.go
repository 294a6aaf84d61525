// Package main はmock-backendのエントリーポイント。
// 管理コンソールの開発・結合テスト用にREST APIをインメモリで提供する。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/auth"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/handler"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/server"
	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/store"
)

const shutdownTimeout = 10 * time.Second

var envFile string

var rootCmd = &cobra.Command{
	Use:           "mock-backend",
	Short:         "In-memory REST backend for the roaming admin console",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "path to .env file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("mock-backend failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// 1. 設定読み込み
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting mock-backend",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"seed_file", cfg.SeedFile,
	)

	// 3. シードデータ投入
	seed, err := store.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	st := store.New(seed)
	slog.Info("seed loaded",
		"countries", len(seed.Countries),
		"partners", len(seed.Partners),
		"tariffs", len(seed.Tariffs),
		"opco_tariffs", len(seed.OpcoTariffs),
	)

	// 4. サーバー起動
	srv := server.New(cfg, handler.New(st, auth.New(cfg)))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 5. シグナル待機
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(logHandler).With("app", "mock-backend"))
}
