package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/exporter"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/format"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/session"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
)

var (
	envFile        string
	exportResource string
	exportOut      string
	exportUser     string
)

// rootCmd はサブコマンド省略時にTUIを起動する。
var rootCmd = &cobra.Command{
	Use:           "admin-tui",
	Short:         "Roaming partners admin console",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

// tuiCmd はTUIを起動する。
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the terminal UI",
	RunE:  runTUI,
}

// exportCmd は一覧をCSVに書き出す。
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a CSV snapshot of a resource",
	Long: `Write a CSV snapshot without starting the terminal UI.

Resources: countries (opcos), partners, tariffs, opco-tariffs.
The stored session is used when available. Otherwise --username is required
and the password is read from ROAMING_PASSWORD.`,
	RunE: runExport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	exportCmd.Flags().StringVarP(&exportResource, "resource", "r", "", "resource to export")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: <resource>-<timestamp>.csv)")
	exportCmd.Flags().StringVarP(&exportUser, "username", "u", "", "login e-mail when no stored session exists")
	_ = exportCmd.MarkFlagRequired("resource")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(exportCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer closeLog()

	auditOut, closeAudit, err := openAuditFile(cfg.AuditFile, "admin-tui-audit.log")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer closeAudit()

	application := newApplication(cfg, audit.NewLoggerWithWriter(auditOut, ""))
	defer application.cleanup()
	return application.Run()
}

func runExport(cmd *cobra.Command, _ []string) error {
	resource, err := exporter.ParseResource(exportResource)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	auditOut, closeAudit, err := openAuditFile(cfg.AuditFile, "")
	if err != nil {
		return err
	}
	defer closeAudit()
	auditLogger := audit.NewLoggerWithWriter(auditOut, "")

	store, closeStore, err := openSessionStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), config.ExportTimeout)
	defer cancel()

	sessions := session.NewContext(store, cfg.SessionTTL)
	client := api.NewClient(cfg, sessions)
	if err := ensureSession(ctx, sessions, client); err != nil {
		return err
	}
	auditLogger.SetAdminUser(sessions.UserName())

	out := exportOut
	if out == "" {
		out = format.ExportFileName(string(resource), timeNow())
	}
	n, err := exporter.New(client).ToFile(ctx, resource, out)
	if err != nil {
		slog.Error("export failed",
			logging.WithEventID("EXPORT_FAILED"),
			logging.WithResource(string(resource)),
			logging.WithError(err),
		)
		return fmt.Errorf("export %s: %s", resource.Label(), api.UserMessage(err))
	}
	auditLogger.LogExport(resource.AuditTarget(), n, out)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format.Count(n, "row"), out)
	return nil
}

// ensureSession は保存済みセッションを復元し、無ければ--usernameでログインする。
func ensureSession(ctx context.Context, sessions *session.Context, client *api.Client) error {
	ok, err := sessions.Restore(ctx)
	if err != nil {
		slog.Warn("session restore failed",
			logging.WithEventID("SESSION_RESTORE_ERR"),
			logging.WithError(err),
		)
	}
	if ok {
		return nil
	}
	if exportUser == "" {
		return fmt.Errorf("%w: use --username or sign in with the terminal UI first", apperr.ErrNotLoggedIn)
	}
	password := os.Getenv("ROAMING_PASSWORD")
	if password == "" {
		return errors.New("ROAMING_PASSWORD is not set")
	}

	result, err := client.Login(ctx, exportUser, password)
	if err != nil {
		return fmt.Errorf("login failed: %s", api.UserMessage(err))
	}
	_, err = sessions.Begin(ctx, result)
	return err
}
