// Package config はAdmin TUIの設定管理を提供する。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// セッション保存先
const (
	SessionStoreMemory = "memory"
	SessionStoreValkey = "valkey"
)

// Config はAdmin TUIの設定を表す。
type Config struct {
	// REST API設定
	APIURL     string        `envconfig:"ROAMING_API_URL" required:"true"`
	APITimeout time.Duration `envconfig:"ROAMING_API_TIMEOUT" default:"10s"`

	// ログ設定
	LogLevel  string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogFile   string `envconfig:"LOG_FILE" default:"admin-tui.log"`
	AuditFile string `envconfig:"AUDIT_FILE"`
	LogMask   bool   `envconfig:"LOG_MASK" default:"true"`

	// セッション設定
	SessionStore   string        `envconfig:"SESSION_STORE" default:"memory"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"12h"`
	ValkeyAddr     string        `envconfig:"VALKEY_ADDR" default:"127.0.0.1:6379"`
	ValkeyPassword string        `envconfig:"VALKEY_PASSWORD"`

	// 画面設定
	PageSize int `envconfig:"PAGE_SIZE" default:"10"`
}

// Load は環境変数から設定を読み込む。
// カレントディレクトリに.envがあれば先に読み込む（既存の環境変数は上書きしない）。
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom は指定された.envファイルと環境変数から設定を読み込む。
// ファイルが存在しない場合は環境変数のみを使用する。
func LoadFrom(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// UseValkeySession はセッションをValkeyに保存するかどうかを返す。
func (c *Config) UseValkeySession() bool {
	return c.SessionStore == SessionStoreValkey
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("ROAMING_API_URL must start with http:// or https://")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("ROAMING_API_TIMEOUT must be positive")
	}
	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	if c.SessionStore != SessionStoreMemory && c.SessionStore != SessionStoreValkey {
		return fmt.Errorf("SESSION_STORE must be %q or %q", SessionStoreMemory, SessionStoreValkey)
	}
	if !isPageSizeOption(c.PageSize) {
		return fmt.Errorf("PAGE_SIZE must be one of %v", PageSizeOptions)
	}
	return nil
}

func isPageSizeOption(n int) bool {
	for _, opt := range PageSizeOptions {
		if opt == n {
			return true
		}
	}
	return false
}
