// Package config は環境変数から設定を読み込む。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/mail"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config はmock-backendの設定を保持する。
type Config struct {
	// サーバー設定
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8081"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	GinMode    string `envconfig:"GIN_MODE" default:"release"`

	// データ設定（空の場合は組み込みのシードを使う）
	SeedFile string `envconfig:"SEED_FILE"`

	// ログイン資格情報
	AdminUsername  string `envconfig:"ADMIN_USERNAME" default:"admin@example.com"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD" default:"admin"`
	AdminFirstName string `envconfig:"ADMIN_FIRST_NAME" default:"Roaming"`
	AdminLastName  string `envconfig:"ADMIN_LAST_NAME" default:"Admin"`
}

// Load は.envファイルと環境変数から設定を読み込む。
func Load(envFiles ...string) (*Config, error) {
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

func (c *Config) validate() error {
	if _, err := mail.ParseAddress(c.AdminUsername); err != nil {
		return fmt.Errorf("ADMIN_USERNAME must be an e-mail address: %w", err)
	}
	if c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD must not be empty")
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test")
	}
	return nil
}
