package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setRequiredEnv は必須環境変数をすべて設定する
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ROAMING_API_URL", "http://localhost:8081")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ROAMING_API_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SESSION_STORE", "Valkey")
	t.Setenv("VALKEY_ADDR", "valkey:6379")
	t.Setenv("VALKEY_PASSWORD", "secret")
	t.Setenv("PAGE_SIZE", "25")

	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom() returned error: %v", err)
	}

	if cfg.APIURL != "http://localhost:8081" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "http://localhost:8081")
	}
	if cfg.APITimeout != 3*time.Second {
		t.Errorf("APITimeout = %v, want %v", cfg.APITimeout, 3*time.Second)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "DEBUG")
	}
	if !cfg.UseValkeySession() {
		t.Error("UseValkeySession() = false, want true")
	}
	if cfg.ValkeyAddr != "valkey:6379" {
		t.Errorf("ValkeyAddr = %q", cfg.ValkeyAddr)
	}
	if cfg.ValkeyPassword != "secret" {
		t.Errorf("ValkeyPassword = %q", cfg.ValkeyPassword)
	}
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.PageSize)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFrom()
	if err != nil {
		t.Fatalf("LoadFrom() returned error: %v", err)
	}

	if cfg.APITimeout != 10*time.Second {
		t.Errorf("APITimeout default = %v, want %v", cfg.APITimeout, 10*time.Second)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel default = %q, want %q", cfg.LogLevel, "INFO")
	}
	if cfg.LogFile != "admin-tui.log" {
		t.Errorf("LogFile default = %q", cfg.LogFile)
	}
	if cfg.SessionStore != SessionStoreMemory {
		t.Errorf("SessionStore default = %q, want %q", cfg.SessionStore, SessionStoreMemory)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("SessionTTL default = %v", cfg.SessionTTL)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize default = %d, want 10", cfg.PageSize)
	}
	if !cfg.LogMask {
		t.Error("LogMask default = false, want true")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"missing scheme", "ROAMING_API_URL", "localhost:8081"},
		{"unknown session store", "SESSION_STORE", "sqlite"},
		{"page size not in options", "PAGE_SIZE", "7"},
		{"non-positive timeout", "ROAMING_API_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			if _, err := LoadFrom(); err == nil {
				t.Errorf("LoadFrom() expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("ROAMING_API_URL", "")
	os.Unsetenv("ROAMING_API_URL")

	if _, err := LoadFrom(); err == nil {
		t.Error("LoadFrom() expected error when ROAMING_API_URL is missing")
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("ROAMING_API_URL", "")
	os.Unsetenv("ROAMING_API_URL")
	t.Setenv("PAGE_SIZE", "")
	os.Unsetenv("PAGE_SIZE")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "ROAMING_API_URL=https://roaming.example.com\nPAGE_SIZE=5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("ROAMING_API_URL")
		os.Unsetenv("PAGE_SIZE")
	})

	cfg, err := LoadFrom(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadFrom() returned error: %v", err)
	}
	if cfg.APIURL != "https://roaming.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
}
