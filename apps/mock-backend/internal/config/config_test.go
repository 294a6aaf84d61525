package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "LOG_LEVEL", "GIN_MODE", "SEED_FILE", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != ":8081" {
		t.Errorf("ListenAddr = %q, want :8081", cfg.ListenAddr)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.AdminUsername != "admin@example.com" {
		t.Errorf("AdminUsername = %q", cfg.AdminUsername)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	os.Unsetenv("LISTEN_ADDR")
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LISTEN_ADDR=127.0.0.1:9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("LISTEN_ADDR") })

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"username not e-mail", "ADMIN_USERNAME", "admin"},
		{"unknown gin mode", "GIN_MODE", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}
