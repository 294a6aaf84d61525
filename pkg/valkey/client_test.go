package valkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/redis/go-redis/v9"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(SessionOptions().WithAddr(mr.Addr()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Set(ctx, "roaming:test", "v", 0).Err(); err != nil {
		t.Errorf("Set() error = %v", err)
	}
	if !mr.Exists("roaming:test") {
		t.Error("key should exist in miniredis")
	}
}

func TestNewClientWithPassword(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	if _, err := NewClient(DefaultOptions().WithAddr(mr.Addr())); err == nil {
		t.Error("NewClient() without password should fail")
	}

	client, err := NewClient(DefaultOptions().WithAddr(mr.Addr()).WithPassword("s3cret"))
	if err != nil {
		t.Fatalf("NewClient() with password error = %v", err)
	}
	defer client.Close()
}

func TestNewClientConnectionError(t *testing.T) {
	opts := DefaultOptions().
		WithAddr("127.0.0.1:59999").
		WithTimeouts(100*time.Millisecond, 100*time.Millisecond, 100*time.Millisecond)

	_, err := NewClient(opts)
	if err == nil {
		t.Fatal("NewClient() expected error for invalid address")
	}
	if !errors.Is(err, apperr.ErrValkeyConnection) {
		t.Errorf("error should wrap ErrValkeyConnection: %v", err)
	}
	var ve *apperr.ValkeyError
	if !errors.As(err, &ve) || ve.Operation != "PING" {
		t.Errorf("error should be *apperr.ValkeyError with PING operation: %v", err)
	}
	if !IsConnectionError(err) {
		t.Error("IsConnectionError() = false, want true")
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"regular error", errors.New("some error"), false},
		{"context deadline exceeded", context.DeadlineExceeded, true},
		{"context canceled", context.Canceled, true},
		{"sentinel", apperr.ErrValkeyConnection, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnectionError(tt.err); got != tt.want {
				t.Errorf("IsConnectionError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsKeyNotFound(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(DefaultOptions().WithAddr(mr.Addr()))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	_, err = client.Get(context.Background(), "non-existent-key").Result()
	if !IsKeyNotFound(err) {
		t.Errorf("IsKeyNotFound(%v) = false, want true", err)
	}
	if !IsKeyNotFound(redis.Nil) {
		t.Error("IsKeyNotFound(redis.Nil) = false, want true")
	}
	if IsKeyNotFound(errors.New("other error")) {
		t.Error("IsKeyNotFound(other error) = true, want false")
	}
}
