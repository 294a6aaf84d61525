package valkey

import (
	"context"
	"errors"
	"net"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/redis/go-redis/v9"
)

// NewClient は新しいValkeyクライアントを生成する。
// 接続確認のためPINGを実行し、失敗した場合はエラーを返す。
func NewClient(opts *Options) (*redis.Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	return NewClientWithContext(ctx, opts)
}

// NewClientWithContext は指定されたコンテキストでValkeyクライアントを生成する。
func NewClientWithContext(ctx context.Context, opts *Options) (*redis.Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.ConnectTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperr.NewValkeyError("PING", "", errors.Join(apperr.ErrValkeyConnection, err))
	}

	return client, nil
}

// IsConnectionError は接続関連のエラーかどうかを判定する。
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, apperr.ErrValkeyConnection) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsKeyNotFound はキーが見つからないエラーかどうかを判定する。
func IsKeyNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}
