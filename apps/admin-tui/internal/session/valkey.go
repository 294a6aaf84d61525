package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/valkey"
)

// ValkeyStore はValkeyにセッションをJSONで保存するストア。
// 端末を再起動してもTTL内であればセッションを復元できる。
type ValkeyStore struct {
	client *redis.Client
	key    string
}

// NewValkeyStore は新しいValkeyStoreを生成する。
func NewValkeyStore(client *redis.Client, opts *valkey.Options) *ValkeyStore {
	if opts == nil {
		opts = valkey.SessionOptions()
	}
	return &ValkeyStore{
		client: client,
		key:    opts.Key("session", "current"),
	}
}

// Key はセッションを保存するキーを返す。
func (v *ValkeyStore) Key() string {
	return v.key
}

// Save はセッションを保存する。ttlが0以下の場合は期限なし。
func (v *ValkeyStore) Save(ctx context.Context, s *Session, ttl time.Duration) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := v.client.Set(ctx, v.key, data, ttl).Err(); err != nil {
		return apperr.NewValkeyError("SET", v.key, errors.Join(apperr.ErrValkeyCommand, err))
	}
	return nil
}

// Load はセッションを読み込む。
func (v *ValkeyStore) Load(ctx context.Context) (*Session, error) {
	data, err := v.client.Get(ctx, v.key).Bytes()
	if err != nil {
		if valkey.IsKeyNotFound(err) {
			return nil, apperr.ErrSessionNotFound
		}
		return nil, apperr.NewValkeyError("GET", v.key, errors.Join(apperr.ErrValkeyCommand, err))
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &s, nil
}

// Delete はセッションを削除する。
func (v *ValkeyStore) Delete(ctx context.Context) error {
	if err := v.client.Del(ctx, v.key).Err(); err != nil {
		return apperr.NewValkeyError("DEL", v.key, errors.Join(apperr.ErrValkeyCommand, err))
	}
	return nil
}
