// Package session はログインセッション（トークンとユーザー情報）を管理する。
// セッションはログイン時に作成され、ログアウト時に破棄される。それ以外の箇所からは読み取り専用。
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Session はログイン済みセッションを表す。
type Session struct {
	Tokens    model.Tokens `json:"tokens"`
	User      model.User   `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Expired は有効期限を過ぎているかどうかを返す。ttlが0以下の場合は期限なし。
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.CreatedAt) > ttl
}

// Context は現在のセッションを保持し、画面やAPIクライアントに注入される。
type Context struct {
	mu      sync.RWMutex
	current *Session
	store   Store
	ttl     time.Duration
	now     func() time.Time
}

// NewContext は新しいContextを生成する。
func NewContext(store Store, ttl time.Duration) *Context {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Context{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Begin はログイン結果からセッションを作成し、ストアに保存する。
func (c *Context) Begin(ctx context.Context, result *model.LoginResult) (*Session, error) {
	if result == nil || result.Tokens.Access == "" {
		return nil, apperr.ErrUnauthorized
	}

	s := &Session{
		Tokens:    result.Tokens,
		User:      result.User,
		CreatedAt: c.now(),
	}
	if err := c.store.Save(ctx, s, c.ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	return s, nil
}

// Restore はストアから有効なセッションを読み込む。
// セッションがない場合や期限切れの場合はfalseを返す。
func (c *Context) Restore(ctx context.Context) (bool, error) {
	s, err := c.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	if s.Expired(c.now(), c.ttl) || s.Tokens.Access == "" {
		if err := c.store.Delete(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	return true, nil
}

// End はセッションを破棄する。ストアの削除に失敗してもメモリ上のセッションは破棄する。
func (c *Context) End(ctx context.Context) error {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
	return c.store.Delete(ctx)
}

// Current は現在のセッションのコピーを返す。
func (c *Context) Current() (Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return Session{}, false
	}
	return *c.current, true
}

// AccessToken はアクセストークンを返す。未ログインの場合はErrNotLoggedIn。
func (c *Context) AccessToken() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return "", apperr.ErrNotLoggedIn
	}
	return c.current.Tokens.Access, nil
}

// UserName は監査ログ・ヘッダー表示用のユーザー名を返す。
func (c *Context) UserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return ""
	}
	if c.current.User.Email != "" {
		return c.current.User.Email
	}
	return c.current.User.DisplayName()
}

// LoggedIn はログイン済みかどうかを返す。
func (c *Context) LoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}
