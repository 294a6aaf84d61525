// Package auth はmock-backendのログインとアクセストークン検証を提供する。
package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/config"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// Authenticator は単一の管理者アカウントでログインを受け付ける。
// 発行したトークンはプロセスの生存期間中有効。
type Authenticator struct {
	username string
	password string
	user     model.User

	mu     sync.RWMutex
	tokens map[string]struct{}
	newID  func() string
}

// New は新しいAuthenticatorを生成する。
func New(cfg *config.Config) *Authenticator {
	return &Authenticator{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		user: model.User{
			ID:        1,
			Username:  cfg.AdminUsername,
			Email:     cfg.AdminUsername,
			FirstName: cfg.AdminFirstName,
			LastName:  cfg.AdminLastName,
		},
		tokens: make(map[string]struct{}),
		newID:  uuid.NewString,
	}
}

// Login は資格情報を照合し、アクセス・リフレッシュトークンを発行する。
// ユーザー名は大文字小文字を区別しない。
func (a *Authenticator) Login(username, password string) (*model.LoginResult, error) {
	if !strings.EqualFold(strings.TrimSpace(username), a.username) || password != a.password {
		return nil, apperr.ErrInvalidCredentials
	}

	access := a.newID()
	refresh := a.newID()

	a.mu.Lock()
	a.tokens[access] = struct{}{}
	a.mu.Unlock()

	return &model.LoginResult{
		Tokens: model.Tokens{Access: access, Refresh: refresh},
		User:   a.user,
	}, nil
}

// Valid はアクセストークンが発行済みかどうかを返す。
func (a *Authenticator) Valid(token string) bool {
	if token == "" {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.tokens[token]
	return ok
}

// Revoke はアクセストークンを無効化する。
func (a *Authenticator) Revoke(token string) {
	a.mu.Lock()
	delete(a.tokens, token)
	a.mu.Unlock()
}
