package session

import (
	"context"
	"sync"
	"time"

	"github.com/oyaguma3/roaming-admin/pkg/apperr"
)

// Store はセッションの永続化先を表す。
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Load(ctx context.Context) (*Session, error)
	Delete(ctx context.Context) error
}

// MemoryStore はプロセス内にのみセッションを保持するストア。
type MemoryStore struct {
	mu sync.Mutex
	s  *Session
}

// NewMemoryStore は新しいMemoryStoreを生成する。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save はセッションを保持する。ttlは呼び出し元の期限判定に任せる。
func (m *MemoryStore) Save(_ context.Context, s *Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.s = &cp
	return nil
}

// Load は保持しているセッションを返す。
func (m *MemoryStore) Load(_ context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return nil, apperr.ErrSessionNotFound
	}
	cp := *m.s
	return &cp, nil
}

// Delete はセッションを破棄する。
func (m *MemoryStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	return nil
}
