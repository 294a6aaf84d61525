// Package valkey はValkeyクライアントの共通機能を提供する。
package valkey

import (
	"strings"
	"time"
)

// Options はValkeyクライアントの接続オプション。
type Options struct {
	Addr           string        // 接続先アドレス（host:port形式）
	Password       string        // 認証パスワード
	DB             int           // データベース番号
	KeyPrefix      string        // キー名前空間のプレフィックス
	ConnectTimeout time.Duration // 接続タイムアウト
	ReadTimeout    time.Duration // 読み取りタイムアウト
	WriteTimeout   time.Duration // 書き込みタイムアウト
	PoolSize       int           // コネクションプールサイズ
}

// DefaultOptions はデフォルトのOptionsを返す。
// タイムアウト: 接続3秒、読み取り2秒、書き込み2秒
func DefaultOptions() *Options {
	return &Options{
		Addr:           "127.0.0.1:6379",
		KeyPrefix:      "roaming",
		ConnectTimeout: 3 * time.Second,
		ReadTimeout:    2 * time.Second,
		WriteTimeout:   2 * time.Second,
		PoolSize:       4,
	}
}

// SessionOptions はコンソールのセッション保存向けのOptionsを返す。
// 対話操作の途中で待たされないようタイムアウトを短めにする。
func SessionOptions() *Options {
	return DefaultOptions().
		WithTimeouts(2*time.Second, time.Second, time.Second).
		WithPoolSize(2)
}

// WithAddr はアドレスを設定する。
func (o *Options) WithAddr(addr string) *Options {
	o.Addr = addr
	return o
}

// WithPassword はパスワードを設定する。
func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithDB はデータベース番号を設定する。
func (o *Options) WithDB(db int) *Options {
	o.DB = db
	return o
}

// WithKeyPrefix はキープレフィックスを設定する。
func (o *Options) WithKeyPrefix(prefix string) *Options {
	o.KeyPrefix = strings.TrimSuffix(prefix, ":")
	return o
}

// WithTimeouts はタイムアウトを設定する。
func (o *Options) WithTimeouts(connect, read, write time.Duration) *Options {
	o.ConnectTimeout = connect
	o.ReadTimeout = read
	o.WriteTimeout = write
	return o
}

// WithPoolSize はプールサイズを設定する。
func (o *Options) WithPoolSize(size int) *Options {
	o.PoolSize = size
	return o
}

// Key はプレフィックス付きのキーを組み立てる。
// 例: Key("session", "ops@example.com") → roaming:session:ops@example.com
func (o *Options) Key(parts ...string) string {
	all := make([]string, 0, len(parts)+1)
	if o.KeyPrefix != "" {
		all = append(all, o.KeyPrefix)
	}
	all = append(all, parts...)
	return strings.Join(all, ":")
}
