// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// 認証関連エラー
var (
	// ErrUnauthorized はアクセストークンが無効または未設定の場合のエラー
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials はログイン資格情報が不正な場合のエラー
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotLoggedIn はログイン前に認証が必要な操作を行った場合のエラー
	ErrNotLoggedIn = errors.New("not logged in")
)

// セッション関連エラー
var (
	// ErrSessionNotFound は保存済みセッションが見つからない場合のエラー
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired はセッション有効期限切れエラー
	ErrSessionExpired = errors.New("session expired")
)

// リソース関連エラー
var (
	// ErrNotFound はリソースが見つからない場合のエラー
	ErrNotFound = errors.New("resource not found")
	// ErrConflict はリソースの状態と矛盾する操作のエラー
	ErrConflict = errors.New("resource conflict")
	// ErrCountryUnresolved は国の参照を解決できない場合のエラー
	ErrCountryUnresolved = errors.New("country could not be resolved")
	// ErrPartnerUnresolved はパートナーの参照を解決できない場合のエラー
	ErrPartnerUnresolved = errors.New("partner could not be resolved")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
	// ErrBackendCommunication はバックエンド通信エラー
	ErrBackendCommunication = errors.New("backend communication error")
	// ErrInvalidRequest は不正なリクエストエラー
	ErrInvalidRequest = errors.New("invalid request")
)
