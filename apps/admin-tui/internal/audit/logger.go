// Package audit は監査ログ機能を提供する。
package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Operation は監査ログの操作種別を表す。
type Operation string

const (
	// OpCreate は作成操作
	OpCreate Operation = "create"
	// OpUpdate は更新操作
	OpUpdate Operation = "update"
	// OpDelete は削除操作
	OpDelete Operation = "delete"
	// OpExport はエクスポート操作
	OpExport Operation = "export"
	// OpSearch は検索操作
	OpSearch Operation = "search"
	// OpLogin はログイン操作
	OpLogin Operation = "login"
	// OpLogout はログアウト操作
	OpLogout Operation = "logout"
)

// TargetType は監査ログの対象種別を表す。
type TargetType string

const (
	// TargetPartner はローミングパートナー
	TargetPartner TargetType = "partner"
	// TargetCountry は国（OPCO）
	TargetCountry TargetType = "country"
	// TargetTariff はパートナー料金表
	TargetTariff TargetType = "tariff"
	// TargetOpcoTariff はOPCO料金表
	TargetOpcoTariff TargetType = "opco_tariff"
	// TargetSession はログインセッション
	TargetSession TargetType = "session"
)

// Entry は監査ログエントリを表す。
type Entry struct {
	Time       string     `json:"time"`              // RFC3339形式のタイムスタンプ
	Level      string     `json:"level"`             // ログレベル（常に"INFO"）
	App        string     `json:"app"`               // アプリケーション名（常に"admin-tui"）
	EventID    string     `json:"event_id"`          // イベントID（常に"AUDIT_LOG"）
	Msg        string     `json:"msg"`               // メッセージ
	Operation  Operation  `json:"operation"`         // 操作種別
	TargetType TargetType `json:"target_type"`       // 対象種別
	TargetKey  string     `json:"target_key"`        // 対象キー（ID・ファイル名など）
	AdminUser  string     `json:"admin_user"`        // 操作ユーザー
	Details    string     `json:"details,omitempty"` // 追加詳細情報
}

// Logger は監査ログを出力する。
type Logger struct {
	writer    io.Writer
	adminUser string
	now       func() time.Time
	mu        sync.Mutex
}

// NewLogger は新しいLoggerを生成する。
func NewLogger(adminUser string) *Logger {
	return NewLoggerWithWriter(os.Stdout, adminUser)
}

// NewLoggerWithWriter は指定されたWriterを使用するLoggerを生成する。
func NewLoggerWithWriter(writer io.Writer, adminUser string) *Logger {
	return &Logger{
		writer:    writer,
		adminUser: adminUser,
		now:       time.Now,
	}
}

// SetAdminUser は操作ユーザーを設定する。ログイン・ログアウト時に呼び出す。
func (l *Logger) SetAdminUser(user string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.adminUser = user
}

// Log は監査ログエントリを出力する。
func (l *Logger) Log(op Operation, targetType TargetType, targetKey, msg string) {
	l.LogWithDetails(op, targetType, targetKey, msg, "")
}

// LogWithDetails は詳細情報付きで監査ログエントリを出力する。
func (l *Logger) LogWithDetails(op Operation, targetType TargetType, targetKey, msg, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := Entry{
		Time:       l.now().UTC().Format(time.RFC3339),
		Level:      "INFO",
		App:        "admin-tui",
		EventID:    "AUDIT_LOG",
		Msg:        msg,
		Operation:  op,
		TargetType: targetType,
		TargetKey:  targetKey,
		AdminUser:  l.adminUser,
		Details:    details,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = l.writer.Write(append(data, '\n'))
}

// LogCreate はCREATE操作のログを出力する。
func (l *Logger) LogCreate(targetType TargetType, targetKey, name string) {
	l.LogWithDetails(OpCreate, targetType, targetKey, string(targetType)+" created", name)
}

// LogUpdate はUPDATE操作のログを出力する。
func (l *Logger) LogUpdate(targetType TargetType, targetKey, name string) {
	l.LogWithDetails(OpUpdate, targetType, targetKey, string(targetType)+" updated", name)
}

// LogDelete はDELETE操作のログを出力する。
func (l *Logger) LogDelete(targetType TargetType, targetKey, name string) {
	l.LogWithDetails(OpDelete, targetType, targetKey, string(targetType)+" deleted", name)
}

// LogExport はEXPORT操作のログを出力する。
func (l *Logger) LogExport(targetType TargetType, count int, filename string) {
	l.LogWithDetails(OpExport, targetType, filename, string(targetType)+" exported", fmt.Sprintf("count=%d", count))
}

// LogSearch はSEARCH操作のログを出力する。
func (l *Logger) LogSearch(targetType TargetType, query string, resultCount int) {
	l.LogWithDetails(OpSearch, targetType, "", string(targetType)+" searched", fmt.Sprintf("query=%q results=%d", query, resultCount))
}

// LogLogin はログイン成功のログを出力する。
func (l *Logger) LogLogin(user string) {
	l.SetAdminUser(user)
	l.Log(OpLogin, TargetSession, user, "logged in")
}

// LogLogout はログアウトのログを出力する。
func (l *Logger) LogLogout() {
	l.mu.Lock()
	user := l.adminUser
	l.mu.Unlock()

	l.Log(OpLogout, TargetSession, user, "logged out")
	l.SetAdminUser("")
}
