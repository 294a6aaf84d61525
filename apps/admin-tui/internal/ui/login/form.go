// Package login はログイン画面を提供する。
package login

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rivo/tview"

	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/api"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/audit"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/config"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/session"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/ui"
	"github.com/oyaguma3/roaming-admin/apps/admin-tui/internal/validation"
	"github.com/oyaguma3/roaming-admin/pkg/apperr"
	"github.com/oyaguma3/roaming-admin/pkg/logging"
	"github.com/oyaguma3/roaming-admin/pkg/model"
)

// フォームのラベル
const (
	LabelUsername = "Username"
	LabelPassword = "Password"
)

// Authenticator はログインAPIのインターフェース。
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*model.LoginResult, error)
}

// Screen はログイン画面を表す。
type Screen struct {
	form        *tview.Form
	app         *ui.App
	auth        Authenticator
	sessions    *session.Context
	auditLogger *audit.Logger
	fields      *logging.CommonFields
	busy        bool
	onSuccess   func(s *session.Session)
	onQuit      func()
}

// NewScreen は新しいScreenを生成する。
// fieldsはログに出すユーザー名のマスキングに使用する。
func NewScreen(app *ui.App, auth Authenticator, sessions *session.Context, auditLogger *audit.Logger, fields *logging.CommonFields) *Screen {
	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}
	s := &Screen{
		app:         app,
		auth:        auth,
		sessions:    sessions,
		auditLogger: auditLogger,
		fields:      fields,
	}
	s.form = ui.NewForm(s.handleQuit)
	s.form.SetTitle(" Sign in ")
	s.form.AddInputField(LabelUsername, "", 36, nil, nil)
	s.form.AddPasswordField(LabelPassword, "", 36, '*', nil)
	s.form.AddButton("Login", s.handleLogin)
	s.form.AddButton("Quit", s.handleQuit)
	return s
}

// SetOnSuccess はログイン成功時のコールバックを設定する。
func (s *Screen) SetOnSuccess(handler func(sess *session.Session)) {
	s.onSuccess = handler
}

// SetOnQuit は終了時のコールバックを設定する。
func (s *Screen) SetOnQuit(handler func()) {
	s.onQuit = handler
}

// GetForm は内部のtview.Formを返す。
func (s *Screen) GetForm() *tview.Form {
	return s.form
}

func (s *Screen) input() *validation.LoginInput {
	return &validation.LoginInput{
		Username: ui.InputText(s.form, LabelUsername),
		Password: ui.InputText(s.form, LabelPassword),
	}
}

func (s *Screen) handleLogin() {
	if s.busy {
		return
	}
	input := validation.NormalizeLoginInput(s.input())
	if errs := validation.ValidateLogin(input); len(errs) > 0 {
		s.app.GetStatusBar().ShowError(validation.Join(errs))
		return
	}

	s.busy = true
	s.app.GetStatusBar().ShowInfo("Signing in...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), config.LoginTimeout)
		defer cancel()
		sess, err := s.Authenticate(ctx, input)

		s.app.QueueUpdateDraw(func() {
			s.busy = false
			if err != nil {
				s.app.GetStatusBar().ShowError(loginMessage(err))
				return
			}
			ui.SetInputText(s.form, LabelPassword, "")
			if s.onSuccess != nil {
				s.onSuccess(sess)
			}
		})
	}()
}

// Authenticate はログインAPIを呼び出してセッションを開始する。
// UIを操作しないため、ゴルーチンから呼び出せる。
func (s *Screen) Authenticate(ctx context.Context, input *validation.LoginInput) (*session.Session, error) {
	result, err := s.auth.Login(ctx, input.Username, input.Password)
	if err != nil {
		slog.Warn("login failed",
			logging.WithEventID("LOGIN_FAILED"),
			s.fields.WithUser(input.Username),
			logging.WithError(err),
		)
		return nil, err
	}

	sess, err := s.sessions.Begin(ctx, result)
	if err != nil {
		return nil, err
	}

	user := s.sessions.UserName()
	s.auditLogger.SetAdminUser(user)
	s.auditLogger.LogLogin(user)
	slog.Info("login succeeded",
		logging.WithEventID("LOGIN_SUCCESS"),
		s.fields.WithUser(user),
	)
	return sess, nil
}

func (s *Screen) handleQuit() {
	if s.onQuit != nil {
		s.onQuit()
	}
}

// loginMessage はログイン失敗時にステータスバーへ表示する文言を返す。
func loginMessage(err error) string {
	if errors.Is(err, apperr.ErrInvalidCredentials) {
		return "Invalid username or password."
	}
	return "Login failed: " + api.UserMessage(err)
}
