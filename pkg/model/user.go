package model

import "strings"

// User はログインユーザーを表す。
type User struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// DisplayName は画面表示用の氏名を返す。
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Tokens は認証トークンの組を表す。
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest はログインリクエストボディを表す。
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult はログイン成功時のレスポンスデータを表す。
type LoginResult struct {
	Tokens Tokens `json:"tokens"`
	User   User   `json:"user"`
}
