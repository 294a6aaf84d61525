package api

// TokenSource は認証済みリクエストに付与するアクセストークンの取得元。
type TokenSource interface {
	AccessToken() (string, error)
}
