package config

import "time"

// Circuit Breaker設定
const (
	CBName             = "roaming-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// 画面表示設定
const (
	PartnerPageSize    = 10
	CountryPageSize    = 5
	TariffPageSize     = 10
	OpcoTariffPageSize = 10
)

// PageSizeOptions は一覧画面で選択できる1ページあたりの行数
var PageSizeOptions = []int{5, 10, 25}

// 画面操作のタイムアウト
const (
	LoadTimeout   = 15 * time.Second
	SaveTimeout   = 10 * time.Second
	LoginTimeout  = 10 * time.Second
	ExportTimeout = 30 * time.Second
)
