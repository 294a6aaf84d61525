package api

// HTTPヘッダ名
const (
	HeaderTraceID       = "X-Trace-ID"
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// エンドポイント
const (
	PathLogin       = "/auth/login"
	PathPartners    = "/api/partners"
	PathCountries   = "/api/countries"
	PathTariffs     = "/api/tariffs"
	PathOpcoTariffs = "/api/opco-tariffs"
)

// ログ・監査で使うリソース名
const (
	ResourcePartners    = "partners"
	ResourceCountries   = "countries"
	ResourceTariffs     = "tariffs"
	ResourceOpcoTariffs = "opco-tariffs"
	ResourceAuth        = "auth"
)
