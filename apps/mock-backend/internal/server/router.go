package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/roaming-admin/apps/mock-backend/internal/handler"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.Handler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// 認証
	engine.POST("/auth/login", h.HandleLogin)

	api := engine.Group("/api")
	api.Use(BearerAuthMiddleware(h.Authenticator()))
	{
		api.GET("/partners", h.ListPartners)
		api.POST("/partners", h.CreatePartner)
		api.GET("/partners/:id", h.GetPartner)
		api.PUT("/partners/:id", h.UpdatePartner)
		api.DELETE("/partners/:id", h.DeletePartner)

		api.GET("/countries", h.ListCountries)
		api.POST("/countries", h.CreateCountry)
		api.GET("/countries/:id", h.GetCountry)
		api.PUT("/countries/:id", h.UpdateCountry)
		api.DELETE("/countries/:id", h.DeleteCountry)

		api.GET("/tariffs", h.ListTariffs)
		api.POST("/tariffs", h.CreateTariff)
		api.GET("/tariffs/:id", h.GetTariff)
		api.PUT("/tariffs/:id", h.UpdateTariff)
		api.DELETE("/tariffs/:id", h.DeleteTariff)

		api.GET("/opco-tariffs", h.ListOpcoTariffs)
		api.POST("/opco-tariffs", h.CreateOpcoTariff)
		api.GET("/opco-tariffs/:id", h.GetOpcoTariff)
		api.PUT("/opco-tariffs/:id", h.UpdateOpcoTariff)
		api.DELETE("/opco-tariffs/:id", h.DeleteOpcoTariff)
	}
}
