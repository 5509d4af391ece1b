// Package router はginエンジンとルーティングを組み立てます。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	cataloghandler "monopoly_backend/internal/feature/catalog/transport/handler"
	gamehandler "monopoly_backend/internal/feature/game/transport/handler"
)

// NewRouter は全エンドポイントを登録します。
// corsOrigins が空でなければ、別オリジンのブラウザUI向けにCORSを有効にします。
func NewRouter(health gin.HandlerFunc, catalog *cataloghandler.CatalogHandler,
	game *gamehandler.GameHandler, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  corsOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/api")
	{
		// 参照データ
		api.GET("/areas", catalog.Areas)
		api.GET("/assets/:area", catalog.Assets)
		api.GET("/commercial-types", catalog.CommercialTypes)
		api.GET("/commercial-assets/:type", catalog.CommercialAssets)

		// ゲーム状態の参照
		api.GET("/players", game.Players)
		api.GET("/player-assets/:player", game.PlayerAssets)
		api.GET("/database", game.Database)
		api.GET("/transactions", game.Transactions)
		api.GET("/balances", game.Balances)
		api.GET("/rent", game.Rent)
		api.GET("/ticket", game.Ticket)
		api.GET("/utility-rent", game.UtilityRent)

		// 状態を変更する操作
		api.POST("/assign", game.Assign)
		api.POST("/buy-utility", game.BuyUtility)
		api.POST("/pay-rent", game.PayRent)
		api.POST("/treasury-action", game.TreasuryAction)
		api.POST("/start-game", game.StartGame)
		api.POST("/reset-game", game.ResetGame)
	}

	return r
}
