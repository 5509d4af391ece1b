// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogCounter は読み込んだ参照データの件数を返します。
type CatalogCounter interface {
	Counts() (areas, commercialTypes int)
}

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// GET はカタログ件数を返し、HEAD はボディなしの200、OPTIONS は204を返します。
// レスポンスは常にキャッシュを防止します。
func NewHealth(catalog CatalogCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			areas, types := catalog.Counts()
			c.JSON(http.StatusOK, gin.H{
				"status":           "ok",
				"areas":            areas,
				"commercial_types": types,
			})
		}
	}
}
