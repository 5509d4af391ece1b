// Package handler はカタログ機能のHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"monopoly_backend/internal/feature/catalog/domain"
	"monopoly_backend/internal/feature/catalog/transport/http/dto"
)

// CatalogUsecase はハンドラーが必要とするカタログ参照のインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	ListAreas(ctx context.Context) ([]string, error)
	ListAssets(ctx context.Context, area string) ([]string, error)
	ListCommercialTypes(ctx context.Context) ([]string, error)
	ListCommercialAssets(ctx context.Context, assetType string) ([]string, error)
}

// CatalogHandler は読み取り専用のカタログ一覧に関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Areas はエリア一覧を返すAPIです（GET /api/areas）。
func (h *CatalogHandler) Areas(c *gin.Context) {
	areas, err := h.uc.ListAreas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.AreasRes{Areas: areas})
}

// Assets はエリア内の土地一覧を返すAPIです（GET /api/assets/:area）。
// 存在しないエリアの場合はエリア名を含むメッセージで404を返します。
func (h *CatalogHandler) Assets(c *gin.Context) {
	area := c.Param("area")
	assets, err := h.uc.ListAssets(c.Request.Context(), area)
	if err != nil {
		h.writeLookupError(c, err, "area", area)
		return
	}
	c.JSON(http.StatusOK, dto.AssetsRes{Assets: assets})
}

// CommercialTypes は商業資産の種類一覧を返すAPIです（GET /api/commercial-types）。
func (h *CatalogHandler) CommercialTypes(c *gin.Context) {
	types, err := h.uc.ListCommercialTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CommercialTypesRes{Types: types})
}

// CommercialAssets は種類ごとの商業資産一覧を返すAPIです（GET /api/commercial-assets/:type）。
func (h *CatalogHandler) CommercialAssets(c *gin.Context) {
	assetType := c.Param("type")
	assets, err := h.uc.ListCommercialAssets(c.Request.Context(), assetType)
	if err != nil {
		h.writeLookupError(c, err, "asset type", assetType)
		return
	}
	c.JSON(http.StatusOK, dto.AssetsRes{Assets: assets})
}

func (h *CatalogHandler) writeLookupError(c *gin.Context, err error, kind, name string) {
	if errors.Is(err, domain.ErrAreaNotFound) || errors.Is(err, domain.ErrCommercialTypeNotFound) {
		slog.Warn("catalog lookup miss", kind, name, "remote_addr", c.ClientIP())
		c.JSON(http.StatusNotFound, gin.H{"error": kind + ` "` + name + `" not found`})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
