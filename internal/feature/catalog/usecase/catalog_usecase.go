// Package usecase implements read-side queries over the board catalog.
package usecase

import (
	"context"

	"monopoly_backend/internal/feature/catalog/domain/entity"
)

// CatalogUsecase answers catalog listing queries for the transport layer.
type CatalogUsecase struct {
	catalog *entity.Catalog
}

// NewCatalogUsecase creates a CatalogUsecase over an already loaded catalog.
func NewCatalogUsecase(catalog *entity.Catalog) *CatalogUsecase {
	return &CatalogUsecase{catalog: catalog}
}

// ListAreas returns every property area, sorted.
func (u *CatalogUsecase) ListAreas(ctx context.Context) ([]string, error) {
	return u.catalog.Areas(), nil
}

// ListAssets returns the assets of one area, sorted.
func (u *CatalogUsecase) ListAssets(ctx context.Context, area string) ([]string, error) {
	return u.catalog.Assets(area)
}

// ListCommercialTypes returns every commercial asset type, sorted.
func (u *CatalogUsecase) ListCommercialTypes(ctx context.Context) ([]string, error) {
	return u.catalog.CommercialTypes(), nil
}

// ListCommercialAssets returns the assets of one commercial type, sorted.
func (u *CatalogUsecase) ListCommercialAssets(ctx context.Context, assetType string) ([]string, error) {
	return u.catalog.CommercialAssets(assetType)
}

// Counts reports how many areas and commercial types were loaded.
func (u *CatalogUsecase) Counts() (areas, commercialTypes int) {
	return len(u.catalog.Areas()), len(u.catalog.CommercialTypes())
}
