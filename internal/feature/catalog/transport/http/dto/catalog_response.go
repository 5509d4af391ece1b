// Package dto defines response bodies for the catalog feature's HTTP transport layer.
package dto

// AreasRes is the body of GET /api/areas.
type AreasRes struct {
	Areas []string `json:"areas"`
}

// AssetsRes is the body of GET /api/assets/:area and GET /api/commercial-assets/:type.
type AssetsRes struct {
	Assets []string `json:"assets"`
}

// CommercialTypesRes is the body of GET /api/commercial-types.
type CommercialTypesRes struct {
	Types []string `json:"types"`
}
