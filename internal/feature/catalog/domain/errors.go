// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

// Lookup and validation errors for the static board catalog.
// Lookups never mutate anything, so callers can surface these directly.
var (
	// ErrAreaNotFound indicates that no property area has the given name.
	ErrAreaNotFound = errors.New("area not found")

	// ErrAssetNotFound indicates that the area exists but has no asset with the given name.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrCommercialTypeNotFound indicates that no commercial asset type has the given name.
	ErrCommercialTypeNotFound = errors.New("commercial asset type not found")

	// ErrCommercialAssetNotFound indicates that the commercial type has no asset with the given name.
	ErrCommercialAssetNotFound = errors.New("commercial asset not found")

	// ErrHouseCountOutOfRange is returned when a rent lookup is asked for a house count outside 0..4.
	ErrHouseCountOutOfRange = errors.New("house count out of range")

	// ErrNoTicketTable is returned when a ticket price is requested for an asset priced by multiplier.
	ErrNoTicketTable = errors.New("asset has no ticket table")

	// ErrNoMultiplierTable is returned when a multiplier is requested for an asset priced by ticket.
	ErrNoMultiplierTable = errors.New("asset has no multiplier table")

	// ErrInvalidCatalog wraps every shape problem found while loading a catalog.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
