// Package entity defines the static board catalog: street properties and commercial assets.
package entity

import (
	"fmt"

	"monopoly_backend/internal/feature/catalog/domain"
)

// MaxHouses is the highest house count a property can carry.
const MaxHouses = 4

// RentTable holds the rent owed for 0..4 houses, indexed by house count.
type RentTable [MaxHouses + 1]int

// PropertyAsset is a street property in an area (a colour group on the board).
type PropertyAsset struct {
	Area       string
	Name       string
	LandPrice  int
	HousePrice int
	Rent       RentTable
}

// RentFor returns the rent for the given house count.
// Counts outside 0..4 are rejected rather than clamped; clamping is the caller's call.
func (p PropertyAsset) RentFor(houses int) (int, error) {
	if houses < 0 || houses > MaxHouses {
		return 0, fmt.Errorf("%w: %d", domain.ErrHouseCountOutOfRange, houses)
	}
	return p.Rent[houses], nil
}

// PurchaseCost returns what a player pays the Treasurer for buying the land
// (only when firstAcquisition) plus housesAdded houses.
func (p PropertyAsset) PurchaseCost(firstAcquisition bool, housesAdded int) int {
	cost := p.HousePrice * housesAdded
	if firstAcquisition {
		cost += p.LandPrice
	}
	return cost
}

func (p PropertyAsset) validate() error {
	if p.Area == "" || p.Name == "" {
		return fmt.Errorf("%w: property with empty area or name", domain.ErrInvalidCatalog)
	}
	if p.LandPrice < 0 || p.HousePrice < 0 {
		return fmt.Errorf("%w: %s/%s has a negative price", domain.ErrInvalidCatalog, p.Area, p.Name)
	}
	for i, r := range p.Rent {
		if r < 0 {
			return fmt.Errorf("%w: %s/%s has negative rent for %d houses", domain.ErrInvalidCatalog, p.Area, p.Name, i)
		}
	}
	return nil
}
