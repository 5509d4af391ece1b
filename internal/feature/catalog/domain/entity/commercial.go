package entity

import (
	"fmt"
	"sort"

	"monopoly_backend/internal/feature/catalog/domain"
)

// CountTable maps "number of assets of this type owned" (1..4) to a value.
type CountTable map[int]int

// lookup clamps count into the table's key range and returns the value.
func (t CountTable) lookup(count int) (value, clamped int) {
	keys := t.keys()
	clamped = count
	if clamped < keys[0] {
		clamped = keys[0]
	}
	if clamped > keys[len(keys)-1] {
		clamped = keys[len(keys)-1]
	}
	// Gaps inside the range fall back to the nearest lower key.
	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] <= clamped {
			return t[keys[i]], clamped
		}
	}
	return t[keys[0]], clamped
}

func (t CountTable) keys() []int {
	keys := make([]int, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// CommercialAsset is a utility or transport unit. It is priced either by a
// multiplier table (utilities) or by a ticket table (transport), never both.
// Price is nil for "dummy" categories that are handed out at no cost.
type CommercialAsset struct {
	Type       string
	Name       string
	Price      *int
	Multiplier CountTable
	Ticket     CountTable
}

// PurchasePrice returns the configured price, or 0 when the asset is unpriced.
func (c CommercialAsset) PurchasePrice() int {
	if c.Price == nil {
		return 0
	}
	return *c.Price
}

// TicketFor returns the ticket price when the owner holds count assets of this type.
// It also returns the count actually used after clamping to the table's keys.
func (c CommercialAsset) TicketFor(count int) (int, int, error) {
	if len(c.Ticket) == 0 {
		return 0, 0, fmt.Errorf("%w: %s/%s", domain.ErrNoTicketTable, c.Type, c.Name)
	}
	v, used := c.Ticket.lookup(count)
	return v, used, nil
}

// MultiplierFor returns the dice multiplier when the owner holds count assets of this type.
func (c CommercialAsset) MultiplierFor(count int) (int, int, error) {
	if len(c.Multiplier) == 0 {
		return 0, 0, fmt.Errorf("%w: %s/%s", domain.ErrNoMultiplierTable, c.Type, c.Name)
	}
	v, used := c.Multiplier.lookup(count)
	return v, used, nil
}

func (c CommercialAsset) validate() error {
	if c.Type == "" || c.Name == "" {
		return fmt.Errorf("%w: commercial asset with empty type or name", domain.ErrInvalidCatalog)
	}
	if c.Price != nil && *c.Price < 0 {
		return fmt.Errorf("%w: %s/%s has a negative price", domain.ErrInvalidCatalog, c.Type, c.Name)
	}
	if len(c.Multiplier) > 0 && len(c.Ticket) > 0 {
		return fmt.Errorf("%w: %s/%s has both a multiplier and a ticket table", domain.ErrInvalidCatalog, c.Type, c.Name)
	}
	for _, table := range []CountTable{c.Multiplier, c.Ticket} {
		for k, v := range table {
			if k < 1 || k > MaxHouses {
				return fmt.Errorf("%w: %s/%s has count key %d outside 1..%d", domain.ErrInvalidCatalog, c.Type, c.Name, k, MaxHouses)
			}
			if v < 0 {
				return fmt.Errorf("%w: %s/%s has a negative table value", domain.ErrInvalidCatalog, c.Type, c.Name)
			}
		}
	}
	return nil
}
