package entity

import (
	"fmt"
	"sort"

	"monopoly_backend/internal/feature/catalog/domain"
)

// Catalog is the immutable reference data for a board: street properties
// grouped by area and commercial assets grouped by type.
// It is built once by NewCatalog and only read afterwards, so it is safe for
// concurrent use without locking.
type Catalog struct {
	properties map[string]map[string]PropertyAsset
	commercial map[string]map[string]CommercialAsset
}

// NewCatalog validates the given records and indexes them.
// Duplicate (area, asset) or (type, name) keys are rejected.
func NewCatalog(properties []PropertyAsset, commercial []CommercialAsset) (*Catalog, error) {
	c := &Catalog{
		properties: make(map[string]map[string]PropertyAsset),
		commercial: make(map[string]map[string]CommercialAsset),
	}
	for _, p := range properties {
		if err := p.validate(); err != nil {
			return nil, err
		}
		area, ok := c.properties[p.Area]
		if !ok {
			area = make(map[string]PropertyAsset)
			c.properties[p.Area] = area
		}
		if _, dup := area[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate asset %q in area %q", domain.ErrInvalidCatalog, p.Name, p.Area)
		}
		area[p.Name] = p
	}
	for _, a := range commercial {
		if err := a.validate(); err != nil {
			return nil, err
		}
		typ, ok := c.commercial[a.Type]
		if !ok {
			typ = make(map[string]CommercialAsset)
			c.commercial[a.Type] = typ
		}
		if _, dup := typ[a.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate asset %q in type %q", domain.ErrInvalidCatalog, a.Name, a.Type)
		}
		typ[a.Name] = a
	}
	return c, nil
}

// LookupProperty returns the street property (area, asset).
func (c *Catalog) LookupProperty(area, asset string) (PropertyAsset, error) {
	assets, ok := c.properties[area]
	if !ok {
		return PropertyAsset{}, fmt.Errorf("%w: %q", domain.ErrAreaNotFound, area)
	}
	p, ok := assets[asset]
	if !ok {
		return PropertyAsset{}, fmt.Errorf("%w: %q in area %q", domain.ErrAssetNotFound, asset, area)
	}
	return p, nil
}

// LookupCommercialAsset returns the commercial asset (type, name).
func (c *Catalog) LookupCommercialAsset(assetType, name string) (CommercialAsset, error) {
	assets, ok := c.commercial[assetType]
	if !ok {
		return CommercialAsset{}, fmt.Errorf("%w: %q", domain.ErrCommercialTypeNotFound, assetType)
	}
	a, ok := assets[name]
	if !ok {
		return CommercialAsset{}, fmt.Errorf("%w: %q in type %q", domain.ErrCommercialAssetNotFound, name, assetType)
	}
	return a, nil
}

// Areas returns all area names, sorted.
func (c *Catalog) Areas() []string {
	return sortedKeys(c.properties)
}

// Assets returns the asset names of an area, sorted.
func (c *Catalog) Assets(area string) ([]string, error) {
	assets, ok := c.properties[area]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrAreaNotFound, area)
	}
	return sortedKeys(assets), nil
}

// CommercialTypes returns all commercial asset type names, sorted.
func (c *Catalog) CommercialTypes() []string {
	return sortedKeys(c.commercial)
}

// CommercialAssets returns the asset names of a commercial type, sorted.
func (c *Catalog) CommercialAssets(assetType string) ([]string, error) {
	assets, ok := c.commercial[assetType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrCommercialTypeNotFound, assetType)
	}
	return sortedKeys(assets), nil
}

// Properties returns a copy of the property index.
func (c *Catalog) Properties() map[string]map[string]PropertyAsset {
	out := make(map[string]map[string]PropertyAsset, len(c.properties))
	for area, assets := range c.properties {
		inner := make(map[string]PropertyAsset, len(assets))
		for name, p := range assets {
			inner[name] = p
		}
		out[area] = inner
	}
	return out
}

// Commercial returns a copy of the commercial index.
func (c *Catalog) Commercial() map[string]map[string]CommercialAsset {
	out := make(map[string]map[string]CommercialAsset, len(c.commercial))
	for typ, assets := range c.commercial {
		inner := make(map[string]CommercialAsset, len(assets))
		for name, a := range assets {
			inner[name] = a
		}
		out[typ] = inner
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
