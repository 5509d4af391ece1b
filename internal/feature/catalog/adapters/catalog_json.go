// Package adapters loads the board catalog from JSON documents.
package adapters

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"monopoly_backend/internal/feature/catalog/domain"
	"monopoly_backend/internal/feature/catalog/domain/entity"
)

//go:embed data/properties.json data/commercial.json
var bundled embed.FS

const (
	bundledProperties = "data/properties.json"
	bundledCommercial = "data/commercial.json"
)

// propertyJSON is the on-disk shape of one street property.
type propertyJSON struct {
	LandPrice  *int      `json:"land_price"`
	HousePrice *int      `json:"house_price"`
	Rent       *rentJSON `json:"rent"`
}

type rentJSON struct {
	NoHouses    *int `json:"no_houses"`
	OneHouse    *int `json:"one_house"`
	TwoHouses   *int `json:"two_houses"`
	ThreeHouses *int `json:"three_houses"`
	FourHouses  *int `json:"four_houses"`
}

// commercialJSON is the on-disk shape of one utility/transport unit.
// Table keys are "1".."4", optionally followed by a label ("2 owned").
type commercialJSON struct {
	Price      *int           `json:"price"`
	Multiplier map[string]int `json:"multiplier"`
	Ticket     map[string]int `json:"ticket"`
}

// LoadCatalog reads the property and commercial catalogs.
// An empty path selects the catalog bundled into the binary.
func LoadCatalog(propertiesPath, commercialPath string) (*entity.Catalog, error) {
	props, err := readSource(propertiesPath, bundledProperties)
	if err != nil {
		return nil, err
	}
	comm, err := readSource(commercialPath, bundledCommercial)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(props, comm)
}

func readSource(path, fallback string) ([]byte, error) {
	if path == "" {
		b, err := bundled.ReadFile(fallback)
		if err != nil {
			return nil, fmt.Errorf("failed to read bundled catalog %s: %w", fallback, err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return b, nil
}

// ParseCatalog decodes and validates both catalog documents.
func ParseCatalog(propertiesDoc, commercialDoc []byte) (*entity.Catalog, error) {
	var rawProps map[string]map[string]propertyJSON
	if err := decodeStrict(propertiesDoc, &rawProps); err != nil {
		return nil, fmt.Errorf("%w: properties: %v", domain.ErrInvalidCatalog, err)
	}
	if len(rawProps) == 0 {
		return nil, fmt.Errorf("%w: properties: no areas defined", domain.ErrInvalidCatalog)
	}
	var rawComm map[string]map[string]commercialJSON
	if err := decodeStrict(commercialDoc, &rawComm); err != nil {
		return nil, fmt.Errorf("%w: commercial: %v", domain.ErrInvalidCatalog, err)
	}

	props := make([]entity.PropertyAsset, 0)
	for area, assets := range rawProps {
		for name, raw := range assets {
			p, err := raw.toEntity(area, name)
			if err != nil {
				return nil, err
			}
			props = append(props, p)
		}
	}

	comm := make([]entity.CommercialAsset, 0)
	for typ, assets := range rawComm {
		for name, raw := range assets {
			c, err := raw.toEntity(typ, name)
			if err != nil {
				return nil, err
			}
			comm = append(comm, c)
		}
	}

	return entity.NewCatalog(props, comm)
}

func decodeStrict(doc []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func (r propertyJSON) toEntity(area, name string) (entity.PropertyAsset, error) {
	if r.LandPrice == nil || r.HousePrice == nil || r.Rent == nil {
		return entity.PropertyAsset{}, fmt.Errorf("%w: %s/%s is missing land_price, house_price or rent", domain.ErrInvalidCatalog, area, name)
	}
	rent := []*int{r.Rent.NoHouses, r.Rent.OneHouse, r.Rent.TwoHouses, r.Rent.ThreeHouses, r.Rent.FourHouses}
	var table entity.RentTable
	for i, v := range rent {
		if v == nil {
			return entity.PropertyAsset{}, fmt.Errorf("%w: %s/%s is missing rent for %d houses", domain.ErrInvalidCatalog, area, name, i)
		}
		table[i] = *v
	}
	return entity.PropertyAsset{
		Area:       strings.TrimSpace(area),
		Name:       strings.TrimSpace(name),
		LandPrice:  *r.LandPrice,
		HousePrice: *r.HousePrice,
		Rent:       table,
	}, nil
}

func (r commercialJSON) toEntity(typ, name string) (entity.CommercialAsset, error) {
	multiplier, err := parseCountTable(r.Multiplier)
	if err != nil {
		return entity.CommercialAsset{}, fmt.Errorf("%w: %s/%s multiplier: %v", domain.ErrInvalidCatalog, typ, name, err)
	}
	ticket, err := parseCountTable(r.Ticket)
	if err != nil {
		return entity.CommercialAsset{}, fmt.Errorf("%w: %s/%s ticket: %v", domain.ErrInvalidCatalog, typ, name, err)
	}
	return entity.CommercialAsset{
		Type:       strings.TrimSpace(typ),
		Name:       strings.TrimSpace(name),
		Price:      r.Price,
		Multiplier: multiplier,
		Ticket:     ticket,
	}, nil
}

// parseCountTable turns {"1 owned": 25, "2": 50} into {1: 25, 2: 50}.
func parseCountTable(raw map[string]int) (entity.CountTable, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(entity.CountTable, len(raw))
	for key, v := range raw {
		fields := strings.Fields(key)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty key")
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("key %q does not start with a count", key)
		}
		if _, dup := out[n]; dup {
			return nil, fmt.Errorf("count %d appears twice", n)
		}
		out[n] = v
	}
	return out, nil
}
