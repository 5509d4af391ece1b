package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monopoly_backend/internal/feature/catalog/domain"
)

const testProperties = `{
  "Green Area": {
    "Oak Street": {
      "land_price": 100,
      "house_price": 50,
      "rent": {"no_houses": 10, "one_house": 30, "two_houses": 90, "three_houses": 160, "four_houses": 250}
    }
  }
}`

const testCommercial = `{
  "Transport": {
    "North Station": {"price": 200, "ticket": {"1 owned": 25, "2 owned": 50, "3 owned": 100, "4 owned": 200}}
  },
  "Utilities": {
    "Water Works": {"price": 150, "multiplier": {"1": 4, "2": 10}}
  },
  "Bonus": {
    "Free Parking": {}
  }
}`

func TestParseCatalog_Success(t *testing.T) {
	t.Parallel()

	cat, err := ParseCatalog([]byte(testProperties), []byte(testCommercial))
	require.NoError(t, err)

	p, err := cat.LookupProperty("Green Area", "Oak Street")
	require.NoError(t, err)
	assert.Equal(t, 100, p.LandPrice)
	assert.Equal(t, 50, p.HousePrice)
	rent, err := p.RentFor(2)
	require.NoError(t, err)
	assert.Equal(t, 90, rent)

	station, err := cat.LookupCommercialAsset("Transport", "North Station")
	require.NoError(t, err)
	assert.Equal(t, 200, station.PurchasePrice())
	ticket, used, err := station.TicketFor(3)
	require.NoError(t, err)
	assert.Equal(t, 100, ticket)
	assert.Equal(t, 3, used)

	water, err := cat.LookupCommercialAsset("Utilities", "Water Works")
	require.NoError(t, err)
	mult, _, err := water.MultiplierFor(2)
	require.NoError(t, err)
	assert.Equal(t, 10, mult)

	dummy, err := cat.LookupCommercialAsset("Bonus", "Free Parking")
	require.NoError(t, err)
	assert.Nil(t, dummy.Price)
	assert.Equal(t, 0, dummy.PurchasePrice())
}

func TestParseCatalog_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		properties string
		commercial string
	}{
		{
			name:       "malformed properties json",
			properties: `{"Green Area": [`,
			commercial: `{}`,
		},
		{
			name:       "no areas",
			properties: `{}`,
			commercial: `{}`,
		},
		{
			name:       "missing rent entry",
			properties: `{"A": {"B": {"land_price": 1, "house_price": 1, "rent": {"no_houses": 1}}}}`,
			commercial: `{}`,
		},
		{
			name:       "missing land price",
			properties: `{"A": {"B": {"house_price": 1, "rent": {"no_houses": 1, "one_house": 1, "two_houses": 1, "three_houses": 1, "four_houses": 1}}}}`,
			commercial: `{}`,
		},
		{
			name:       "negative house price",
			properties: `{"A": {"B": {"land_price": 1, "house_price": -5, "rent": {"no_houses": 1, "one_house": 1, "two_houses": 1, "three_houses": 1, "four_houses": 1}}}}`,
			commercial: `{}`,
		},
		{
			name:       "unknown field",
			properties: `{"A": {"B": {"land_price": 1, "house_price": 1, "colour": "green", "rent": {"no_houses": 1, "one_house": 1, "two_houses": 1, "three_houses": 1, "four_houses": 1}}}}`,
			commercial: `{}`,
		},
		{
			name:       "both multiplier and ticket",
			properties: testProperties,
			commercial: `{"T": {"X": {"price": 1, "multiplier": {"1": 4}, "ticket": {"1": 25}}}}`,
		},
		{
			name:       "ticket key without count",
			properties: testProperties,
			commercial: `{"T": {"X": {"price": 1, "ticket": {"one owned": 25}}}}`,
		},
		{
			name:       "ticket count out of range",
			properties: testProperties,
			commercial: `{"T": {"X": {"price": 1, "ticket": {"5": 25}}}}`,
		},
		{
			name:       "duplicate ticket count",
			properties: testProperties,
			commercial: `{"T": {"X": {"price": 1, "ticket": {"1": 25, "1 owned": 30}}}}`,
		},
		{
			name:       "negative price",
			properties: testProperties,
			commercial: `{"T": {"X": {"price": -1}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cat, err := ParseCatalog([]byte(tt.properties), []byte(tt.commercial))
			assert.Nil(t, cat)
			assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		})
	}
}

func TestLoadCatalog_Bundled(t *testing.T) {
	t.Parallel()

	cat, err := LoadCatalog("", "")
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Areas())
	assert.Contains(t, cat.CommercialTypes(), "Transport")
	assert.Contains(t, cat.CommercialTypes(), "Utilities")
}

func TestLoadCatalog_FromFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	propsPath := filepath.Join(dir, "properties.json")
	commPath := filepath.Join(dir, "commercial.json")
	require.NoError(t, os.WriteFile(propsPath, []byte(testProperties), 0o600))
	require.NoError(t, os.WriteFile(commPath, []byte(testCommercial), 0o600))

	cat, err := LoadCatalog(propsPath, commPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Green Area"}, cat.Areas())
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}
