package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceStringWorkedExample(t *testing.T) {
	p := ParsePriceString("Was A$1,299.50")
	require.NotNil(t, p.Amount)
	require.NotNil(t, p.Currency)
	assert.Equal(t, int64(1299), *p.Amount)
	assert.Equal(t, "AUD", *p.Currency)
}

func TestParsePriceStringDefaultsToUSD(t *testing.T) {
	p := ParsePriceString("45.00")
	require.NotNil(t, p.Amount)
	assert.Equal(t, int64(45), *p.Amount)
	assert.Equal(t, "USD", *p.Currency)
}

func TestParsePriceStringEuro(t *testing.T) {
	p := ParsePriceString("€1,050")
	require.NotNil(t, p.Amount)
	assert.Equal(t, int64(1050), *p.Amount)
	assert.Equal(t, "EUR", *p.Currency)
}

func TestParsePriceStringRoundTrips(t *testing.T) {
	cases := []string{"$45.00", "€1,050", "£99", "A$1,299.50"}
	for _, s := range cases {
		first := ParsePriceString(s)
		again := ParsePriceString(Render(first))
		assert.Equal(t, first, again, "round-trip mismatch for %q", s)
	}
}

func TestParsePriceDispatchesOnRecord(t *testing.T) {
	p := ParsePrice(map[string]interface{}{"amount": float64(20), "currency": "GBP"})
	require.NotNil(t, p.Amount)
	assert.Equal(t, int64(20), *p.Amount)
	assert.Equal(t, "GBP", *p.Currency)
}

func TestParsePriceDispatchesOnNumber(t *testing.T) {
	p := ParsePrice(float64(19.99))
	require.NotNil(t, p.Amount)
	assert.Equal(t, int64(19), *p.Amount)
	assert.Equal(t, "USD", *p.Currency)
}
