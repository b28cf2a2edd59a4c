package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/ledger"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// TestNormalizePrice la regla es de lectura pura: USD usa el monto
// convertido snapshot, cualquier otra moneda usa el monto nativo.
func TestNormalizePrice(t *testing.T) {
	got := ledger.NormalizePrice(d("100"), entity.CurrencyUSD, d("375"))
	assert.True(t, got.Equal(d("375")), "USD debe usar el monto convertido")

	got = ledger.NormalizePrice(d("250"), entity.CurrencyPEN, d("0"))
	assert.True(t, got.Equal(d("250")), "PEN usa el monto nativo tal cual")

	// Moneda desconocida se trata como nativa: no hay conversión en vivo.
	got = ledger.NormalizePrice(d("80"), "EUR", d("999"))
	assert.True(t, got.Equal(d("80")))
}

func line(price, currency, local string) *entity.PurchaseEntryLine {
	return &entity.PurchaseEntryLine{
		UnitPrice:      d(price),
		Currency:       currency,
		UnitPriceLocal: d(local),
	}
}

// TestPurchasePriceRange rango sobre precios normalizados de líneas mixtas.
func TestPurchasePriceRange(t *testing.T) {
	lines := []*entity.PurchaseEntryLine{
		line("400", entity.CurrencyPEN, "400"),
		line("100", entity.CurrencyUSD, "375"),
		line("420", entity.CurrencyPEN, "420"),
	}
	r, ok := ledger.PurchasePriceRange(lines)
	require.True(t, ok)
	assert.True(t, r.Lowest.Equal(d("375")), "la línea USD compite con su precio normalizado")
	assert.True(t, r.Highest.Equal(d("420")))
}

// TestPurchasePriceRange_UnaLinea con una sola línea el rango colapsa.
func TestPurchasePriceRange_UnaLinea(t *testing.T) {
	r, ok := ledger.PurchasePriceRange([]*entity.PurchaseEntryLine{
		line("10.50", entity.CurrencyPEN, "10.50"),
	})
	require.True(t, ok)
	assert.True(t, r.Lowest.Equal(d("10.50")))
	assert.True(t, r.Highest.Equal(d("10.50")))
}

// TestPurchasePriceRange_SinLineas sin líneas no hay rango.
func TestPurchasePriceRange_SinLineas(t *testing.T) {
	_, ok := ledger.PurchasePriceRange(nil)
	assert.False(t, ok)
	_, ok = ledger.PurchasePriceRange([]*entity.PurchaseEntryLine{})
	assert.False(t, ok)
}
