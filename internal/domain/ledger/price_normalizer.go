package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
)

// NormalizePrice devuelve el precio de una línea de compra en moneda de
// reporte. Regla pura de lectura, no una conversión en vivo: si la
// línea se registró en USD se usa el monto ya convertido con el tipo de
// cambio snapshot de aquel momento (amountLocal); en cualquier otro
// caso la moneda nativa ya es la de reporte y se usa amount tal cual.
// Nunca se re-deriva con un tipo de cambio actual, para que los
// reportes históricos sean estables.
func NormalizePrice(amount decimal.Decimal, currency string, amountLocal decimal.Decimal) decimal.Decimal {
	if currency == entity.CurrencyUSD {
		return amountLocal
	}
	return amount
}

// PriceRange es el rango de precios de compra normalizados de un producto.
type PriceRange struct {
	Lowest  decimal.Decimal
	Highest decimal.Decimal
}

// PurchasePriceRange calcula el menor y mayor precio normalizado entre
// las líneas de compra de un producto. El segundo valor es false si no
// hay líneas.
func PurchasePriceRange(lines []*entity.PurchaseEntryLine) (PriceRange, bool) {
	if len(lines) == 0 {
		return PriceRange{}, false
	}
	first := NormalizePrice(lines[0].UnitPrice, lines[0].Currency, lines[0].UnitPriceLocal)
	r := PriceRange{Lowest: first, Highest: first}
	for _, l := range lines[1:] {
		p := NormalizePrice(l.UnitPrice, l.Currency, l.UnitPriceLocal)
		if p.LessThan(r.Lowest) {
			r.Lowest = p
		}
		if p.GreaterThan(r.Highest) {
			r.Highest = p
		}
	}
	return r, true
}
