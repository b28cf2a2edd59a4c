package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas soportadas. La moneda de reporte por defecto es PEN; los
// precios en USD se normalizan con el tipo de cambio snapshot guardado
// en la línea, nunca con el tipo de cambio vigente.
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// PurchaseEntry es un lote de compra/importación. Inmutable una vez creado.
type PurchaseEntry struct {
	ID         string
	ProviderID string
	StoreID    string
	UserID     string
	Currency   string
	CreatedAt  time.Time
}

// PurchaseEntryLine es el detalle por producto de un lote de compra.
// UnitPriceLocal guarda el precio ya convertido a moneda de reporte con
// el tipo de cambio vigente al momento del registro (snapshot).
type PurchaseEntryLine struct {
	ID             string
	EntryID        string
	ProductID      string
	Quantity       int64
	UnitPrice      decimal.Decimal
	Currency       string
	UnitPriceLocal decimal.Decimal
	ExchangeRateID *string // nil si no había tipo de cambio registrado
	CreatedAt      time.Time
}
