package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate es un snapshot del tipo de cambio USD -> moneda de
// reporte. Las líneas de compra referencian el snapshot vigente al
// momento del registro para que los reportes históricos sean estables.
type ExchangeRate struct {
	ID        string
	Rate      decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}
