package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El ledger lo referencia
// pero nunca lo muta: los precios de un producto existente no se
// sobreescriben durante una importación.
type Product struct {
	ID            string
	Name          string
	Description   string
	CategoryID    string
	PurchasePrice decimal.Decimal // precio de compra referencial
	SellPrice     decimal.Decimal // precio de venta referencial
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
