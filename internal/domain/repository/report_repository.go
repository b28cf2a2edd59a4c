package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductStockTotal es el stock agregado de un producto sumando todas
// sus tiendas.
type ProductStockTotal struct {
	ProductID   string
	ProductName string
	TotalStock  int64
}

// StoreProductRow es una fila del listado de productos por tienda.
type StoreProductRow struct {
	ProductID   string
	ProductName string
	CategoryID  string
	SellPrice   decimal.Decimal
	Quantity    int64
}

// ReportRepository define consultas de solo lectura sobre el stock
// agregado. No participa en transacciones.
type ReportRepository interface {
	TotalStockByProduct(ctx context.Context) ([]ProductStockTotal, error)
	// OutOfStockProducts lista productos cuyo stock sumado en todas las
	// tiendas es <= 0.
	OutOfStockProducts(ctx context.Context) ([]ProductStockTotal, error)
	// ProductsByStore filtra por tienda y opcionalmente por categoría
	// (categoryID vacío = todas) y por existencia (onlyInStock).
	ProductsByStore(ctx context.Context, storeID, categoryID string, onlyInStock bool) ([]StoreProductRow, error)
}
