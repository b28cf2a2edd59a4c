package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// InventoryRepository define el puerto para el registro de presencia de
// un producto en el inventario (uno por producto, creación perezosa).
type InventoryRepository interface {
	Create(inventory *entity.Inventory) error
	// GetByProductID devuelve nil, nil si el producto nunca recibió stock.
	GetByProductID(productID string) (*entity.Inventory, error)
}
