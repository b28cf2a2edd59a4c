package entity

import "time"

// Inventory es el registro de presencia de un producto en el inventario
// (uno por producto). Se crea de forma perezosa la primera vez que el
// producto recibe stock en cualquier tienda.
type Inventory struct {
	ID        string
	ProductID string
	CreatedAt time.Time
}

// StoreStock es la cantidad actual de un producto (vía su Inventory) en
// una tienda. Invariante: Quantity >= 0 en todo momento; una operación
// que lo violaría debe fallar antes de escribir.
type StoreStock struct {
	ID          string
	InventoryID string
	StoreID     string
	Quantity    int64
	UpdatedAt   time.Time
}
