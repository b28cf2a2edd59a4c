package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// SerialRepository define el puerto del registro de seriales.
// La unicidad aplica solo a seriales en estado active.
type SerialRepository interface {
	// ExistsActive verifica si el valor ya está activo en cualquier
	// parte del sistema (detecta re-importaciones históricas).
	ExistsActive(value string) (bool, error)
	Create(serial *entity.Serial) error
	ListActiveByProductAndStore(storeID, productID string) ([]*entity.Serial, error)
}
