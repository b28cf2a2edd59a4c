package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// StoreStockRepository define el puerto para consultar/actualizar el
// stock por (inventario, tienda). Usado dentro de transacciones para
// garantizar consistencia.
type StoreStockRepository interface {
	// Get devuelve nil, nil si aún no existe fila para ese par.
	Get(inventoryID, storeID string) (*entity.StoreStock, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// traslados concurrentes sobre el mismo par. Devuelve nil, nil si
	// la fila no existe.
	GetForUpdate(inventoryID, storeID string) (*entity.StoreStock, error)
	Upsert(stock *entity.StoreStock) error
}
