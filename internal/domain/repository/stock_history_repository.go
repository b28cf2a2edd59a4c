package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// StockHistoryRepository define el puerto del historial de stock.
// Append-only: no hay Update ni Delete.
type StockHistoryRepository interface {
	Create(entry *entity.StockHistoryEntry) error
	ListByInventory(inventoryID string, limit, offset int) ([]*entity.StockHistoryEntry, error)
}
