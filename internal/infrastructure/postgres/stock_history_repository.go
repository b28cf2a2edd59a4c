package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.StockHistoryRepository = (*StockHistoryRepo)(nil)

// StockHistoryRepo implementación append-only del historial de stock
// sobre PostgreSQL (usable con pool o tx). No expone Update ni Delete.
type StockHistoryRepo struct {
	q Querier
}

// NewStockHistoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockHistoryRepository(q Querier) *StockHistoryRepo {
	return &StockHistoryRepo{q: q}
}

// Create agrega una entrada inmutable al historial.
func (r *StockHistoryRepo) Create(entry *entity.StockHistoryEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_history (id, inventory_id, store_id, action, stock_change, previous_stock, new_stock, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.InventoryID, entry.StoreID, entry.Action,
		entry.StockChange, entry.PreviousStock, entry.NewStock, entry.UserID, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock history entry: %w", err)
	}
	return nil
}

// ListByInventory lista el historial de un inventario, del más reciente
// al más antiguo.
func (r *StockHistoryRepo) ListByInventory(inventoryID string, limit, offset int) ([]*entity.StockHistoryEntry, error) {
	query := `
		SELECT id, inventory_id, store_id, action, stock_change, previous_stock, new_stock, user_id, created_at
		FROM stock_history WHERE inventory_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, inventoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockHistoryEntry
	for rows.Next() {
		var e entity.StockHistoryEntry
		if err := rows.Scan(&e.ID, &e.InventoryID, &e.StoreID, &e.Action,
			&e.StockChange, &e.PreviousStock, &e.NewStock, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock history entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
