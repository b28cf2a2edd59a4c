package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.StoreStockRepository = (*StoreStockRepo)(nil)

// StoreStockRepo implementación de StoreStockRepository sobre
// PostgreSQL (usable con pool o tx).
type StoreStockRepo struct {
	q Querier
}

// NewStoreStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreStockRepository(q Querier) *StoreStockRepo {
	return &StoreStockRepo{q: q}
}

// Get obtiene el stock de un (inventario, tienda). Devuelve nil, nil si
// la fila aún no existe.
func (r *StoreStockRepo) Get(inventoryID, storeID string) (*entity.StoreStock, error) {
	query := `
		SELECT id, inventory_id, store_id, quantity, updated_at
		FROM store_stocks WHERE inventory_id = $1 AND store_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, inventoryID, storeID))
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE)
// para serializar mutaciones concurrentes sobre el mismo par. Los pares
// disjuntos no se bloquean entre sí. Devuelve nil, nil si no existe.
func (r *StoreStockRepo) GetForUpdate(inventoryID, storeID string) (*entity.StoreStock, error) {
	query := `
		SELECT id, inventory_id, store_id, quantity, updated_at
		FROM store_stocks WHERE inventory_id = $1 AND store_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, inventoryID, storeID))
}

// Upsert inserta o actualiza la cantidad por (inventario, tienda).
// El CHECK (quantity >= 0) de la tabla respalda el invariante que los
// casos de uso verifican antes de escribir.
func (r *StoreStockRepo) Upsert(stock *entity.StoreStock) error {
	if stock.ID == "" {
		stock.ID = uuid.New().String()
	}
	query := `
		INSERT INTO store_stocks (id, inventory_id, store_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (inventory_id, store_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ID, stock.InventoryID, stock.StoreID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert store stock: %w", err)
	}
	return nil
}

func (r *StoreStockRepo) scanOne(row pgx.Row) (*entity.StoreStock, error) {
	var s entity.StoreStock
	err := row.Scan(&s.ID, &s.InventoryID, &s.StoreID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store stock: %w", err)
	}
	return &s, nil
}
