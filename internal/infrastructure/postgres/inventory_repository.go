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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste el registro de presencia de un producto.
func (r *InventoryRepo) Create(inventory *entity.Inventory) error {
	if inventory.ID == "" {
		inventory.ID = uuid.New().String()
	}
	query := `INSERT INTO inventories (id, product_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, inventory.ID, inventory.ProductID, inventory.CreatedAt)
	if err != nil {
		return fmt.Errorf("create inventory: %w", err)
	}
	return nil
}

// GetByProductID obtiene el inventario de un producto. Devuelve nil, nil
// si el producto nunca recibió stock.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.Inventory, error) {
	query := `SELECT id, product_id, created_at FROM inventories WHERE product_id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&inv.ID, &inv.ProductID, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}
