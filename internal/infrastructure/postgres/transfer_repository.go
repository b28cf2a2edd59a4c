package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL
// (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste el hecho de un traslado completado.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (id, product_id, source_store_id, destination_store_id, quantity, description, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.ProductID, transfer.SourceStoreID, transfer.DestinationStoreID,
		transfer.Quantity, transfer.Description, transfer.UserID, transfer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// ListByStore lista traslados donde la tienda participó como origen o destino.
func (r *TransferRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, product_id, source_store_id, destination_store_id, quantity, description, user_id, created_at
		FROM transfers WHERE source_store_id = $1 OR destination_store_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.SourceStoreID, &t.DestinationStoreID,
			&t.Quantity, &t.Description, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
