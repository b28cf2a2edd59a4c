package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/domain"
	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.SerialRepository = (*SerialRepo)(nil)

// SerialRepo implementación de SerialRepository sobre PostgreSQL
// (usable con pool o tx). La tabla lleva un índice único parcial sobre
// (value) WHERE status = 'active'.
type SerialRepo struct {
	q Querier
}

// NewSerialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSerialRepository(q Querier) *SerialRepo {
	return &SerialRepo{q: q}
}

// ExistsActive verifica si un valor de serial ya está activo en
// cualquier parte del sistema.
func (r *SerialRepo) ExistsActive(value string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM serials WHERE value = $1 AND status = $2)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, value, entity.SerialStatusActive).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists active serial: %w", err)
	}
	return exists, nil
}

// Create persiste un serial. Una carrera con otra transacción que
// registró el mismo valor activo se reporta como ErrDuplicate.
func (r *SerialRepo) Create(serial *entity.Serial) error {
	if serial.ID == "" {
		serial.ID = uuid.New().String()
	}
	query := `
		INSERT INTO serials (id, value, purchase_entry_line_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		serial.ID, serial.Value, serial.PurchaseEntryLineID, serial.Status, serial.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create serial: %w", err)
	}
	return nil
}

// ListActiveByProductAndStore lista los seriales activos de un producto
// en una tienda, vía sus líneas y lotes de compra.
func (r *SerialRepo) ListActiveByProductAndStore(storeID, productID string) ([]*entity.Serial, error) {
	query := `
		SELECT s.id, s.value, s.purchase_entry_line_id, s.status, s.created_at
		FROM serials s
		JOIN purchase_entry_lines l ON l.id = s.purchase_entry_line_id
		JOIN purchase_entries e ON e.id = l.entry_id
		WHERE e.store_id = $1 AND l.product_id = $2 AND s.status = $3
		ORDER BY s.created_at`
	rows, err := r.q.Query(context.Background(), query, storeID, productID, entity.SerialStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Serial
	for rows.Next() {
		var s entity.Serial
		if err := rows.Scan(&s.ID, &s.Value, &s.PurchaseEntryLineID, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
