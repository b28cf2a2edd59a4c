package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// CreateEntry persiste un lote de compra.
func (r *PurchaseRepo) CreateEntry(entry *entity.PurchaseEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_entries (id, provider_id, store_id, user_id, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ProviderID, entry.StoreID, entry.UserID, entry.Currency, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase entry: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de compra.
func (r *PurchaseRepo) CreateLine(line *entity.PurchaseEntryLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO purchase_entry_lines (id, entry_id, product_id, quantity, unit_price, currency, unit_price_local, exchange_rate_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.EntryID, line.ProductID, line.Quantity,
		line.UnitPrice, line.Currency, line.UnitPriceLocal, line.ExchangeRateID, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase entry line: %w", err)
	}
	return nil
}

// ListLinesByProduct lista todas las líneas de compra de un producto.
func (r *PurchaseRepo) ListLinesByProduct(productID string) ([]*entity.PurchaseEntryLine, error) {
	query := `
		SELECT id, entry_id, product_id, quantity, unit_price, currency, unit_price_local, exchange_rate_id, created_at
		FROM purchase_entry_lines WHERE product_id = $1
		ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list purchase lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseEntryLine
	for rows.Next() {
		var l entity.PurchaseEntryLine
		if err := rows.Scan(&l.ID, &l.EntryID, &l.ProductID, &l.Quantity,
			&l.UnitPrice, &l.Currency, &l.UnitPriceLocal, &l.ExchangeRateID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
