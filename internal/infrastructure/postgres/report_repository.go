package postgres

import (
	"context"
	"fmt"

	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre el stock.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TotalStockByProduct suma el stock de cada producto en todas las tiendas.
func (r *ReportRepo) TotalStockByProduct(ctx context.Context) ([]repository.ProductStockTotal, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(ss.quantity), 0) AS total
		FROM products p
		LEFT JOIN inventories i ON i.product_id = p.id
		LEFT JOIN store_stocks ss ON ss.inventory_id = i.id
		GROUP BY p.id, p.name
		ORDER BY p.name`
	return r.queryTotals(ctx, query)
}

// OutOfStockProducts lista productos cuyo stock sumado es <= 0.
func (r *ReportRepo) OutOfStockProducts(ctx context.Context) ([]repository.ProductStockTotal, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(ss.quantity), 0) AS total
		FROM products p
		LEFT JOIN inventories i ON i.product_id = p.id
		LEFT JOIN store_stocks ss ON ss.inventory_id = i.id
		GROUP BY p.id, p.name
		HAVING COALESCE(SUM(ss.quantity), 0) <= 0
		ORDER BY p.name`
	return r.queryTotals(ctx, query)
}

func (r *ReportRepo) queryTotals(ctx context.Context, query string) ([]repository.ProductStockTotal, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query stock totals: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductStockTotal
	for rows.Next() {
		var t repository.ProductStockTotal
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.TotalStock); err != nil {
			return nil, fmt.Errorf("scan stock total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ProductsByStore lista productos con stock en una tienda, con filtro
// opcional por categoría y por existencia.
func (r *ReportRepo) ProductsByStore(ctx context.Context, storeID, categoryID string, onlyInStock bool) ([]repository.StoreProductRow, error) {
	query := `
		SELECT p.id, p.name, p.category_id, p.sell_price, ss.quantity
		FROM store_stocks ss
		JOIN inventories i ON i.id = ss.inventory_id
		JOIN products p ON p.id = i.product_id
		WHERE ss.store_id = $1`
	args := []any{storeID}
	pos := 2
	if categoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", pos)
		args = append(args, categoryID)
		pos++
	}
	if onlyInStock {
		query += " AND ss.quantity > 0"
	}
	query += " ORDER BY p.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("products by store: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreProductRow
	for rows.Next() {
		var row repository.StoreProductRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CategoryID, &row.SellPrice, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan store product row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
