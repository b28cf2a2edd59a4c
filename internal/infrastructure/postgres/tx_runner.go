package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kardexapp/kardex-api/internal/application/ledger"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Toda la secuencia de mutaciones de un traslado o de un lote de
// importación corre en una sola transacción: un error en cualquier
// paso hace rollback y el stock y el historial quedan consistentes.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción para el motor de traslados, ejecuta fn con
// repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	stockRepo repository.StoreStockRepository,
	histRepo repository.StockHistoryRepository,
	transferRepo repository.TransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventoryRepository(tx)
	stockRepo := NewStoreStockRepository(tx)
	histRepo := NewStockHistoryRepository(tx)
	transferRepo := NewTransferRepository(tx)

	if err := fn(invRepo, stockRepo, histRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunImport inicia una transacción con el conjunto amplio de repos que
// necesita la reconciliación de importaciones.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	invRepo repository.InventoryRepository,
	stockRepo repository.StoreStockRepository,
	histRepo repository.StockHistoryRepository,
	purchaseRepo repository.PurchaseRepository,
	serialRepo repository.SerialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	categoryRepo := NewCategoryRepository(tx)
	invRepo := NewInventoryRepository(tx)
	stockRepo := NewStoreStockRepository(tx)
	histRepo := NewStockHistoryRepository(tx)
	purchaseRepo := NewPurchaseRepository(tx)
	serialRepo := NewSerialRepository(tx)

	if err := fn(productRepo, categoryRepo, invRepo, stockRepo, histRepo, purchaseRepo, serialRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
