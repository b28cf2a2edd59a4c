package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Toda la secuencia de mutaciones de un
// traslado o de un lote de importación corre dentro de una sola
// transacción: si algo falla, el rollback deja stock e historial
// consistentes.
type TxRunner interface {
	// Run transacción para el motor de traslados.
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		stockRepo repository.StoreStockRepository,
		histRepo repository.StockHistoryRepository,
		transferRepo repository.TransferRepository,
	) error) error

	// RunImport transacción para la reconciliación de importaciones
	// (necesita además catálogo, compras y seriales).
	RunImport(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		categoryRepo repository.CategoryRepository,
		invRepo repository.InventoryRepository,
		stockRepo repository.StoreStockRepository,
		histRepo repository.StockHistoryRepository,
		purchaseRepo repository.PurchaseRepository,
		serialRepo repository.SerialRepository,
	) error) error
}

// ActivityLogger registra actividad de usuarios (bitácora). Contrato
// best-effort: un fallo se loguea y se descarta, nunca afecta el
// resultado de la operación que lo emite.
type ActivityLogger interface {
	Log(actorID, entityType, entityID, action, summary string) error
}

// AccountingHook notifica al libro contable un ajuste monetario de
// inventario. Best-effort igual que ActivityLogger: un fallo jamás
// hace fallar una importación.
type AccountingHook interface {
	PostInventoryAdjustment(productID string, amount decimal.Decimal, counterAccount, description string) error
}
