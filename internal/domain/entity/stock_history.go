package entity

import "time"

// Acciones registradas en el historial de stock.
const (
	ActionTransferOut = "transfer-out" // salida por traslado
	ActionTransferIn  = "transfer-in"  // entrada por traslado
	ActionImport      = "import"       // entrada por importación masiva
	ActionSale        = "sale"         // salida por venta
	ActionAdjust      = "adjust"       // ajuste manual
)

// StockHistoryEntry es un registro inmutable de un cambio de stock
// (append-only; nunca se actualiza ni se borra).
// Invariante: NewStock == PreviousStock + StockChange.
type StockHistoryEntry struct {
	ID            string
	InventoryID   string
	StoreID       string
	Action        string
	StockChange   int64 // delta con signo: positivo entrada, negativo salida
	PreviousStock int64
	NewStock      int64
	UserID        string
	CreatedAt     time.Time
}
