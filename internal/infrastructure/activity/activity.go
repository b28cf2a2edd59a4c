// Package activity provee adaptadores best-effort para los puertos de
// bitácora y contabilidad del ledger. La plataforma inyecta aquí sus
// implementaciones reales; estos adaptadores escriben al log
// estructurado y nunca propagan fallos hacia el ledger.
package activity

import (
	"github.com/shopspring/decimal"

	"github.com/kardexapp/kardex-api/internal/application/ledger"
	"github.com/kardexapp/kardex-api/pkg/logger"
)

var _ ledger.ActivityLogger = (*ZerologActivityLogger)(nil)

// ZerologActivityLogger bitácora de actividad sobre zerolog.
type ZerologActivityLogger struct {
	log *logger.Logger
}

// NewZerologActivityLogger construye el adaptador.
func NewZerologActivityLogger(log *logger.Logger) *ZerologActivityLogger {
	return &ZerologActivityLogger{log: log}
}

// Log registra la actividad como evento estructurado.
func (l *ZerologActivityLogger) Log(actorID, entityType, entityID, action, summary string) error {
	l.log.Info().
		Str("actor_id", actorID).
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Str("action", action).
		Msg(summary)
	return nil
}

var _ ledger.AccountingHook = (*LoggedAccountingHook)(nil)

// LoggedAccountingHook registra el ajuste contable en el log. Sustituir
// por el cliente del servicio contable cuando la integración exista.
type LoggedAccountingHook struct {
	log *logger.Logger
}

// NewLoggedAccountingHook construye el adaptador.
func NewLoggedAccountingHook(log *logger.Logger) *LoggedAccountingHook {
	return &LoggedAccountingHook{log: log}
}

// PostInventoryAdjustment registra el ajuste monetario de inventario.
func (h *LoggedAccountingHook) PostInventoryAdjustment(productID string, amount decimal.Decimal, counterAccount, description string) error {
	h.log.Info().
		Str("product_id", productID).
		Str("amount", amount.String()).
		Str("counter_account", counterAccount).
		Msg(description)
	return nil
}
