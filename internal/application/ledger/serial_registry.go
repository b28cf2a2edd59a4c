package ledger

import (
	"time"

	"github.com/kardexapp/kardex-api/internal/domain/entity"
	"github.com/kardexapp/kardex-api/internal/domain/repository"
)

// SerialOutcome resultado de intentar reservar un serial.
type SerialOutcome int

const (
	// SerialCreated el serial se registró como activo.
	SerialCreated SerialOutcome = iota
	// SerialDuplicateInBatch el serial ya apareció en el lote en curso
	// (fila repetida en el mismo archivo; se corrige el archivo).
	SerialDuplicateInBatch
	// SerialDuplicateGlobal el serial ya está activo por un registro
	// histórico (posible doble registro; se investiga).
	SerialDuplicateGlobal
)

// ReserveSerial aplica la verificación en dos niveles: primero contra
// el conjunto en vuelo del lote, luego contra los seriales activos de
// todo el sistema. Solo si pasa ambas crea el Serial ligado a la línea
// de compra y lo agrega al conjunto del lote. Los dos tipos de
// duplicado se reportan por separado, no se mezclan en un solo error.
func ReserveSerial(
	serialRepo repository.SerialRepository,
	value, purchaseEntryLineID string,
	batchSeen map[string]struct{},
) (SerialOutcome, error) {
	if _, ok := batchSeen[value]; ok {
		return SerialDuplicateInBatch, nil
	}
	exists, err := serialRepo.ExistsActive(value)
	if err != nil {
		return 0, err
	}
	if exists {
		// La primera aparición también marca el conjunto del lote: una
		// repetición posterior del mismo valor es un duplicado del archivo.
		batchSeen[value] = struct{}{}
		return SerialDuplicateGlobal, nil
	}
	serial := &entity.Serial{
		Value:               value,
		PurchaseEntryLineID: purchaseEntryLineID,
		Status:              entity.SerialStatusActive,
		CreatedAt:           time.Now(),
	}
	if err := serialRepo.Create(serial); err != nil {
		return 0, err
	}
	batchSeen[value] = struct{}{}
	return SerialCreated, nil
}
