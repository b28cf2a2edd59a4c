package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// TransferRepository define el puerto para los hechos de traslado
// (inmutables una vez creados).
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Transfer, error)
}
