package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// ExchangeRateRepository define el puerto de snapshots de tipo de cambio.
type ExchangeRateRepository interface {
	// GetDefault devuelve el snapshot más reciente, o nil, nil si nunca
	// se registró un tipo de cambio.
	GetDefault() (*entity.ExchangeRate, error)
}
