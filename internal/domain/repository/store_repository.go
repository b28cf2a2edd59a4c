package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// StoreRepository define el puerto de tiendas (solo lectura para el ledger).
type StoreRepository interface {
	GetByID(id string) (*entity.Store, error)
}
