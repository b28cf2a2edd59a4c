package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// ProviderRepository define el puerto de proveedores.
type ProviderRepository interface {
	GetByID(id string) (*entity.Provider, error)
	// GetOrCreateByName es un upsert idempotente por nombre, respaldado
	// por un constraint único: dos importaciones concurrentes no deben
	// crear dos proveedores genéricos.
	GetOrCreateByName(name string) (*entity.Provider, error)
}
