package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	// GetByName devuelve nil, nil si no existe.
	GetByName(name string) (*entity.Category, error)
}
