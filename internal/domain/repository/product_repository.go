package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product.
// La importación resuelve productos por nombre exacto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByName devuelve nil, nil si no existe un producto con ese nombre.
	GetByName(name string) (*entity.Product, error)
}
