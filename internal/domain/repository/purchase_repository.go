package repository

import "github.com/kardexapp/kardex-api/internal/domain/entity"

// PurchaseRepository define el puerto para lotes de compra y sus líneas.
type PurchaseRepository interface {
	CreateEntry(entry *entity.PurchaseEntry) error
	CreateLine(line *entity.PurchaseEntryLine) error
	ListLinesByProduct(productID string) ([]*entity.PurchaseEntryLine, error)
}
