package entity

import "time"

// Provider representa un proveedor de compras. Para filas de
// importación sin proveedor explícito se usa uno genérico resuelto por
// nombre con un upsert idempotente.
type Provider struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
