package entity

import "time"

// Category representa una categoría de productos. Se resuelve por nombre
// exacto durante la importación masiva y se crea si no existe.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
