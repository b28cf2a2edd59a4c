package entity

import "time"

// Store representa una tienda o sucursal donde se almacena stock.
type Store struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
