package entity

import "time"

// Transfer es el hecho inmutable de un traslado completado de stock
// entre dos tiendas.
type Transfer struct {
	ID                 string
	ProductID          string
	SourceStoreID      string
	DestinationStoreID string
	Quantity           int64
	Description        string
	UserID             string
	CreatedAt          time.Time
}
