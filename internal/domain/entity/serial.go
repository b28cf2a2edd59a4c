package entity

import "time"

// Estados de un serial.
const (
	SerialStatusActive   = "active"
	SerialStatusConsumed = "consumed"
	SerialStatusVoid     = "void"
)

// Serial es un número de serie único ligado a una línea de compra.
// Invariante: un valor de serial está activo en a lo sumo un lugar del
// sistema; la verificación se hace al escribir, no solo por constraint,
// porque hay que distinguir "duplicado dentro del lote" de "duplicado
// contra registros históricos".
type Serial struct {
	ID                  string
	Value               string
	PurchaseEntryLineID string
	Status              string
	CreatedAt           time.Time
}
