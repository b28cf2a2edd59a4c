package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// ValidationError describe la fila y el campo que invalidan un lote de
// importación. El lote completo se rechaza antes de cualquier escritura.
type ValidationError struct {
	Row    int    // índice de la fila (base 1, como la ve el operador)
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("fila %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("fila %d: campo %q: %s", e.Row, e.Field, e.Reason)
}

// Is permite detectar un ValidationError con errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
