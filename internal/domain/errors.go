package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("item no encontrado")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser positiva")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrPersistence       = errors.New("almacenamiento no disponible")

	// ErrMalformedRecord marca una línea persistida ilegible. Nunca sale de
	// la carga: la línea se descarta con un warning y la carga continúa.
	ErrMalformedRecord = errors.New("registro mal formado")
)
