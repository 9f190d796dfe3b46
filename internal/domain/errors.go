package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnsupportedBook = errors.New("libro electrónico no soportado")
	ErrInvalidPeriod   = errors.New("periodo inválido, se espera AAAAMM")
	ErrInvalidRange    = errors.New("rango de fechas inválido")
)
