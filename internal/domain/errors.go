package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidEmail      = errors.New("email mal formado")
	ErrInvalidRole       = errors.New("rol desconocido")
	ErrNegativePrice     = errors.New("el precio no puede ser negativo")
	ErrNegativeQuantity  = errors.New("la cantidad no puede ser negativa")
	ErrInsufficientStock = errors.New("stock insuficiente para la salida")
	ErrMissingDates      = errors.New("rango de fechas incompleto")
	ErrNotAuthenticated  = errors.New("sesión no iniciada")
)
