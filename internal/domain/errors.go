package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrUsernameExists = errors.New("el username ya está registrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")

	// Errores del libro de inventario y del ciclo de rentas.
	ErrInsufficientStock      = errors.New("stock insuficiente")
	ErrNothingTakenToReturn   = errors.New("no hay unidades tomadas para devolver")
	ErrNotEnoughRented        = errors.New("no hay suficientes unidades rentadas")
	ErrNoActiveRental         = errors.New("no existe renta activa para este producto")
	ErrReturnQtyExceedsRental = errors.New("la cantidad a devolver excede la renta activa")
	ErrActiveRentalExists     = errors.New("el producto tiene rentas activas")
	ErrQuantityMismatch       = errors.New("quantity debe ser igual a available + rented")
)
