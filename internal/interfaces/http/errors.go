package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/domain"
)

// validate instancia única del validador de structs (tags `validate:` en los DTOs).
var validate = validator.New(validator.WithRequiredStructEnabled())

// parseAndValidate hace BodyParser + validación de struct; responde 400 y
// devuelve false si algo falla.
func parseAndValidate(c *fiber.Ctx, in any) bool {
	if err := c.BodyParser(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}

// respondDomainError mapea errores sentinela de dominio a respuestas HTTP con
// código estable machine-checkable. Nunca expone stack traces ni detalles internos.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case domain.ErrQuantityMismatch:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "QUANTITY_MISMATCH", Message: "quantity debe ser igual a available + rented"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "ya existe un producto con ese nombre"})
	case domain.ErrUsernameExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "el username ya está registrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case domain.ErrNothingTakenToReturn:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOTHING_TO_RETURN", Message: "no hay unidades tomadas para devolver"})
	case domain.ErrNotEnoughRented:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ENOUGH_RENTED", Message: "no hay suficientes unidades rentadas"})
	case domain.ErrNoActiveRental:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_RENTAL", Message: "no existe renta activa para este producto"})
	case domain.ErrReturnQtyExceedsRental:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RETURN_QTY_EXCEEDS_RENTAL", Message: "la cantidad a devolver excede la renta activa"})
	case domain.ErrActiveRentalExists:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ACTIVE_RENTAL_EXISTS", Message: "no se puede eliminar un producto con rentas activas"})
	case domain.ErrUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
