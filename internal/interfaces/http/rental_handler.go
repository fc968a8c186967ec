package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/application/rental"
)

// RentalHandler maneja los listados de rentas.
type RentalHandler struct {
	uc *rental.UseCase
}

// NewRentalHandler construye el handler.
func NewRentalHandler(uc *rental.UseCase) *RentalHandler {
	return &RentalHandler{uc: uc}
}

// ListMy godoc
// @Summary      Mis rentas
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RentalResponse
// @Router       /api/rentals/my [get]
func (h *RentalHandler) ListMy(c *fiber.Ctx) error {
	out, err := h.uc.ListMy(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar rentas (admin, con filtros)
// @Tags         rentals
// @Security     Bearer
// @Produce      json
// @Param        status     query  string  false  "ACTIVE | RETURNED"
// @Param        userId     query  string  false  "Filtrar por usuario"
// @Param        productId  query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.RentalResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/rentals [get]
func (h *RentalHandler) List(c *fiber.Ctx) error {
	var in dto.ListRentalsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
