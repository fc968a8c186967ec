package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/skirent-api/internal/application/dto"
	"github.com/jhoicas/skirent-api/internal/application/inventory"
	"github.com/jhoicas/skirent-api/internal/application/rental"
)

// InventoryHandler maneja las acciones de inventario sobre un producto:
// take / return-taken (informal) y rent / return-rented (renta formal).
type InventoryHandler struct {
	invUC    *inventory.UseCase
	rentalUC *rental.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(invUC *inventory.UseCase, rentalUC *rental.UseCase) *InventoryHandler {
	return &InventoryHandler{invUC: invUC, rentalUC: rentalUC}
}

// Take godoc
// @Summary      Tomar unidades (checkout informal)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.QtyRequest  true  "Cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/take [post]
func (h *InventoryHandler) Take(c *fiber.Ctx) error {
	in, ok := parseQty(c)
	if !ok {
		return nil
	}
	out, err := h.invUC.Take(c.UserContext(), GetUserID(c), c.Params("id"), in.Qty)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ReturnTaken godoc
// @Summary      Devolver unidades tomadas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.QtyRequest  true  "Cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/return-taken [post]
func (h *InventoryHandler) ReturnTaken(c *fiber.Ctx) error {
	in, ok := parseQty(c)
	if !ok {
		return nil
	}
	out, err := h.invUC.ReturnTaken(c.UserContext(), GetUserID(c), c.Params("id"), in.Qty)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Rent godoc
// @Summary      Rentar producto por días
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RentRequest  true  "Cantidad y días"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/rent [post]
func (h *InventoryHandler) Rent(c *fiber.Ctx) error {
	// Cuerpo opcional: sin body aplica qty=1, days=2.
	in := dto.RentRequest{Qty: 1, Days: 2}
	if len(c.Body()) > 0 && !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.rentalUC.Rent(c.UserContext(), GetUserID(c), c.Params("id"), in.Qty, in.Days)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ReturnRented godoc
// @Summary      Devolver producto rentado
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.QtyRequest  true  "Cantidad"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/return-rented [post]
func (h *InventoryHandler) ReturnRented(c *fiber.Ctx) error {
	in, ok := parseQty(c)
	if !ok {
		return nil
	}
	out, err := h.rentalUC.ReturnRental(c.UserContext(), GetUserID(c), c.Params("id"), in.Qty)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// parseQty parsea el cuerpo {qty}; cuerpo ausente equivale a qty=1.
func parseQty(c *fiber.Ctx) (dto.QtyRequest, bool) {
	in := dto.QtyRequest{Qty: 1}
	if len(c.Body()) > 0 && !parseAndValidate(c, &in) {
		return in, false
	}
	return in, true
}
