package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// AvailabilityHandler consultas de solo lectura: unidades vendibles y costo unitario.
type AvailabilityHandler struct {
	uc *kitchen.AvailabilityUseCase
}

// NewAvailabilityHandler construye el handler.
func NewAvailabilityHandler(uc *kitchen.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{uc: uc}
}

// Availability godoc
// @Summary      Disponibilidad de un producto
// @Description  Máximo de unidades preparables con el stock actual (incluye compuestos aún no producidos)
//
//	y el ingrediente limitante. max_units es null si el producto no tiene restricción.
//
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del producto"
// @Param        quantity  query  int     false  "Unidades solicitadas (default 1)"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/availability [get]
func (h *AvailabilityHandler) Availability(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	quantity := c.QueryInt("quantity", 1)
	out, err := h.uc.ComputeAvailability(c.Context(), restaurantID, c.Params("id"), int64(quantity))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cost godoc
// @Summary      Costo unitario de un producto
// @Description  Suma de cantidad × costo por ingrediente; unit_cost es null si algún costo es desconocido.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/cost [get]
func (h *AvailabilityHandler) Cost(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.ComputeUnitCost(c.Context(), restaurantID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Catalog godoc
// @Summary      Disponibilidad de toda la carta
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        quantity  query  int  false  "Unidades solicitadas por producto (default 1)"
// @Success      200  {array}   dto.AvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/availability [get]
func (h *AvailabilityHandler) Catalog(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	quantity := c.QueryInt("quantity", 1)
	out, err := h.uc.Catalog(c.Context(), restaurantID, int64(quantity))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
