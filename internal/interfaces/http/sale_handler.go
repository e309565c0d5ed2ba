package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// SaleHandler consumo de ingredientes por venta de productos.
type SaleHandler struct {
	uc *kitchen.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *kitchen.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar venta
// @Description  Descuenta los ingredientes directos de la receta por cada unidad vendida.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaleRequest  true  "product_id, quantity, reference_id"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ShortfallErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	userID := GetUserID(c)
	if restaurantID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.SaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	movements, err := h.uc.RecordSale(c.Context(), kitchen.SaleInput{
		RestaurantID: restaurantID,
		UserID:       userID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		ReferenceID:  in.ReferenceID,
		Notes:        in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SaleResponse{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Movements: kitchen.ToMovementResponses(movements),
	})
}
