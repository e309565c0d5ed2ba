package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// ProductionHandler producción interna de compuestos y su hoja PDF.
type ProductionHandler struct {
	uc *kitchen.ProductionUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *kitchen.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Produce godoc
// @Summary      Producir un ingrediente compuesto
// @Description  Descuenta los ingredientes base proporcionalmente al rendimiento y suma el compuesto.
//
//	Todo o nada: si falta algún ingrediente responde 409 con la lista completa de faltantes.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProductionRequest  true  "compound_ingredient_id, quantity"
// @Success      201   {object}  dto.ProductionBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ShortfallErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	userID := GetUserID(c)
	if restaurantID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.ProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	batch, err := h.uc.Produce(c.Context(), kitchen.ProductionInput{
		RestaurantID:         restaurantID,
		UserID:               userID,
		CompoundIngredientID: in.CompoundIngredientID,
		Quantity:             in.Quantity,
		Notes:                in.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(kitchen.ToBatchResponse(batch))
}

// GetByID godoc
// @Summary      Obtener lote de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.ProductionBatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	batch, err := h.uc.GetBatch(c.Context(), restaurantID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(kitchen.ToBatchResponse(batch))
}

// Sheet godoc
// @Summary      Hoja de producción en PDF
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id}/sheet [get]
func (h *ProductionHandler) Sheet(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	pdf, err := h.uc.Sheet(c.Context(), restaurantID, id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=produccion-%s.pdf", id))
	return c.Send(pdf)
}
