package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/application/kitchen"
)

// IngredientHandler alta de ingredientes, recetas de compuestos y estado de stock.
type IngredientHandler struct {
	uc     *kitchen.IngredientUseCase
	status *kitchen.StockStatusUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *kitchen.IngredientUseCase, status *kitchen.StockStatusUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc, status: status}
}

// Create godoc
// @Summary      Crear ingrediente
// @Description  initial_stock > 0 se registra como ajuste inicial en el ledger.
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateIngredientRequest  true  "name, unit, initial_stock, min_stock, cost_per_unit, is_compound"
// @Success      201   {object}  dto.IngredientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	userID := GetUserID(c)
	if restaurantID == "" || userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), restaurantID, userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Status godoc
// @Summary      Estado de stock por ingrediente
// @Description  sufficient, low (bajo mínimo) o depleted (bloquea al menos un producto).
// @Tags         ingredients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.IngredientStatusDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ingredients/status [get]
func (h *IngredientHandler) Status(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	list, err := h.status.List(c.Context(), restaurantID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// SetRecipe godoc
// @Summary      Reemplazar receta de un ingrediente compuesto
// @Tags         ingredients
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                        true  "ID del compuesto"
// @Param        body  body  dto.SetCompoundRecipeRequest  true  "yield_amount y líneas base"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ingredients/{id}/recipe [put]
func (h *IngredientHandler) SetRecipe(c *fiber.Ctx) error {
	restaurantID := GetRestaurantID(c)
	if restaurantID == "" {
		return unauthorized(c)
	}
	var in dto.SetCompoundRecipeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SetCompoundRecipe(c.Context(), restaurantID, c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
