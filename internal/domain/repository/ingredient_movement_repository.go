package repository

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// IngredientMovementRepository puerto del ledger (solo inserción y lectura).
type IngredientMovementRepository interface {
	Create(ctx context.Context, movement *entity.IngredientMovement) error
	ListByIngredient(ctx context.Context, restaurantID, ingredientID string, limit, offset int) ([]*entity.IngredientMovement, error)
}
