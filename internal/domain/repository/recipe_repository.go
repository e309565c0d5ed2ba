package repository

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// RecipeRepository acceso al grafo de recetas. Las listas se devuelven en el orden de la receta (Position).
type RecipeRepository interface {
	ListByProduct(ctx context.Context, restaurantID, productID string) ([]entity.RecipeEdge, error)
	ListByCompound(ctx context.Context, restaurantID, compoundIngredientID string) ([]entity.CompoundRecipeEdge, error)
	ReplaceProductRecipe(ctx context.Context, restaurantID, productID string, edges []entity.RecipeEdge) error
	ReplaceCompoundRecipe(ctx context.Context, restaurantID, compoundIngredientID string, edges []entity.CompoundRecipeEdge) error
}
