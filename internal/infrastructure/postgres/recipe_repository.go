package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo aristas del grafo de recetas sobre PostgreSQL (usable con pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// ListByProduct receta directa de un producto en orden de receta.
func (r *RecipeRepo) ListByProduct(ctx context.Context, restaurantID, productID string) ([]entity.RecipeEdge, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, ingredient_id, quantity_needed, position
		FROM product_recipes WHERE restaurant_id = $1 AND product_id = $2
		ORDER BY position, ingredient_id`, restaurantID, productID)
	if err != nil {
		return nil, fmt.Errorf("list product recipe: %w", err)
	}
	defer rows.Close()
	var edges []entity.RecipeEdge
	for rows.Next() {
		var e entity.RecipeEdge
		if err := rows.Scan(&e.ProductID, &e.IngredientID, &e.QuantityNeeded, &e.Position); err != nil {
			return nil, fmt.Errorf("scan product recipe: %w", err)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ListByCompound receta de un ingrediente compuesto en orden de receta.
func (r *RecipeRepo) ListByCompound(ctx context.Context, restaurantID, compoundIngredientID string) ([]entity.CompoundRecipeEdge, error) {
	rows, err := r.q.Query(ctx, `
		SELECT compound_ingredient_id, base_ingredient_id, quantity_needed, unit, yield_amount, position
		FROM compound_recipes WHERE restaurant_id = $1 AND compound_ingredient_id = $2
		ORDER BY position, base_ingredient_id`, restaurantID, compoundIngredientID)
	if err != nil {
		return nil, fmt.Errorf("list compound recipe: %w", err)
	}
	defer rows.Close()
	var edges []entity.CompoundRecipeEdge
	for rows.Next() {
		var e entity.CompoundRecipeEdge
		var unit string
		if err := rows.Scan(&e.CompoundIngredientID, &e.BaseIngredientID, &e.QuantityNeeded, &unit, &e.YieldAmount, &e.Position); err != nil {
			return nil, fmt.Errorf("scan compound recipe: %w", err)
		}
		e.Unit = entity.Unit(unit)
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// ReplaceProductRecipe borra e inserta la receta completa. Debe correr dentro de una tx.
func (r *RecipeRepo) ReplaceProductRecipe(ctx context.Context, restaurantID, productID string, edges []entity.RecipeEdge) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_recipes WHERE restaurant_id = $1 AND product_id = $2`, restaurantID, productID); err != nil {
		return fmt.Errorf("delete product recipe: %w", err)
	}
	for _, e := range edges {
		_, err := r.q.Exec(ctx, `
			INSERT INTO product_recipes (restaurant_id, product_id, ingredient_id, quantity_needed, position)
			VALUES ($1, $2, $3, $4, $5)`,
			restaurantID, productID, e.IngredientID, e.QuantityNeeded, e.Position)
		if err != nil {
			return fmt.Errorf("insert product recipe: %w", err)
		}
	}
	return nil
}

// ReplaceCompoundRecipe borra e inserta la receta del compuesto. Debe correr dentro de una tx.
func (r *RecipeRepo) ReplaceCompoundRecipe(ctx context.Context, restaurantID, compoundIngredientID string, edges []entity.CompoundRecipeEdge) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM compound_recipes WHERE restaurant_id = $1 AND compound_ingredient_id = $2`, restaurantID, compoundIngredientID); err != nil {
		return fmt.Errorf("delete compound recipe: %w", err)
	}
	for _, e := range edges {
		_, err := r.q.Exec(ctx, `
			INSERT INTO compound_recipes (restaurant_id, compound_ingredient_id, base_ingredient_id, quantity_needed, unit, yield_amount, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			restaurantID, compoundIngredientID, e.BaseIngredientID, e.QuantityNeeded, string(e.Unit), e.YieldAmount, e.Position)
		if err != nil {
			return fmt.Errorf("insert compound recipe: %w", err)
		}
	}
	return nil
}
