package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var (
	_ repository.IngredientRepository         = (*IngredientRepo)(nil)
	_ repository.RecipeRepository             = (*RecipeRepo)(nil)
	_ repository.IngredientMovementRepository = (*MovementRepo)(nil)
	_ repository.ProductionBatchRepository    = (*BatchRepo)(nil)
	_ repository.ProductRepository            = (*ProductRepo)(nil)
)

// IngredientRepo ingredientes en memoria.
type IngredientRepo struct {
	st       *state
	readOnly bool
}

func (r *IngredientRepo) Create(_ context.Context, ing *entity.Ingredient) error {
	if r.readOnly {
		return ErrReadOnly
	}
	for _, existing := range r.st.ingredients {
		if existing.RestaurantID == ing.RestaurantID && strings.EqualFold(existing.Name, ing.Name) {
			return fmt.Errorf("%w: ingrediente %s", domain.ErrDuplicate, ing.Name)
		}
	}
	r.st.ingredients[ing.ID] = *ing
	return nil
}

func (r *IngredientRepo) GetByID(_ context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	ing, ok := r.st.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return nil, nil
	}
	return &ing, nil
}

// GetForUpdate en memoria equivale a GetByID: Run ya serializa las escrituras.
func (r *IngredientRepo) GetForUpdate(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	if r.readOnly {
		return nil, ErrReadOnly
	}
	return r.GetByID(ctx, restaurantID, id)
}

// LockCompounds no hace nada en memoria: Run ya serializa las escrituras.
func (r *IngredientRepo) LockCompounds(_ context.Context, _ string) error {
	if r.readOnly {
		return ErrReadOnly
	}
	return nil
}

func (r *IngredientRepo) UpdateStock(_ context.Context, restaurantID, id string, newStock decimal.Decimal) error {
	if r.readOnly {
		return ErrReadOnly
	}
	ing, ok := r.st.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return &domain.IngredientNotFoundError{IngredientID: id}
	}
	ing.CurrentStock = newStock
	ing.UpdatedAt = time.Now().UTC()
	r.st.ingredients[id] = ing
	return nil
}

func (r *IngredientRepo) UpdateCost(_ context.Context, restaurantID, id string, cost decimal.NullDecimal) error {
	if r.readOnly {
		return ErrReadOnly
	}
	ing, ok := r.st.ingredients[id]
	if !ok || ing.RestaurantID != restaurantID {
		return &domain.IngredientNotFoundError{IngredientID: id}
	}
	ing.CostPerUnit = cost
	ing.UpdatedAt = time.Now().UTC()
	r.st.ingredients[id] = ing
	return nil
}

func (r *IngredientRepo) ListByRestaurant(_ context.Context, restaurantID string, onlyActive bool) ([]*entity.Ingredient, error) {
	var out []*entity.Ingredient
	for _, ing := range r.st.ingredients {
		if ing.RestaurantID != restaurantID || (onlyActive && !ing.IsActive) {
			continue
		}
		ing := ing
		out = append(out, &ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// RecipeRepo aristas del grafo de recetas en memoria.
type RecipeRepo struct {
	st       *state
	readOnly bool
}

func (r *RecipeRepo) ListByProduct(_ context.Context, restaurantID, productID string) ([]entity.RecipeEdge, error) {
	edges := r.st.productRecipes[recipeKey(restaurantID, productID)]
	return append([]entity.RecipeEdge(nil), edges...), nil
}

func (r *RecipeRepo) ListByCompound(_ context.Context, restaurantID, compoundIngredientID string) ([]entity.CompoundRecipeEdge, error) {
	edges := r.st.compoundRecipes[recipeKey(restaurantID, compoundIngredientID)]
	return append([]entity.CompoundRecipeEdge(nil), edges...), nil
}

func (r *RecipeRepo) ReplaceProductRecipe(_ context.Context, restaurantID, productID string, edges []entity.RecipeEdge) error {
	if r.readOnly {
		return ErrReadOnly
	}
	sorted := append([]entity.RecipeEdge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	r.st.productRecipes[recipeKey(restaurantID, productID)] = sorted
	return nil
}

func (r *RecipeRepo) ReplaceCompoundRecipe(_ context.Context, restaurantID, compoundIngredientID string, edges []entity.CompoundRecipeEdge) error {
	if r.readOnly {
		return ErrReadOnly
	}
	sorted := append([]entity.CompoundRecipeEdge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })
	r.st.compoundRecipes[recipeKey(restaurantID, compoundIngredientID)] = sorted
	return nil
}

// MovementRepo ledger en memoria (solo inserción).
type MovementRepo struct {
	st       *state
	readOnly bool
}

func (r *MovementRepo) Create(_ context.Context, m *entity.IngredientMovement) error {
	if r.readOnly {
		return ErrReadOnly
	}
	r.st.movements = append(r.st.movements, *m)
	return nil
}

// ListByIngredient más reciente primero.
func (r *MovementRepo) ListByIngredient(_ context.Context, restaurantID, ingredientID string, limit, offset int) ([]*entity.IngredientMovement, error) {
	var out []*entity.IngredientMovement
	skipped := 0
	for i := len(r.st.movements) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.st.movements[i]
		if m.RestaurantID != restaurantID || m.IngredientID != ingredientID {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, &m)
	}
	return out, nil
}

// BatchRepo lotes de producción en memoria.
type BatchRepo struct {
	st       *state
	readOnly bool
}

func (r *BatchRepo) Create(_ context.Context, b *entity.ProductionBatch) error {
	if r.readOnly {
		return ErrReadOnly
	}
	cp := *b
	cp.Lines = append([]entity.ProductionBatchLine(nil), b.Lines...)
	r.st.batches[b.ID] = cp
	return nil
}

func (r *BatchRepo) GetByID(_ context.Context, restaurantID, id string) (*entity.ProductionBatch, error) {
	b, ok := r.st.batches[id]
	if !ok || b.RestaurantID != restaurantID {
		return nil, nil
	}
	b.Lines = append([]entity.ProductionBatchLine(nil), b.Lines...)
	return &b, nil
}

// ProductRepo productos en memoria.
type ProductRepo struct {
	st       *state
	readOnly bool
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	if r.readOnly {
		return ErrReadOnly
	}
	for _, existing := range r.st.products {
		if existing.RestaurantID == p.RestaurantID && strings.EqualFold(existing.Name, p.Name) {
			return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, p.Name)
		}
	}
	r.st.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, restaurantID, id string) (*entity.Product, error) {
	p, ok := r.st.products[id]
	if !ok || p.RestaurantID != restaurantID {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) ListActive(_ context.Context, restaurantID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.st.products {
		if p.RestaurantID != restaurantID || !p.IsActive {
			continue
		}
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
