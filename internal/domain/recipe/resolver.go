// Package recipe recorre el grafo de recetas (productos e ingredientes compuestos) para
// calcular disponibilidad vendible y costo unitario. No escribe nada: opera sobre una
// lectura consistente que le entrega el caller.
package recipe

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// IngredientReader lectura de ingredientes. GetByID devuelve nil, nil si no existe.
type IngredientReader interface {
	GetByID(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error)
}

// RecipeReader lectura de las aristas del grafo en orden de receta.
type RecipeReader interface {
	ListByProduct(ctx context.Context, restaurantID, productID string) ([]entity.RecipeEdge, error)
	ListByCompound(ctx context.Context, restaurantID, compoundIngredientID string) ([]entity.CompoundRecipeEdge, error)
}

// EmptyRecipePolicy decide cómo se reporta un producto sin receta.
type EmptyRecipePolicy string

const (
	// EmptyRecipeUnconstrained: disponible, sin ingrediente limitante.
	EmptyRecipeUnconstrained EmptyRecipePolicy = "unconstrained"
	// EmptyRecipeUnavailable: MaxUnits = 0.
	EmptyRecipeUnavailable EmptyRecipePolicy = "unavailable"
)

// DefaultMaxDepth profundidad máxima de anidamiento de compuestos.
const DefaultMaxDepth = 32

// Options configuración del resolver.
type Options struct {
	EmptyRecipePolicy EmptyRecipePolicy
	MaxDepth          int
}

// Resolver resuelve disponibilidad y costo para un restaurante.
// Memoiza filas durante su vida útil, por lo que debe crearse por petición y nunca compartirse entre peticiones.
type Resolver struct {
	restaurantID string
	ingredients  IngredientReader
	recipes      RecipeReader
	opts         Options

	ingredientCache map[string]*entity.Ingredient
	compoundCache   map[string][]entity.CompoundRecipeEdge
	effective       map[string]decimal.Decimal
	costs           map[string]costResult
}

// NewResolver construye un resolver para una lectura consistente (snapshot) del restaurante.
func NewResolver(restaurantID string, ingredients IngredientReader, recipes RecipeReader, opts Options) *Resolver {
	if opts.EmptyRecipePolicy == "" {
		opts.EmptyRecipePolicy = EmptyRecipeUnconstrained
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Resolver{
		restaurantID:    restaurantID,
		ingredients:     ingredients,
		recipes:         recipes,
		opts:            opts,
		ingredientCache: make(map[string]*entity.Ingredient),
		compoundCache:   make(map[string][]entity.CompoundRecipeEdge),
		effective:       make(map[string]decimal.Decimal),
		costs:           make(map[string]costResult),
	}
}

func (r *Resolver) ingredient(ctx context.Context, id string) (*entity.Ingredient, error) {
	if ing, ok := r.ingredientCache[id]; ok {
		return ing, nil
	}
	ing, err := r.ingredients.GetByID(ctx, r.restaurantID, id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, &domain.IngredientNotFoundError{IngredientID: id}
	}
	r.ingredientCache[id] = ing
	return ing, nil
}

func (r *Resolver) compoundRecipe(ctx context.Context, compoundID string) ([]entity.CompoundRecipeEdge, error) {
	if edges, ok := r.compoundCache[compoundID]; ok {
		return edges, nil
	}
	edges, err := r.recipes.ListByCompound(ctx, r.restaurantID, compoundID)
	if err != nil {
		return nil, err
	}
	r.compoundCache[compoundID] = edges
	return edges, nil
}

// BatchYield valida que todas las líneas declaren el mismo rendimiento positivo y lo devuelve.
func BatchYield(compound *entity.Ingredient, edges []entity.CompoundRecipeEdge) (decimal.Decimal, error) {
	if len(edges) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s no tiene receta", domain.ErrInvalidRecipe, compound.Name)
	}
	yield := edges[0].YieldAmount
	for _, e := range edges {
		if !e.YieldAmount.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: rendimiento no positivo en %s", domain.ErrInvalidRecipe, compound.Name)
		}
		if !e.YieldAmount.Equal(yield) {
			return decimal.Zero, fmt.Errorf("%w: rendimientos distintos en %s", domain.ErrInvalidRecipe, compound.Name)
		}
	}
	return yield, nil
}

// BaseQuantity expresa la cantidad de una línea compuesta en la unidad del ingrediente base.
func BaseQuantity(edge entity.CompoundRecipeEdge, base *entity.Ingredient) (decimal.Decimal, error) {
	qty, ok := entity.ConvertQuantity(edge.QuantityNeeded, edge.Unit, base.Unit)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unidad %s incompatible con %s (%s)",
			domain.ErrInvalidRecipe, edge.Unit, base.Unit, base.Name)
	}
	if !qty.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: cantidad no positiva de %s", domain.ErrInvalidRecipe, base.Name)
	}
	return qty, nil
}

// path es la cadena de compuestos en resolución; detecta ciclos y limita la profundidad.
type path struct {
	names []string
	ids   map[string]bool
}

func newPath() *path {
	return &path{ids: make(map[string]bool)}
}

func (p *path) push(ing *entity.Ingredient, maxDepth int) error {
	if p.ids[ing.ID] {
		cycle := append(append([]string{}, p.names...), ing.Name)
		return &domain.CyclicRecipeError{Path: cycle}
	}
	if len(p.names) >= maxDepth {
		return fmt.Errorf("%w (%d niveles en %s)", domain.ErrRecipeTooDeep, maxDepth, ing.Name)
	}
	p.ids[ing.ID] = true
	p.names = append(p.names, ing.Name)
	return nil
}

func (p *path) pop(ing *entity.Ingredient) {
	delete(p.ids, ing.ID)
	p.names = p.names[:len(p.names)-1]
}

// ValidateCompound recorre la sub-receta de un compuesto y devuelve el primer error estructural
// (ciclo, ingrediente inexistente, unidad o rendimiento inválido).
func (r *Resolver) ValidateCompound(ctx context.Context, compoundID string) error {
	ing, err := r.ingredient(ctx, compoundID)
	if err != nil {
		return err
	}
	_, err = r.effectiveStock(ctx, ing, newPath())
	return err
}
