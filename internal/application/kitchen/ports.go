package kitchen

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

// Repos repositorios atados a una misma transacción (o snapshot de lectura).
type Repos struct {
	Ingredients repository.IngredientRepository
	Recipes     repository.RecipeRepository
	Movements   repository.IngredientMovementRepository
	Batches     repository.ProductionBatchRepository
	Products    repository.ProductRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de stock.
type TxRunner interface {
	// Run abre una transacción de escritura; Commit si fn devuelve nil, Rollback en otro caso.
	Run(ctx context.Context, fn func(repos Repos) error) error
	// RunReadOnly abre una lectura consistente: todas las consultas de fn ven el mismo estado.
	RunReadOnly(ctx context.Context, fn func(repos Repos) error) error
}

// ProductionSheetGenerator genera la hoja de producción (PDF) de un lote.
type ProductionSheetGenerator interface {
	ProductionSheet(batch *entity.ProductionBatch) ([]byte, error)
}

// Settings parámetros del motor tomados de la configuración.
type Settings struct {
	EmptyRecipePolicy  recipe.EmptyRecipePolicy
	AllowNegativeStock bool
	MaxDepth           int
	CatalogConcurrency int
}

func (s Settings) resolverOptions() recipe.Options {
	return recipe.Options{EmptyRecipePolicy: s.EmptyRecipePolicy, MaxDepth: s.MaxDepth}
}

func (s Settings) newResolver(restaurantID string, repos Repos) *recipe.Resolver {
	return recipe.NewResolver(restaurantID, repos.Ingredients, repos.Recipes, s.resolverOptions())
}
