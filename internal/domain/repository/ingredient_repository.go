package repository

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// IngredientRepository define el puerto para ingredientes y su stock actual.
// Todas las operaciones reciben el restaurante (tenant) explícitamente.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error)
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error)
	// LockCompounds bloquea todas las filas de compuestos del restaurante en orden de ID.
	// Serializa los cambios de recetas compuestas para que dos ediciones concurrentes no cierren un ciclo.
	LockCompounds(ctx context.Context, restaurantID string) error
	UpdateStock(ctx context.Context, restaurantID, id string, newStock decimal.Decimal) error
	UpdateCost(ctx context.Context, restaurantID, id string, cost decimal.NullDecimal) error
	ListByRestaurant(ctx context.Context, restaurantID string, onlyActive bool) ([]*entity.Ingredient, error)
}
