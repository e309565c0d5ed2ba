package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador de ingredientes. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `id, restaurant_id, name, unit, current_stock, min_stock, cost_per_unit, is_compound, is_active, created_at, updated_at`

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	var unit string
	err := row.Scan(&i.ID, &i.RestaurantID, &i.Name, &unit, &i.CurrentStock, &i.MinStock,
		&i.CostPerUnit, &i.IsCompound, &i.IsActive, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	i.Unit = entity.Unit(unit)
	return &i, nil
}

// Create persiste un nuevo ingrediente.
func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (` + ingredientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.RestaurantID, i.Name, string(i.Unit), i.CurrentStock, i.MinStock,
		i.CostPerUnit, i.IsCompound, i.IsActive, i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: ingrediente %s", domain.ErrDuplicate, i.Name)
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un ingrediente del restaurante; nil, nil si no existe.
func (r *IngredientRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE restaurant_id = $1 AND id = $2`
	i, err := scanIngredient(r.q.QueryRow(ctx, query, restaurantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return i, nil
}

// GetForUpdate obtiene el ingrediente y bloquea la fila hasta el fin de la tx (SELECT FOR UPDATE).
func (r *IngredientRepo) GetForUpdate(ctx context.Context, restaurantID, id string) (*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE restaurant_id = $1 AND id = $2 FOR UPDATE`
	i, err := scanIngredient(r.q.QueryRow(ctx, query, restaurantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient for update: %w", err)
	}
	return i, nil
}

// LockCompounds SELECT ... FOR UPDATE sobre todos los compuestos del restaurante, en orden de ID.
func (r *IngredientRepo) LockCompounds(ctx context.Context, restaurantID string) error {
	rows, err := r.q.Query(ctx,
		`SELECT id FROM ingredients WHERE restaurant_id = $1 AND is_compound ORDER BY id FOR UPDATE`,
		restaurantID)
	if err != nil {
		return fmt.Errorf("lock compounds: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lock compounds: %w", err)
	}
	return nil
}

// UpdateStock fija el stock actual (el caller ya validó y registró el movimiento).
func (r *IngredientRepo) UpdateStock(ctx context.Context, restaurantID, id string, newStock decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ingredients SET current_stock = $3, updated_at = now() WHERE restaurant_id = $1 AND id = $2`,
		restaurantID, id, newStock)
	if err != nil {
		return fmt.Errorf("update ingredient stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.IngredientNotFoundError{IngredientID: id}
	}
	return nil
}

// UpdateCost fija el costo por unidad (NULL = desconocido).
func (r *IngredientRepo) UpdateCost(ctx context.Context, restaurantID, id string, cost decimal.NullDecimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ingredients SET cost_per_unit = $3, updated_at = now() WHERE restaurant_id = $1 AND id = $2`,
		restaurantID, id, cost)
	if err != nil {
		return fmt.Errorf("update ingredient cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.IngredientNotFoundError{IngredientID: id}
	}
	return nil
}

// ListByRestaurant lista los ingredientes ordenados por nombre.
func (r *IngredientRepo) ListByRestaurant(ctx context.Context, restaurantID string, onlyActive bool) ([]*entity.Ingredient, error) {
	query := `SELECT ` + ingredientColumns + ` FROM ingredients WHERE restaurant_id = $1`
	if onlyActive {
		query += ` AND is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ingredient
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}
