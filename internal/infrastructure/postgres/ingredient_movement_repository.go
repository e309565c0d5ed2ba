package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.IngredientMovementRepository = (*IngredientMovementRepo)(nil)

// IngredientMovementRepo ledger de ingredientes sobre PostgreSQL (usable con pool o tx).
type IngredientMovementRepo struct {
	q Querier
}

// NewIngredientMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientMovementRepository(q Querier) *IngredientMovementRepo {
	return &IngredientMovementRepo{q: q}
}

// Create agrega un registro al ledger (nunca se actualiza).
func (r *IngredientMovementRepo) Create(ctx context.Context, m *entity.IngredientMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ingredient_movements (id, restaurant_id, ingredient_id, type, quantity, reference_type, reference_id,
			notes, unit_cost, previous_stock, new_stock, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.RestaurantID, m.IngredientID, m.Type, m.Quantity, m.ReferenceType, m.ReferenceID,
		m.Notes, m.UnitCost, m.PreviousStock, m.NewStock, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create ingredient movement: %w", err)
	}
	return nil
}

// ListByIngredient historial de un ingrediente, más reciente primero.
func (r *IngredientMovementRepo) ListByIngredient(ctx context.Context, restaurantID, ingredientID string, limit, offset int) ([]*entity.IngredientMovement, error) {
	query := `
		SELECT id, restaurant_id, ingredient_id, type, quantity, reference_type, reference_id,
			notes, unit_cost, previous_stock, new_stock, created_by, created_at
		FROM ingredient_movements
		WHERE restaurant_id = $1 AND ingredient_id = $2
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, restaurantID, ingredientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.IngredientMovement
	for rows.Next() {
		var m entity.IngredientMovement
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.IngredientID, &m.Type, &m.Quantity, &m.ReferenceType,
			&m.ReferenceID, &m.Notes, &m.UnitCost, &m.PreviousStock, &m.NewStock, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
