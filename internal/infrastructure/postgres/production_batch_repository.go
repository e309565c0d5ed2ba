package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/repository"
)

var _ repository.ProductionBatchRepository = (*ProductionBatchRepo)(nil)

// ProductionBatchRepo lotes de producción interna sobre PostgreSQL.
type ProductionBatchRepo struct {
	q Querier
}

// NewProductionBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionBatchRepository(q Querier) *ProductionBatchRepo {
	return &ProductionBatchRepo{q: q}
}

// Create inserta el lote y sus líneas. Debe correr dentro de la tx de la producción.
func (r *ProductionBatchRepo) Create(ctx context.Context, b *entity.ProductionBatch) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO production_batches (id, restaurant_id, compound_ingredient_id, compound_name, unit, quantity,
			batch_cost, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.RestaurantID, b.CompoundIngredientID, b.CompoundName, string(b.Unit), b.Quantity,
		b.BatchCost, b.Notes, b.CreatedBy, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert production batch: %w", err)
	}
	for pos, l := range b.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO production_batch_lines (batch_id, position, ingredient_id, name, unit, quantity, unit_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			b.ID, pos, l.IngredientID, l.Name, string(l.Unit), l.Quantity, l.UnitCost)
		if err != nil {
			return fmt.Errorf("insert production batch line: %w", err)
		}
	}
	return nil
}

// GetByID lote con sus líneas; nil, nil si no existe.
func (r *ProductionBatchRepo) GetByID(ctx context.Context, restaurantID, id string) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	var unit string
	err := r.q.QueryRow(ctx, `
		SELECT id, restaurant_id, compound_ingredient_id, compound_name, unit, quantity, batch_cost, notes, created_by, created_at
		FROM production_batches WHERE restaurant_id = $1 AND id = $2`, restaurantID, id).Scan(
		&b.ID, &b.RestaurantID, &b.CompoundIngredientID, &b.CompoundName, &unit, &b.Quantity,
		&b.BatchCost, &b.Notes, &b.CreatedBy, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production batch: %w", err)
	}
	b.Unit = entity.Unit(unit)

	rows, err := r.q.Query(ctx, `
		SELECT ingredient_id, name, unit, quantity, unit_cost
		FROM production_batch_lines WHERE batch_id = $1 ORDER BY position`, b.ID)
	if err != nil {
		return nil, fmt.Errorf("list production batch lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.ProductionBatchLine
		var lineUnit string
		if err := rows.Scan(&l.IngredientID, &l.Name, &lineUnit, &l.Quantity, &l.UnitCost); err != nil {
			return nil, fmt.Errorf("scan production batch line: %w", err)
		}
		l.Unit = entity.Unit(lineUnit)
		b.Lines = append(b.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &b, nil
}
