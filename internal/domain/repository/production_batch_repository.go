package repository

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// ProductionBatchRepository persiste los lotes de producción interna.
type ProductionBatchRepository interface {
	Create(ctx context.Context, batch *entity.ProductionBatch) error
	GetByID(ctx context.Context, restaurantID, id string) (*entity.ProductionBatch, error)
}
