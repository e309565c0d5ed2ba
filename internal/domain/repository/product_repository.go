package repository

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, restaurantID, id string) (*entity.Product, error)
	ListActive(ctx context.Context, restaurantID string) ([]*entity.Product, error)
}
