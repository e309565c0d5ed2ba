package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// SaleUseCase descuenta del stock los ingredientes directos de un producto vendido.
type SaleUseCase struct {
	txRunner TxRunner
	settings Settings
	log      *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, settings Settings, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, settings: settings, log: log.WithComponent("sales")}
}

// SaleInput venta de Quantity unidades de un producto. ReferenceID suele ser el id del pedido;
// si viene vacío se genera uno para agrupar los movimientos.
type SaleInput struct {
	RestaurantID string
	UserID       string
	ProductID    string
	Quantity     int64
	ReferenceID  string
	Notes        string
}

// RecordSale aplica una salida SALE por cada línea directa de la receta (cantidad × unidades).
// Los compuestos se descuentan de su propio stock; no se producen automáticamente.
// Todo o nada: si falta cualquier ingrediente devuelve *domain.InsufficientIngredientsError.
func (uc *SaleUseCase) RecordSale(ctx context.Context, in SaleInput) ([]*entity.IngredientMovement, error) {
	if in.RestaurantID == "" || in.ProductID == "" {
		return nil, fmt.Errorf("%w: restaurante y producto son obligatorios", domain.ErrInvalidInput)
	}
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad vendida debe ser >= 1", domain.ErrInvalidInput)
	}
	if in.ReferenceID == "" {
		in.ReferenceID = uuid.New().String()
	}

	var movements []*entity.IngredientMovement
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		product, err := getProduct(ctx, repos, in.RestaurantID, in.ProductID)
		if err != nil {
			return err
		}
		edges, err := repos.Recipes.ListByProduct(ctx, in.RestaurantID, product.ID)
		if err != nil {
			return err
		}
		if len(edges) == 0 {
			return nil
		}

		units := decimal.NewFromInt(in.Quantity)
		lines := make([]consumption, 0, len(edges))
		ids := make([]string, 0, len(edges))
		for _, e := range edges {
			if !e.QuantityNeeded.IsPositive() {
				return fmt.Errorf("%w: cantidad no positiva para ingrediente %s", domain.ErrInvalidRecipe, e.IngredientID)
			}
			lines = append(lines, consumption{IngredientID: e.IngredientID, Quantity: e.QuantityNeeded.Mul(units)})
			ids = append(ids, e.IngredientID)
		}
		locked, err := lockIngredients(ctx, repos, in.RestaurantID, ids)
		if err != nil {
			return err
		}
		if !uc.settings.AllowNegativeStock {
			if missing := shortfalls(lines, locked); len(missing) > 0 {
				return &domain.InsufficientIngredientsError{Shortfalls: missing}
			}
		}

		now := time.Now().UTC()
		notes := in.Notes
		if notes == "" {
			notes = fmt.Sprintf("venta de %d x %s", in.Quantity, product.Name)
		}
		for _, l := range lines {
			mov, err := applyStockChange(ctx, repos, locked[l.IngredientID], stockChange{
				UserID:        in.UserID,
				Type:          entity.MovementTypeOUT,
				Quantity:      l.Quantity,
				ReferenceType: entity.ReferenceSale,
				ReferenceID:   in.ReferenceID,
				Notes:         notes,
				Now:           now,
			}, uc.settings.AllowNegativeStock)
			if err != nil {
				return err
			}
			movements = append(movements, mov)
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Str("product_id", in.ProductID).Int64("quantity", in.Quantity).Err(err).Msg("venta rechazada")
		return nil, err
	}
	uc.log.Info().
		Str("restaurant_id", in.RestaurantID).
		Str("product_id", in.ProductID).
		Int64("quantity", in.Quantity).
		Int("movements", len(movements)).
		Msg("venta registrada")
	return movements, nil
}
