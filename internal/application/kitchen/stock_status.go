package kitchen

import (
	"context"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// StockStatusUseCase estado derivado (sufficient, low, depleted) de los ingredientes activos.
type StockStatusUseCase struct {
	txRunner TxRunner
	settings Settings
	log      *logger.Logger
}

// NewStockStatusUseCase construye el caso de uso.
func NewStockStatusUseCase(txRunner TxRunner, settings Settings, log *logger.Logger) *StockStatusUseCase {
	return &StockStatusUseCase{txRunner: txRunner, settings: settings, log: log.WithComponent("stock-status")}
}

// List calcula el estado de cada ingrediente activo sobre una sola lectura consistente.
// depleted: deja en 0 unidades vendibles a al menos un producto (línea directa sin stock para
// una unidad, o ingrediente base agotado de un compuesto en esa situación).
// low: stock en o por debajo del mínimo.
func (uc *StockStatusUseCase) List(ctx context.Context, restaurantID string) ([]dto.IngredientStatusDTO, error) {
	var out []dto.IngredientStatusDTO
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		ingredients, err := repos.Ingredients.ListByRestaurant(ctx, restaurantID, true)
		if err != nil {
			return err
		}
		products, err := repos.Products.ListActive(ctx, restaurantID)
		if err != nil {
			return err
		}

		resolver := uc.settings.newResolver(restaurantID, repos)
		blocked := make(map[string][]string)
		for _, p := range products {
			report, err := resolver.Availability(ctx, p.ID, 1)
			if err != nil {
				if isRecipeError(err) {
					uc.log.Warn().Str("product_id", p.ID).Err(err).Msg("producto omitido en estado de stock")
					continue
				}
				return err
			}
			if report.Unconstrained || report.MaxUnits != 0 {
				continue
			}
			// toda línea que no alcanza para una unidad bloquea el producto
			for _, l := range report.Lines {
				if l.Units != 0 {
					continue
				}
				block(blocked, l.IngredientID, p.Name)
				if !l.IsCompound {
					continue
				}
				bases, err := resolver.DepletedBases(ctx, l.IngredientID)
				if err != nil {
					return err
				}
				for _, b := range bases {
					block(blocked, b.ID, p.Name)
				}
			}
		}

		out = make([]dto.IngredientStatusDTO, 0, len(ingredients))
		for _, ing := range ingredients {
			status := dto.StockStatusSufficient
			switch {
			case len(blocked[ing.ID]) > 0:
				status = dto.StockStatusDepleted
			case ing.IsLow():
				status = dto.StockStatusLow
			}
			out = append(out, dto.IngredientStatusDTO{
				IngredientID:    ing.ID,
				Name:            ing.Name,
				Unit:            string(ing.Unit),
				CurrentStock:    ing.CurrentStock,
				MinStock:        ing.MinStock,
				Status:          status,
				BlockedProducts: blocked[ing.ID],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func block(blocked map[string][]string, ingredientID, product string) {
	for _, name := range blocked[ingredientID] {
		if name == product {
			return
		}
	}
	blocked[ingredientID] = append(blocked[ingredientID], product)
}
