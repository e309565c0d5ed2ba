package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// ProductionUseCase producción interna de ingredientes compuestos.
type ProductionUseCase struct {
	txRunner TxRunner
	settings Settings
	sheets   ProductionSheetGenerator
	log      *logger.Logger
}

// NewProductionUseCase construye el caso de uso. sheets puede ser nil si no se exponen hojas PDF.
func NewProductionUseCase(txRunner TxRunner, settings Settings, sheets ProductionSheetGenerator, log *logger.Logger) *ProductionUseCase {
	return &ProductionUseCase{txRunner: txRunner, settings: settings, sheets: sheets, log: log.WithComponent("production")}
}

// ProductionInput entrada para producir Quantity (en la unidad del compuesto).
type ProductionInput struct {
	RestaurantID         string
	UserID               string
	CompoundIngredientID string
	Quantity             decimal.Decimal
	Notes                string
}

// Produce consume los ingredientes base de un compuesto y suma lo producido a su stock.
// Requerido por línea = cantidad × producir / rendimiento (en la unidad del base).
// Si falta cualquier base devuelve *domain.InsufficientIngredientsError con todos los
// faltantes y no modifica nada.
func (uc *ProductionUseCase) Produce(ctx context.Context, in ProductionInput) (*entity.ProductionBatch, error) {
	if in.RestaurantID == "" || in.CompoundIngredientID == "" {
		return nil, fmt.Errorf("%w: restaurante y compuesto son obligatorios", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad a producir debe ser positiva", domain.ErrInvalidInput)
	}

	var batch *entity.ProductionBatch
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		compound, err := repos.Ingredients.GetByID(ctx, in.RestaurantID, in.CompoundIngredientID)
		if err != nil {
			return err
		}
		if compound == nil {
			return &domain.IngredientNotFoundError{IngredientID: in.CompoundIngredientID}
		}
		if !compound.IsCompound {
			return fmt.Errorf("%w: %s", domain.ErrNotCompound, compound.Name)
		}
		edges, err := repos.Recipes.ListByCompound(ctx, in.RestaurantID, compound.ID)
		if err != nil {
			return err
		}
		yield, err := recipe.BatchYield(compound, edges)
		if err != nil {
			return err
		}

		ids := []string{compound.ID}
		for _, e := range edges {
			ids = append(ids, e.BaseIngredientID)
		}
		locked, err := lockIngredients(ctx, repos, in.RestaurantID, ids)
		if err != nil {
			return err
		}

		// costos y validación estructural (ciclos) sobre la misma tx, antes de mutar
		resolver := uc.settings.newResolver(in.RestaurantID, repos)
		if _, err := resolver.IngredientUnitCost(ctx, compound.ID); err != nil {
			return err
		}

		lines := make([]consumption, 0, len(edges))
		batch = &entity.ProductionBatch{
			ID:                   uuid.New().String(),
			RestaurantID:         in.RestaurantID,
			CompoundIngredientID: compound.ID,
			CompoundName:         compound.Name,
			Unit:                 compound.Unit,
			Quantity:             in.Quantity,
			BatchCost:            decimal.NewNullDecimal(decimal.Zero),
			Notes:                in.Notes,
			CreatedBy:            in.UserID,
			CreatedAt:            time.Now().UTC(),
		}
		for _, e := range edges {
			base := locked[e.BaseIngredientID]
			perBatch, err := recipe.BaseQuantity(e, base)
			if err != nil {
				return err
			}
			required := perBatch.Mul(in.Quantity).Div(yield)
			unitCost, err := resolver.IngredientUnitCost(ctx, base.ID)
			if err != nil {
				return err
			}
			lines = append(lines, consumption{IngredientID: base.ID, Quantity: required})
			batch.Lines = append(batch.Lines, entity.ProductionBatchLine{
				IngredientID: base.ID,
				Name:         base.Name,
				Unit:         base.Unit,
				Quantity:     required,
				UnitCost:     unitCost,
			})
			batch.BatchCost = recipe.AddCost(batch.BatchCost, recipe.MulCost(unitCost, required))
		}

		if !uc.settings.AllowNegativeStock {
			if missing := shortfalls(lines, locked); len(missing) > 0 {
				return &domain.InsufficientIngredientsError{Shortfalls: missing}
			}
		}

		for _, l := range lines {
			if _, err := applyStockChange(ctx, repos, locked[l.IngredientID], stockChange{
				UserID:        in.UserID,
				Type:          entity.MovementTypeOUT,
				Quantity:      l.Quantity,
				ReferenceType: entity.ReferenceInternalProduction,
				ReferenceID:   batch.ID,
				Notes:         "producción de " + compound.Name,
				Now:           batch.CreatedAt,
			}, uc.settings.AllowNegativeStock); err != nil {
				return err
			}
		}
		if _, err := applyStockChange(ctx, repos, locked[compound.ID], stockChange{
			UserID:        in.UserID,
			Type:          entity.MovementTypeIN,
			Quantity:      in.Quantity,
			UnitCost:      recipe.DivCost(batch.BatchCost, in.Quantity),
			ReferenceType: entity.ReferenceInternalProduction,
			ReferenceID:   batch.ID,
			Notes:         in.Notes,
			Now:           batch.CreatedAt,
		}, uc.settings.AllowNegativeStock); err != nil {
			return err
		}
		return repos.Batches.Create(ctx, batch)
	})
	if err != nil {
		uc.log.Warn().Str("compound_id", in.CompoundIngredientID).Err(err).Msg("producción rechazada")
		return nil, err
	}
	uc.log.Info().
		Str("restaurant_id", in.RestaurantID).
		Str("batch_id", batch.ID).
		Str("compound", batch.CompoundName).
		Str("quantity", batch.Quantity.String()).
		Msg("lote producido")
	return batch, nil
}

// GetBatch devuelve un lote de producción del restaurante.
func (uc *ProductionUseCase) GetBatch(ctx context.Context, restaurantID, batchID string) (*entity.ProductionBatch, error) {
	var batch *entity.ProductionBatch
	err := uc.txRunner.RunReadOnly(ctx, func(repos Repos) error {
		var err error
		batch, err = repos.Batches.GetByID(ctx, restaurantID, batchID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// Sheet genera la hoja de producción (PDF) de un lote.
func (uc *ProductionUseCase) Sheet(ctx context.Context, restaurantID, batchID string) ([]byte, error) {
	if uc.sheets == nil {
		return nil, fmt.Errorf("generador de hojas de producción no configurado")
	}
	batch, err := uc.GetBatch(ctx, restaurantID, batchID)
	if err != nil {
		return nil, err
	}
	return uc.sheets.ProductionSheet(batch)
}
