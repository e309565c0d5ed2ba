package kitchen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/internal/domain/recipe"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// IngredientUseCase alta de ingredientes y mantenimiento de recetas compuestas.
// El stock solo cambia vía movimientos.
type IngredientUseCase struct {
	txRunner TxRunner
	settings Settings
	log      *logger.Logger
}

// NewIngredientUseCase construye el caso de uso.
func NewIngredientUseCase(txRunner TxRunner, settings Settings, log *logger.Logger) *IngredientUseCase {
	return &IngredientUseCase{txRunner: txRunner, settings: settings, log: log.WithComponent("ingredients")}
}

// Create crea un ingrediente. El stock inicial se registra como ADJUSTMENT con referencia INITIAL_STOCK.
func (uc *IngredientUseCase) Create(ctx context.Context, restaurantID, userID string, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	unit := entity.Unit(strings.ToLower(strings.TrimSpace(in.Unit)))
	switch {
	case restaurantID == "" || name == "":
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	case !unit.Valid():
		return nil, fmt.Errorf("%w: unidad %q", domain.ErrInvalidInput, in.Unit)
	case in.InitialStock.IsNegative() || in.MinStock.IsNegative():
		return nil, fmt.Errorf("%w: stock negativo", domain.ErrInvalidInput)
	case in.CostPerUnit != nil && in.CostPerUnit.IsNegative():
		return nil, fmt.Errorf("%w: costo negativo", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	ing := &entity.Ingredient{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		Unit:         unit,
		CurrentStock: decimal.Zero,
		MinStock:     in.MinStock,
		IsCompound:   in.IsCompound,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.CostPerUnit != nil {
		ing.CostPerUnit = decimal.NewNullDecimal(*in.CostPerUnit)
	}

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		if err := repos.Ingredients.Create(ctx, ing); err != nil {
			return err
		}
		if !in.InitialStock.IsPositive() {
			return nil
		}
		_, err := applyStockChange(ctx, repos, ing, stockChange{
			UserID:        userID,
			Type:          entity.MovementTypeADJUSTMENT,
			Quantity:      in.InitialStock,
			ReferenceType: entity.ReferenceInitialStock,
			ReferenceID:   ing.ID,
			Notes:         "stock inicial",
			Now:           now,
		}, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("restaurant_id", restaurantID).Str("ingredient_id", ing.ID).Str("name", ing.Name).Msg("ingrediente creado")
	return toIngredientResponse(ing), nil
}

// SetCompoundRecipe reemplaza la receta de un ingrediente compuesto. Rechaza con
// *domain.CyclicRecipeError si la nueva receta cierra un ciclo en el grafo.
func (uc *IngredientUseCase) SetCompoundRecipe(ctx context.Context, restaurantID, compoundID string, in dto.SetCompoundRecipeRequest) error {
	if !in.YieldAmount.IsPositive() {
		return fmt.Errorf("%w: yield_amount debe ser positivo", domain.ErrInvalidRecipe)
	}
	if len(in.Lines) == 0 {
		return fmt.Errorf("%w: la receta no tiene líneas", domain.ErrInvalidRecipe)
	}
	edges := make([]entity.CompoundRecipeEdge, 0, len(in.Lines))
	seen := make(map[string]bool, len(in.Lines))
	for i, l := range in.Lines {
		unit := entity.Unit(strings.ToLower(strings.TrimSpace(l.Unit)))
		switch {
		case l.BaseIngredientID == "":
			return fmt.Errorf("%w: línea %d sin ingrediente", domain.ErrInvalidRecipe, i+1)
		case seen[l.BaseIngredientID]:
			return fmt.Errorf("%w: ingrediente %s repetido", domain.ErrInvalidRecipe, l.BaseIngredientID)
		case !l.QuantityNeeded.IsPositive():
			return fmt.Errorf("%w: cantidad no positiva en línea %d", domain.ErrInvalidRecipe, i+1)
		case unit != "" && !unit.Valid():
			return fmt.Errorf("%w: unidad %q", domain.ErrInvalidRecipe, l.Unit)
		}
		seen[l.BaseIngredientID] = true
		edges = append(edges, entity.CompoundRecipeEdge{
			CompoundIngredientID: compoundID,
			BaseIngredientID:     l.BaseIngredientID,
			QuantityNeeded:       l.QuantityNeeded,
			Unit:                 unit,
			YieldAmount:          in.YieldAmount,
			Position:             i,
		})
	}

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		compound, err := repos.Ingredients.GetByID(ctx, restaurantID, compoundID)
		if err != nil {
			return err
		}
		if compound == nil {
			return &domain.IngredientNotFoundError{IngredientID: compoundID}
		}
		if !compound.IsCompound {
			return fmt.Errorf("%w: %s", domain.ErrNotCompound, compound.Name)
		}
		// con todos los compuestos bloqueados, la validación ve las recetas que otra edición ya confirmó
		if err := repos.Ingredients.LockCompounds(ctx, restaurantID); err != nil {
			return err
		}
		for _, e := range edges {
			base, err := repos.Ingredients.GetByID(ctx, restaurantID, e.BaseIngredientID)
			if err != nil {
				return err
			}
			if base == nil {
				return &domain.IngredientNotFoundError{IngredientID: e.BaseIngredientID}
			}
			if _, err := recipe.BaseQuantity(e, base); err != nil {
				return err
			}
		}
		if err := repos.Recipes.ReplaceCompoundRecipe(ctx, restaurantID, compoundID, edges); err != nil {
			return err
		}
		// se recorre el grafo ya modificado: si hay ciclo la tx hace Rollback
		return uc.settings.newResolver(restaurantID, repos).ValidateCompound(ctx, compoundID)
	})
	if err != nil {
		uc.log.Warn().Str("compound_id", compoundID).Err(err).Msg("receta compuesta rechazada")
		return err
	}
	uc.log.Info().Str("restaurant_id", restaurantID).Str("compound_id", compoundID).Int("lines", len(edges)).Msg("receta compuesta actualizada")
	return nil
}
