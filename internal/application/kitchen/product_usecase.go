package kitchen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
	"github.com/jhoicas/Recetario-api/pkg/logger"
)

// ProductUseCase alta de productos de la carta y reemplazo de su receta.
type ProductUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, log: log.WithComponent("products")}
}

// Create crea un producto activo sin receta.
func (uc *ProductUseCase) Create(ctx context.Context, restaurantID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if restaurantID == "" || name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		Description:  in.Description,
		Price:        in.Price,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		return repos.Products.Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("restaurant_id", restaurantID).Str("product_id", product.ID).Msg("producto creado")
	return toProductResponse(product), nil
}

// SetRecipe reemplaza la receta completa de un producto. Cada ingrediente puede aparecer una sola vez
// y el orden de las líneas se conserva (desempate del ingrediente limitante).
func (uc *ProductUseCase) SetRecipe(ctx context.Context, restaurantID, productID string, in dto.SetRecipeRequest) error {
	edges := make([]entity.RecipeEdge, 0, len(in.Lines))
	seen := make(map[string]bool, len(in.Lines))
	for i, l := range in.Lines {
		switch {
		case l.IngredientID == "":
			return fmt.Errorf("%w: línea %d sin ingrediente", domain.ErrInvalidRecipe, i+1)
		case seen[l.IngredientID]:
			return fmt.Errorf("%w: ingrediente %s repetido", domain.ErrInvalidRecipe, l.IngredientID)
		case !l.QuantityNeeded.IsPositive():
			return fmt.Errorf("%w: cantidad no positiva en línea %d", domain.ErrInvalidRecipe, i+1)
		}
		seen[l.IngredientID] = true
		edges = append(edges, entity.RecipeEdge{
			ProductID:      productID,
			IngredientID:   l.IngredientID,
			QuantityNeeded: l.QuantityNeeded,
			Position:       i,
		})
	}

	err := uc.txRunner.Run(ctx, func(repos Repos) error {
		if _, err := getProduct(ctx, repos, restaurantID, productID); err != nil {
			return err
		}
		for _, e := range edges {
			ing, err := repos.Ingredients.GetByID(ctx, restaurantID, e.IngredientID)
			if err != nil {
				return err
			}
			if ing == nil {
				return &domain.IngredientNotFoundError{IngredientID: e.IngredientID}
			}
		}
		return repos.Recipes.ReplaceProductRecipe(ctx, restaurantID, productID, edges)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("restaurant_id", restaurantID).Str("product_id", productID).Int("lines", len(edges)).Msg("receta actualizada")
	return nil
}
