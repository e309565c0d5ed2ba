package kitchen

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recetario-api/internal/domain"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// lockIngredients bloquea las filas en orden ascendente de ID para que dos operaciones
// concurrentes sobre los mismos ingredientes no se bloqueen mutuamente.
func lockIngredients(ctx context.Context, repos Repos, restaurantID string, ids []string) (map[string]*entity.Ingredient, error) {
	sorted := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			sorted = append(sorted, id)
		}
	}
	sort.Strings(sorted)

	locked := make(map[string]*entity.Ingredient, len(sorted))
	for _, id := range sorted {
		ing, err := repos.Ingredients.GetForUpdate(ctx, restaurantID, id)
		if err != nil {
			return nil, err
		}
		if ing == nil {
			return nil, &domain.IngredientNotFoundError{IngredientID: id}
		}
		locked[id] = ing
	}
	return locked, nil
}

// consumption cantidad requerida de un ingrediente en una operación compuesta.
type consumption struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// shortfalls compara lo requerido (acumulado por ingrediente) contra el stock bloqueado
// y devuelve todos los faltantes en el orden de la receta.
func shortfalls(lines []consumption, locked map[string]*entity.Ingredient) []domain.Shortfall {
	required := make(map[string]decimal.Decimal, len(lines))
	order := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := required[l.IngredientID]; !ok {
			order = append(order, l.IngredientID)
		}
		required[l.IngredientID] = required[l.IngredientID].Add(l.Quantity)
	}
	var out []domain.Shortfall
	for _, id := range order {
		ing := locked[id]
		if ing.CurrentStock.LessThan(required[id]) {
			out = append(out, domain.Shortfall{
				IngredientID: id,
				Name:         ing.Name,
				Required:     required[id],
				Available:    ing.CurrentStock,
			})
		}
	}
	return out
}
