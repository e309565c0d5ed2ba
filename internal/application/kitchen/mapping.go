package kitchen

import (
	"github.com/jhoicas/Recetario-api/internal/application/dto"
	"github.com/jhoicas/Recetario-api/internal/domain/entity"
)

// ToMovementResponse convierte un registro del ledger al DTO de salida.
func ToMovementResponse(m *entity.IngredientMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		IngredientID:  m.IngredientID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		UnitCost:      m.UnitCost,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		CreatedBy:     m.CreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}

// ToMovementResponses convierte una lista de movimientos.
func ToMovementResponses(list []*entity.IngredientMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

// ToBatchResponse convierte un lote de producción al DTO de salida.
func ToBatchResponse(b *entity.ProductionBatch) *dto.ProductionBatchResponse {
	resp := &dto.ProductionBatchResponse{
		ID:                   b.ID,
		CompoundIngredientID: b.CompoundIngredientID,
		CompoundName:         b.CompoundName,
		Unit:                 string(b.Unit),
		Quantity:             b.Quantity,
		BatchCost:            b.BatchCost,
		Lines:                make([]dto.ProductionLineDTO, 0, len(b.Lines)),
		Notes:                b.Notes,
		CreatedBy:            b.CreatedBy,
		CreatedAt:            b.CreatedAt,
	}
	for _, l := range b.Lines {
		resp.Lines = append(resp.Lines, dto.ProductionLineDTO{
			IngredientID: l.IngredientID,
			Name:         l.Name,
			Unit:         string(l.Unit),
			Quantity:     l.Quantity,
			UnitCost:     l.UnitCost,
		})
	}
	return resp
}

func toIngredientResponse(i *entity.Ingredient) *dto.IngredientResponse {
	return &dto.IngredientResponse{
		ID:           i.ID,
		Name:         i.Name,
		Unit:         string(i.Unit),
		CurrentStock: i.CurrentStock,
		MinStock:     i.MinStock,
		CostPerUnit:  i.CostPerUnit,
		IsCompound:   i.IsCompound,
		IsActive:     i.IsActive,
		CreatedAt:    i.CreatedAt,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		RestaurantID: p.RestaurantID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
