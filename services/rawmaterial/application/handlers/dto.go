package handlers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
)

// RawMaterialRequest is the request body for POST /raw-materials and
// PUT /raw-materials/{id}. Quantity semantics differ per verb: POST adds it
// to the stock of an existing name, PUT overwrites the stock outright.
type RawMaterialRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=255" example:"Wood"`
	Description  string          `json:"description" example:"Kiln-dried oak planks"`
	Cost         decimal.Decimal `json:"cost" swaggertype:"number" example:"12.5"`
	CurrentStock decimal.Decimal `json:"currentStock" swaggertype:"number" example:"100"`
} // @name RawMaterialRequest

// RawMaterialResponse is the representation returned by every raw material
// endpoint.
type RawMaterialResponse struct {
	ID           uuid.UUID       `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name         string          `json:"name" example:"Wood"`
	Description  string          `json:"description" example:"Kiln-dried oak planks"`
	Cost         decimal.Decimal `json:"cost" swaggertype:"number" example:"12.5"`
	CurrentStock decimal.Decimal `json:"currentStock" swaggertype:"number" example:"100"`
} // @name RawMaterialResponse

func toResponse(m *models.RawMaterial) RawMaterialResponse {
	return RawMaterialResponse{
		ID:           m.ID,
		Name:         m.Name.String(),
		Description:  m.Description,
		Cost:         m.Cost,
		CurrentStock: m.CurrentStock,
	}
}
