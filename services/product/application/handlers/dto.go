package handlers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
)

// ProductRequest is the request body for POST /products and PUT /products/{id}.
type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255" example:"Chair"`
	Description string          `json:"description" example:"Four-legged oak chair"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"249.9"`
} // @name ProductRequest

// ProductResponse is the representation returned by every product endpoint.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string          `json:"name" example:"Chair"`
	Description string          `json:"description" example:"Four-legged oak chair"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"249.9"`
} // @name ProductResponse

// AttachRawMaterialRequest is the request body for
// POST /products/{id}/raw-materials.
type AttachRawMaterialRequest struct {
	RawMaterialID uuid.UUID       `json:"rawMaterialId" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity      decimal.Decimal `json:"quantity" swaggertype:"number" example:"4"`
} // @name AttachRawMaterialRequest

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name.String(),
		Description: p.Description,
		Price:       p.Price,
	}
}
