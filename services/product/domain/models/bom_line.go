package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BOMLine associates one product with one raw material and the quantity of
// that material consumed to build one unit of the product. A product may hold
// any number of lines, and duplicate (product, raw material) pairs are legal:
// lines are never merged and each is evaluated on its own.
type BOMLine struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	RawMaterialID uuid.UUID
	Quantity      decimal.Decimal
	CreatedAt     time.Time
}

// NewBOMLine constructs a valid BOMLine with generated ID and current
// timestamp. Quantity must be strictly positive; declaring a requirement of
// zero or less is meaningless.
func NewBOMLine(productID, rawMaterialID uuid.UUID, quantity decimal.Decimal) (*BOMLine, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("product id must be set")
	}
	if rawMaterialID == uuid.Nil {
		return nil, fmt.Errorf("raw material id must be set")
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("quantity must be positive, got %s", quantity)
	}
	return &BOMLine{
		ID:            uuid.New(),
		ProductID:     productID,
		RawMaterialID: rawMaterialID,
		Quantity:      quantity,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
