package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a manufacturable good. Price is a fixed-point decimal so
// persisted prices never accumulate float rounding drift. Its bill of
// materials lives in separate BOMLine records; a product with no lines is
// treated as not yet configured, never as trivially buildable.
type Product struct {
	ID          uuid.UUID
	Name        ProductName
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and
// current timestamp. Price must be non-negative.
func NewProduct(name ProductName, description string, price decimal.Decimal) (*Product, error) {
	if price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative, got %s", price)
	}
	now := time.Now().UTC()
	return &Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Overwrite replaces every mutable field with the supplied values.
func (p *Product) Overwrite(name ProductName, description string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("price must not be negative, got %s", price)
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.UpdatedAt = time.Now().UTC()
	return nil
}
