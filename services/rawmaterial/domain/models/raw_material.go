package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMaterial is the core aggregate for this bounded context.
// Cost and CurrentStock are fixed-point decimals so persisted monetary and
// quantity values never accumulate float rounding drift.
type RawMaterial struct {
	ID           uuid.UUID
	Name         MaterialName // unique business key
	Description  string
	Cost         decimal.Decimal
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRawMaterial constructs a valid RawMaterial aggregate with generated ID and
// current timestamp. Cost and initial stock must be non-negative.
func NewRawMaterial(name MaterialName, description string, cost, currentStock decimal.Decimal) (*RawMaterial, error) {
	if cost.IsNegative() {
		return nil, fmt.Errorf("cost must not be negative, got %s", cost)
	}
	if currentStock.IsNegative() {
		return nil, fmt.Errorf("current stock must not be negative, got %s", currentStock)
	}
	now := time.Now().UTC()
	return &RawMaterial{
		ID:           uuid.New(),
		Name:         name,
		Description:  description,
		Cost:         cost,
		CurrentStock: currentStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Restock applies the upsert-by-name contract to an existing record: the
// incoming quantity is ADDED to current stock while cost and description are
// overwritten with the newest supplied values.
func (m *RawMaterial) Restock(description string, cost, quantity decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("cost must not be negative, got %s", cost)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("restock quantity must not be negative, got %s", quantity)
	}
	m.Description = description
	m.Cost = cost
	m.CurrentStock = m.CurrentStock.Add(quantity)
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// Overwrite applies the replace-by-id contract: every field including
// CurrentStock takes the supplied value. No additive stock logic here; this is
// deliberately a different contract from Restock.
func (m *RawMaterial) Overwrite(name MaterialName, description string, cost, currentStock decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("cost must not be negative, got %s", cost)
	}
	if currentStock.IsNegative() {
		return fmt.Errorf("current stock must not be negative, got %s", currentStock)
	}
	m.Name = name
	m.Description = description
	m.Cost = cost
	m.CurrentStock = currentStock
	m.UpdatedAt = time.Now().UTC()
	return nil
}
