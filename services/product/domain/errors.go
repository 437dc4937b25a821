package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct indicates product field values violate domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidBOMLine indicates a bill-of-materials line violates domain
	// constraints (non-positive quantity, missing references).
	ErrInvalidBOMLine = errors.New("invalid bill of materials line")
)
