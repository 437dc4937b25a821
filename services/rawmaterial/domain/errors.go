package domain

import "errors"

// Sentinel errors for the raw material domain. Use errors.Is() to check these.
var (
	// ErrRawMaterialNotFound indicates the requested raw material does not exist.
	ErrRawMaterialNotFound = errors.New("raw material not found")

	// ErrRawMaterialNameTaken indicates another raw material already holds the
	// unique name. Only reachable through Replace; the upsert path accumulates
	// into the existing record instead of conflicting.
	ErrRawMaterialNameTaken = errors.New("raw material name already in use")

	// ErrInvalidRawMaterial indicates field values violate domain constraints.
	ErrInvalidRawMaterial = errors.New("invalid raw material")
)
