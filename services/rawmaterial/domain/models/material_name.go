package models

import "fmt"

// MaterialName is a value object representing a valid raw material name.
// The name is the unique business key for a raw material: the upsert
// operation resolves existing records by it.
type MaterialName string

const (
	minMaterialNameLength = 1
	maxMaterialNameLength = 255
)

// NewMaterialName constructs a valid MaterialName or returns an error if constraints are violated.
func NewMaterialName(s string) (MaterialName, error) {
	if len(s) < minMaterialNameLength {
		return "", fmt.Errorf("raw material name must be at least %d character", minMaterialNameLength)
	}
	if len(s) > maxMaterialNameLength {
		return "", fmt.Errorf("raw material name must not exceed %d characters", maxMaterialNameLength)
	}
	return MaterialName(s), nil
}

// String returns the underlying string value.
func (n MaterialName) String() string {
	return string(n)
}
