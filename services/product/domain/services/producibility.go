// Package services contains stateless domain services for the product bounded
// context. Domain services enforce business rules that operate purely on
// domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import "github.com/shopspring/decimal"

// Requirement pairs one BOM line's required quantity with the stock currently
// available for its raw material.
type Requirement struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

// Producible reports whether a product can be built right now from the given
// requirements.
//
// Rules:
//   - An empty requirement set means the product is not yet configured and is
//     NOT producible, regardless of stock state.
//   - Otherwise every requirement must be satisfied: available >= required.
//   - Each requirement is checked independently against its own Available
//     value. Duplicate lines for the same raw material each see the full,
//     unreduced stock; no running deduction happens within one product's check.
//
// The result is "individually producible": no allocation across products is
// attempted.
func Producible(reqs []Requirement) bool {
	if len(reqs) == 0 {
		return false
	}
	for _, r := range reqs {
		if r.Available.LessThan(r.Required) {
			return false
		}
	}
	return true
}
