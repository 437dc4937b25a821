package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProducible(t *testing.T) {
	tests := []struct {
		name string
		reqs []Requirement
		want bool
	}{
		{
			name: "no requirements means not configured, not producible",
			reqs: nil,
			want: false,
		},
		{
			name: "single satisfied requirement",
			reqs: []Requirement{{Required: dec("50"), Available: dec("100")}},
			want: true,
		},
		{
			name: "exact stock satisfies",
			reqs: []Requirement{{Required: dec("100"), Available: dec("100")}},
			want: true,
		},
		{
			name: "single unsatisfied requirement",
			reqs: []Requirement{{Required: dec("150"), Available: dec("100")}},
			want: false,
		},
		{
			name: "one short requirement fails the whole product",
			reqs: []Requirement{
				{Required: dec("10"), Available: dec("100")},
				{Required: dec("5"), Available: dec("4")},
			},
			want: false,
		},
		{
			name: "duplicate lines each see the full unreduced stock",
			reqs: []Requirement{
				{Required: dec("50"), Available: dec("100")},
				{Required: dec("60"), Available: dec("100")},
			},
			want: true,
		},
		{
			name: "fractional quantities",
			reqs: []Requirement{{Required: dec("0.75"), Available: dec("0.5")}},
			want: false,
		},
		{
			name: "zero available fails any positive requirement",
			reqs: []Requirement{{Required: dec("0.0001"), Available: decimal.Zero}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Producible(tt.reqs); got != tt.want {
				t.Fatalf("Producible(%v) = %v, want %v", tt.reqs, got, tt.want)
			}
		})
	}
}
