package models

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewProductName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Chair", false},
		{"single character", "C", false},
		{"255 characters", strings.Repeat("a", 255), false},
		{"empty", "", true},
		{"256 characters", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProductName(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.input {
				t.Fatalf("expected %q, got %q", tt.input, got.String())
			}
		})
	}
}

func TestNewProduct(t *testing.T) {
	t.Run("returns product with non-zero ID and all fields set", func(t *testing.T) {
		p, err := NewProduct("Chair", "oak chair", dec("249.9"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if p.Name != ProductName("Chair") {
			t.Fatalf("expected Name Chair, got %v", p.Name)
		}
		if !p.Price.Equal(dec("249.9")) {
			t.Fatalf("expected Price 249.9, got %s", p.Price)
		}
	})

	t.Run("sets timestamps to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		p, err := NewProduct("Chair", "", dec("1"))
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.CreatedAt.Before(before) || p.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", p.CreatedAt, before, after)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		if _, err := NewProduct("Chair", "", decimal.Zero); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		if _, err := NewProduct("Chair", "", dec("-1")); err == nil {
			t.Fatal("expected error for negative price")
		}
	})
}

func TestProduct_Overwrite(t *testing.T) {
	t.Run("replaces all mutable fields", func(t *testing.T) {
		p, _ := NewProduct("Chair", "old", dec("100"))
		if err := p.Overwrite("Stool", "new", dec("50")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != ProductName("Stool") || p.Description != "new" || !p.Price.Equal(dec("50")) {
			t.Fatalf("unexpected product after overwrite: %+v", p)
		}
	})

	t.Run("keeps identity", func(t *testing.T) {
		p, _ := NewProduct("Chair", "", dec("1"))
		id := p.ID
		if err := p.Overwrite("Chair", "", dec("2")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != id {
			t.Fatal("expected ID to be stable across Overwrite")
		}
	})

	t.Run("rejects negative price", func(t *testing.T) {
		p, _ := NewProduct("Chair", "", dec("1"))
		if err := p.Overwrite("Chair", "", dec("-2")); err == nil {
			t.Fatal("expected error for negative price")
		}
		if !p.Price.Equal(dec("1")) {
			t.Fatalf("price must be untouched on error, got %s", p.Price)
		}
	})
}
