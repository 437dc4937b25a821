package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewBOMLine(t *testing.T) {
	productID := uuid.New()
	materialID := uuid.New()

	t.Run("valid line", func(t *testing.T) {
		l, err := NewBOMLine(productID, materialID, dec("4"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if l.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
		if l.ProductID != productID || l.RawMaterialID != materialID {
			t.Fatalf("unexpected references: %+v", l)
		}
		if !l.Quantity.Equal(dec("4")) {
			t.Fatalf("expected quantity 4, got %s", l.Quantity)
		}
	})

	t.Run("fractional quantity is allowed", func(t *testing.T) {
		if _, err := NewBOMLine(productID, materialID, dec("0.25")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		if _, err := NewBOMLine(productID, materialID, decimal.Zero); err == nil {
			t.Fatal("expected error for zero quantity")
		}
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		if _, err := NewBOMLine(productID, materialID, dec("-1")); err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})

	t.Run("rejects nil product id", func(t *testing.T) {
		if _, err := NewBOMLine(uuid.Nil, materialID, dec("1")); err == nil {
			t.Fatal("expected error for nil product id")
		}
	})

	t.Run("rejects nil raw material id", func(t *testing.T) {
		if _, err := NewBOMLine(productID, uuid.Nil, dec("1")); err == nil {
			t.Fatal("expected error for nil raw material id")
		}
	})

	t.Run("duplicate pairs produce distinct lines", func(t *testing.T) {
		l1, _ := NewBOMLine(productID, materialID, dec("2"))
		l2, _ := NewBOMLine(productID, materialID, dec("2"))
		if l1.ID == l2.ID {
			t.Fatal("expected each line to carry its own identity")
		}
	})
}
