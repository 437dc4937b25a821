package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
)

// BOMRepository is the persistence interface for bill-of-materials lines.
type BOMRepository interface {
	// Add appends a line. Duplicate (product, raw material) pairs are allowed
	// and stored as independent lines. Returns ErrProductNotFound or the raw
	// material domain's ErrRawMaterialNotFound if a referenced record vanished
	// between the service's existence checks and the insert.
	Add(ctx context.Context, line *models.BOMLine) error

	// ListByProduct retrieves all lines declared for the given product, in
	// insertion order.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.BOMLine, error)
}
