package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
)

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error

	// GetByID returns ErrProductNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// FindAll retrieves every product. Order is store-defined and carries no meaning.
	FindAll(ctx context.Context) ([]*models.Product, error)

	// Update persists all fields of an existing product.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes a product by ID. Reports whether a record existed;
	// deleting a missing ID is not an error. Dependent BOM lines are removed
	// by the store (cascade).
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Exists reports whether a product with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
