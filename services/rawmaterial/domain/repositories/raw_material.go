package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
)

// RawMaterialRepository is the persistence interface for the RawMaterial aggregate.
// The domain layer owns this interface; infrastructure implements it.
type RawMaterialRepository interface {
	Create(ctx context.Context, m *models.RawMaterial) error

	// GetByID returns ErrRawMaterialNotFound when no record matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.RawMaterial, error)

	// GetByName resolves the unique business key. Returns ErrRawMaterialNotFound
	// when no record matches.
	GetByName(ctx context.Context, name string) (*models.RawMaterial, error)

	// FindAll retrieves every raw material. Order is store-defined and carries
	// no meaning.
	FindAll(ctx context.Context) ([]*models.RawMaterial, error)

	// Update persists all fields of an existing record.
	Update(ctx context.Context, m *models.RawMaterial) error

	// Delete removes a record by ID. Reports whether a record existed; deleting
	// a missing ID is not an error.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Atomically runs fn against a transaction-bound repository. Every store
	// access inside fn commits or rolls back as one unit; read-modify-write
	// sequences such as the upsert must go through here.
	Atomically(ctx context.Context, fn func(RawMaterialRepository) error) error
}
