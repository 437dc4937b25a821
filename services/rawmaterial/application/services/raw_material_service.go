package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/Douglascrc/AutoFlex/pkg/cache"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/repositories"
)

// RawMaterialService orchestrates the raw material lifecycle. Event publishing
// is handled by the repository layer (outbox pattern). Single-record reads are
// served from Redis cache when available; the cache entry is dropped on every
// mutation.
type RawMaterialService struct {
	repo  repositories.RawMaterialRepository
	cache *pkgcache.MaterialCache
}

// NewRawMaterialService returns a RawMaterialService wired with the given
// repository and cache.
func NewRawMaterialService(repo repositories.RawMaterialRepository, materialCache *pkgcache.MaterialCache) *RawMaterialService {
	return &RawMaterialService{repo: repo, cache: materialCache}
}

// Upsert creates a raw material, or restocks an existing one when the name is
// already registered: quantity is added to the current stock while cost and
// description are overwritten. The read-modify-write runs inside one store
// transaction so concurrent restocks never lose an increment. The returned
// bool reports whether a new record was created.
func (s *RawMaterialService) Upsert(ctx context.Context, name, description string, cost, quantity decimal.Decimal) (*models.RawMaterial, bool, error) {
	materialName, err := models.NewMaterialName(name)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", materialdomain.ErrInvalidRawMaterial, err)
	}

	var out *models.RawMaterial
	var created bool
	err = s.repo.Atomically(ctx, func(txRepo repositories.RawMaterialRepository) error {
		existing, err := txRepo.GetByName(ctx, materialName.String())
		switch {
		case errors.Is(err, materialdomain.ErrRawMaterialNotFound):
			m, err := models.NewRawMaterial(materialName, description, cost, quantity)
			if err != nil {
				return fmt.Errorf("%w: %w", materialdomain.ErrInvalidRawMaterial, err)
			}
			if err := txRepo.Create(ctx, m); err != nil {
				return fmt.Errorf("create raw material: %w", err)
			}
			out, created = m, true
			return nil
		case err != nil:
			return fmt.Errorf("resolve raw material name: %w", err)
		default:
			if err := existing.Restock(description, cost, quantity); err != nil {
				return fmt.Errorf("%w: %w", materialdomain.ErrInvalidRawMaterial, err)
			}
			if err := txRepo.Update(ctx, existing); err != nil {
				return fmt.Errorf("restock raw material: %w", err)
			}
			out = existing
			return nil
		}
	})
	if err != nil {
		return nil, false, err
	}

	if s.cache != nil && !created {
		_ = s.cache.Delete(context.Background(), out.ID)
	}
	return out, created, nil
}

// List returns every raw material.
func (s *RawMaterialService) List(ctx context.Context) ([]*models.RawMaterial, error) {
	materials, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	return materials, nil
}

// GetByID retrieves a raw material using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *RawMaterialService) GetByID(ctx context.Context, id uuid.UUID) (*models.RawMaterial, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			if m, err := materialFromCache(cached); err == nil {
				return m, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to Postgres.
			_ = err
		}
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedMaterial{
				ID:           m.ID,
				Name:         m.Name.String(),
				Description:  m.Description,
				Cost:         m.Cost.String(),
				CurrentStock: m.CurrentStock.String(),
				CreatedAt:    m.CreatedAt,
			})
		}()
	}

	return m, nil
}

// Replace overwrites every field of an existing raw material, including the
// current stock. Returns ErrRawMaterialNotFound when no record matches.
func (s *RawMaterialService) Replace(ctx context.Context, id uuid.UUID, name, description string, cost, currentStock decimal.Decimal) (*models.RawMaterial, error) {
	materialName, err := models.NewMaterialName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", materialdomain.ErrInvalidRawMaterial, err)
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := m.Overwrite(materialName, description, cost, currentStock); err != nil {
		return nil, fmt.Errorf("%w: %w", materialdomain.ErrInvalidRawMaterial, err)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("replace raw material: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return m, nil
}

// Delete removes a raw material by ID and reports whether a record existed.
// Deleting a missing ID is not an error. BOM lines referencing the material
// are removed by the store's cascade rule.
func (s *RawMaterialService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete raw material: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return existed, nil
}

func materialFromCache(c *pkgcache.CachedMaterial) (*models.RawMaterial, error) {
	cost, err := decimal.NewFromString(c.Cost)
	if err != nil {
		return nil, fmt.Errorf("cache parse cost: %w", err)
	}
	stock, err := decimal.NewFromString(c.CurrentStock)
	if err != nil {
		return nil, fmt.Errorf("cache parse stock: %w", err)
	}
	return &models.RawMaterial{
		ID:           c.ID,
		Name:         models.MaterialName(c.Name),
		Description:  c.Description,
		Cost:         cost,
		CurrentStock: stock,
		CreatedAt:    c.CreatedAt,
	}, nil
}
