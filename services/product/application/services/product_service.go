package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	pkgcache "github.com/Douglascrc/AutoFlex/pkg/cache"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
	"github.com/Douglascrc/AutoFlex/services/product/domain/repositories"
	domainsvcs "github.com/Douglascrc/AutoFlex/services/product/domain/services"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
	materialrepos "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/repositories"
)

// ProductService orchestrates products, their bill of materials, and the
// producibility query. Event publishing is handled by the repository layer
// (outbox pattern). Single-record reads are served from Redis cache when
// available; the producibility query always reads stock straight from the
// store.
type ProductService struct {
	products  repositories.ProductRepository
	bom       repositories.BOMRepository
	materials materialrepos.RawMaterialRepository
	cache     *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repositories
// and cache.
func NewProductService(
	products repositories.ProductRepository,
	bom repositories.BOMRepository,
	materials materialrepos.RawMaterialRepository,
	productCache *pkgcache.ProductCache,
) *ProductService {
	return &ProductService{products: products, bom: bom, materials: materials, cache: productCache}
}

// Create validates and persists a product. The repository publishes
// ProductCreatedEvent.
func (s *ProductService) Create(ctx context.Context, name, description string, price decimal.Decimal) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	p, err := models.NewProduct(productName, description, price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// List returns every product.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			if p, err := productFromCache(cached); err == nil {
				return p, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to Postgres.
			_ = err
		}
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedProduct{
				ID:          p.ID,
				Name:        p.Name.String(),
				Description: p.Description,
				Price:       p.Price.String(),
				CreatedAt:   p.CreatedAt,
			})
		}()
	}

	return p, nil
}

// Replace overwrites every field of an existing product. Returns
// ErrProductNotFound when no record matches.
func (s *ProductService) Replace(ctx context.Context, id uuid.UUID, name, description string, price decimal.Decimal) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.Overwrite(productName, description, price); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProduct, err)
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("replace product: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return p, nil
}

// Delete removes a product by ID and reports whether a record existed.
// Deleting a missing ID is not an error. The product's BOM lines are removed
// by the store's cascade rule.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	existed, err := s.products.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return existed, nil
}

// AttachRawMaterial appends a BOM line declaring that producing one unit of
// the product consumes the given quantity of the raw material. The product's
// existence is checked before the raw material's, so when both are missing
// the product error wins. Duplicate pairs are appended as independent lines.
func (s *ProductService) AttachRawMaterial(ctx context.Context, productID, rawMaterialID uuid.UUID, quantity decimal.Decimal) error {
	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return productdomain.ErrProductNotFound
	}
	if _, err := s.materials.GetByID(ctx, rawMaterialID); err != nil {
		if errors.Is(err, materialdomain.ErrRawMaterialNotFound) {
			return materialdomain.ErrRawMaterialNotFound
		}
		return fmt.Errorf("check raw material: %w", err)
	}

	line, err := models.NewBOMLine(productID, rawMaterialID, quantity)
	if err != nil {
		return fmt.Errorf("%w: %w", productdomain.ErrInvalidBOMLine, err)
	}
	if err := s.bom.Add(ctx, line); err != nil {
		return fmt.Errorf("attach raw material: %w", err)
	}
	return nil
}

// FindProducible returns the products whose entire bill of materials is
// currently satisfiable from stock. Each line is checked against the full
// unreduced stock of its raw material; duplicate lines for the same material
// are each checked independently, not summed. Products without BOM lines are
// never producible. Stock is always read straight from the store, never from
// cache.
func (s *ProductService) FindProducible(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	materials, err := s.materials.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	stockByID := make(map[uuid.UUID]decimal.Decimal, len(materials))
	for _, m := range materials {
		stockByID[m.ID] = m.CurrentStock
	}

	var out []*models.Product
	for _, p := range products {
		lines, err := s.bom.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list bom lines: %w", err)
		}
		reqs := make([]domainsvcs.Requirement, 0, len(lines))
		for _, l := range lines {
			// A line whose material vanished mid-scan counts as unavailable.
			available, ok := stockByID[l.RawMaterialID]
			if !ok {
				available = decimal.NewFromInt(-1)
			}
			reqs = append(reqs, domainsvcs.Requirement{
				Required:  l.Quantity,
				Available: available,
			})
		}
		if domainsvcs.Producible(reqs) {
			out = append(out, p)
		}
	}
	return out, nil
}

func productFromCache(c *pkgcache.CachedProduct) (*models.Product, error) {
	price, err := decimal.NewFromString(c.Price)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	return &models.Product{
		ID:          c.ID,
		Name:        models.ProductName(c.Name),
		Description: c.Description,
		Price:       price,
		CreatedAt:   c.CreatedAt,
	}, nil
}
