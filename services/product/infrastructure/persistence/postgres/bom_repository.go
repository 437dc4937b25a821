package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Douglascrc/AutoFlex/pkg/database"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
)

// BOMRepository implements repositories.BOMRepository against PostgreSQL.
// Lines live in the product_raw_materials join table; foreign keys backstop
// the service-level existence checks.
type BOMRepository struct {
	db *database.Database
}

// NewBOMRepository returns a BOMRepository backed by the given connection pool.
func NewBOMRepository(db *database.Database) *BOMRepository {
	return &BOMRepository{db: db}
}

// Add inserts a BOM line. A foreign key violation means the referenced product
// or raw material vanished after the caller's existence check, so it maps back
// to the matching not-found sentinel.
func (r *BOMRepository) Add(ctx context.Context, line *models.BOMLine) error {
	const query = `
		INSERT INTO product_raw_materials (id, product_id, raw_material_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.DB().ExecContext(ctx, query,
		line.ID, line.ProductID, line.RawMaterialID, line.Quantity, line.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			if strings.Contains(pgErr.ConstraintName, "product_id") {
				return productdomain.ErrProductNotFound
			}
			return materialdomain.ErrRawMaterialNotFound
		}
		return fmt.Errorf("insert bom line: %w", err)
	}
	return nil
}

// ListByProduct retrieves all lines declared for the given product in
// insertion order. Duplicate raw material references stay separate lines.
func (r *BOMRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*models.BOMLine, error) {
	const query = `
		SELECT id, product_id, raw_material_id, quantity, created_at
		FROM product_raw_materials
		WHERE product_id = $1
		ORDER BY created_at, id`
	rows, err := r.db.DB().QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("query bom lines: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.BOMLine
	for rows.Next() {
		var l models.BOMLine
		if err := rows.Scan(&l.ID, &l.ProductID, &l.RawMaterialID, &l.Quantity, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom line: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bom lines: %w", err)
	}
	return out, nil
}
