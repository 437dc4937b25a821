package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/database"
	"github.com/Douglascrc/AutoFlex/pkg/events"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	domainevents "github.com/Douglascrc/AutoFlex/services/product/domain/events"
	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
)

// ProductRepository implements repositories.ProductRepository against
// PostgreSQL. Creates publish ProductCreatedEvents within the same
// transaction (outbox pattern).
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and event bus.
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Create persists a new product and publishes a ProductCreatedEvent within
// the same transaction.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const query = `
			INSERT INTO products (id, name, description, price, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, query,
			p.ID, p.Name.String(), p.Description, p.Price, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if r.bus != nil {
			if err := r.publishCreated(tx, p); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	const query = `
		SELECT id, name, description, price, created_at, updated_at
		FROM products WHERE id = $1`
	p, err := scanProduct(r.db.DB().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// FindAll retrieves every product.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	const query = `
		SELECT id, name, description, price, created_at, updated_at
		FROM products ORDER BY created_at`
	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return out, nil
}

// Update persists all fields of an existing record. Returns ErrProductNotFound
// when no row matches.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	const query = `
		UPDATE products
		SET name = $2, description = $3, price = $4, updated_at = $5
		WHERE id = $1`
	res, err := r.db.DB().ExecContext(ctx, query,
		p.ID, p.Name.String(), p.Description, p.Price, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update product: rows affected: %w", err)
	}
	if n == 0 {
		return productdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by ID and reports whether a record existed.
// Dependent BOM lines go with it via ON DELETE CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete product: rows affected: %w", err)
	}
	return n > 0, nil
}

// Exists reports whether a product with the given ID is persisted.
func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, p *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  p.ID,
		Name:       p.Name.String(),
		Price:      p.Price.String(),
		OccurredAt: p.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return pub.Publish(domainevents.TopicProductCreated, msg)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var name string
	if err := row.Scan(&p.ID, &name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Name = models.ProductName(name)
	return &p, nil
}
