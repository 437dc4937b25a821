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
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Douglascrc/AutoFlex/pkg/database"
	"github.com/Douglascrc/AutoFlex/pkg/events"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
	domainevents "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/events"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/repositories"
)

// RawMaterialRepository implements repositories.RawMaterialRepository against
// PostgreSQL. Writes publish RawMaterialUpsertedEvents within the same
// transaction (outbox pattern).
type RawMaterialRepository struct {
	db  *database.Database
	bus *events.EventBus
	tx  *sql.Tx // non-nil when bound to a transaction via Atomically
}

// NewRawMaterialRepository returns a RawMaterialRepository backed by the given
// connection pool and event bus.
func NewRawMaterialRepository(db *database.Database, bus *events.EventBus) *RawMaterialRepository {
	return &RawMaterialRepository{db: db, bus: bus}
}

// querier is the subset of *sql.DB / *sql.Tx the repository needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *RawMaterialRepository) q() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db.DB()
}

// Atomically runs fn against a transaction-bound copy of the repository.
// Nested calls reuse the already-open transaction.
func (r *RawMaterialRepository) Atomically(ctx context.Context, fn func(repositories.RawMaterialRepository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(&RawMaterialRepository{db: r.db, bus: r.bus, tx: tx})
	})
}

// Create persists a new raw material and publishes a RawMaterialUpsertedEvent
// within the same transaction. Returns ErrRawMaterialNameTaken on unique
// constraint violations.
func (r *RawMaterialRepository) Create(ctx context.Context, m *models.RawMaterial) error {
	if r.tx != nil {
		return r.createTx(ctx, r.tx, m)
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return r.createTx(ctx, tx, m)
	})
}

func (r *RawMaterialRepository) createTx(ctx context.Context, tx *sql.Tx, m *models.RawMaterial) error {
	const query = `
		INSERT INTO raw_materials (id, name, description, cost, current_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, query,
		m.ID, m.Name.String(), m.Description, m.Cost, m.CurrentStock, m.CreatedAt, m.UpdatedAt,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return materialdomain.ErrRawMaterialNameTaken
		}
		return fmt.Errorf("insert raw material: %w", err)
	}

	if r.bus != nil {
		if err := r.publishUpserted(tx, m); err != nil {
			return fmt.Errorf("publish raw material upserted: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a raw material by ID. Returns ErrRawMaterialNotFound if not found.
func (r *RawMaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RawMaterial, error) {
	const query = `
		SELECT id, name, description, cost, current_stock, created_at, updated_at
		FROM raw_materials WHERE id = $1`
	return r.scanOne(r.q().QueryRowContext(ctx, query, id))
}

// GetByName resolves the unique business key. When bound to a transaction the
// row is locked (FOR UPDATE) so concurrent restocks of the same material
// serialize instead of losing an increment.
func (r *RawMaterialRepository) GetByName(ctx context.Context, name string) (*models.RawMaterial, error) {
	query := `
		SELECT id, name, description, cost, current_stock, created_at, updated_at
		FROM raw_materials WHERE name = $1`
	if r.tx != nil {
		query += " FOR UPDATE"
	}
	return r.scanOne(r.q().QueryRowContext(ctx, query, name))
}

// FindAll retrieves every raw material.
func (r *RawMaterialRepository) FindAll(ctx context.Context) ([]*models.RawMaterial, error) {
	const query = `
		SELECT id, name, description, cost, current_stock, created_at, updated_at
		FROM raw_materials ORDER BY created_at`
	rows, err := r.q().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query raw materials: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*models.RawMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raw materials: %w", err)
	}
	return out, nil
}

// Update persists all fields of an existing record and publishes a
// RawMaterialUpsertedEvent within the same transaction.
func (r *RawMaterialRepository) Update(ctx context.Context, m *models.RawMaterial) error {
	if r.tx != nil {
		return r.updateTx(ctx, r.tx, m)
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		return r.updateTx(ctx, tx, m)
	})
}

func (r *RawMaterialRepository) updateTx(ctx context.Context, tx *sql.Tx, m *models.RawMaterial) error {
	const query = `
		UPDATE raw_materials
		SET name = $2, description = $3, cost = $4, current_stock = $5, updated_at = $6
		WHERE id = $1`
	res, err := tx.ExecContext(ctx, query,
		m.ID, m.Name.String(), m.Description, m.Cost, m.CurrentStock, m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return materialdomain.ErrRawMaterialNameTaken
		}
		return fmt.Errorf("update raw material: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update raw material: rows affected: %w", err)
	}
	if n == 0 {
		return materialdomain.ErrRawMaterialNotFound
	}

	if r.bus != nil {
		if err := r.publishUpserted(tx, m); err != nil {
			return fmt.Errorf("publish raw material upserted: %w", err)
		}
	}
	return nil
}

// Delete removes a raw material by ID and reports whether a record existed.
// Dependent BOM lines go with it via ON DELETE CASCADE.
func (r *RawMaterialRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.q().ExecContext(ctx, `DELETE FROM raw_materials WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete raw material: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete raw material: rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *RawMaterialRepository) publishUpserted(tx *sql.Tx, m *models.RawMaterial) error {
	event := domainevents.RawMaterialUpsertedEvent{
		EventID:       uuid.New(),
		Version:       1,
		RawMaterialID: m.ID,
		Name:          m.Name.String(),
		CurrentStock:  m.CurrentStock.String(),
		OccurredAt:    m.UpdatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicRawMaterialUpserted, msg)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *RawMaterialRepository) scanOne(row *sql.Row) (*models.RawMaterial, error) {
	m, err := scanMaterial(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, materialdomain.ErrRawMaterialNotFound
		}
		return nil, err
	}
	return m, nil
}

func scanMaterial(row rowScanner) (*models.RawMaterial, error) {
	var m models.RawMaterial
	var name string
	if err := row.Scan(&m.ID, &name, &m.Description, &m.Cost, &m.CurrentStock, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan raw material: %w", err)
	}
	m.Name = models.MaterialName(name)
	return &m, nil
}
