package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/repositories"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeMaterialRepo is an in-memory RawMaterialRepository. Atomically passes
// the repo itself to fn; tests run single-goroutine so no locking is needed.
type fakeMaterialRepo struct {
	materials map[uuid.UUID]*models.RawMaterial
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{materials: make(map[uuid.UUID]*models.RawMaterial)}
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *models.RawMaterial) error {
	cp := *m
	f.materials[m.ID] = &cp
	return nil
}

func (f *fakeMaterialRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RawMaterial, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, materialdomain.ErrRawMaterialNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMaterialRepo) GetByName(_ context.Context, name string) (*models.RawMaterial, error) {
	for _, m := range f.materials {
		if m.Name.String() == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, materialdomain.ErrRawMaterialNotFound
}

func (f *fakeMaterialRepo) FindAll(_ context.Context) ([]*models.RawMaterial, error) {
	out := make([]*models.RawMaterial, 0, len(f.materials))
	for _, m := range f.materials {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeMaterialRepo) Update(_ context.Context, m *models.RawMaterial) error {
	if _, ok := f.materials[m.ID]; !ok {
		return materialdomain.ErrRawMaterialNotFound
	}
	cp := *m
	f.materials[m.ID] = &cp
	return nil
}

func (f *fakeMaterialRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.materials[id]; !ok {
		return false, nil
	}
	delete(f.materials, id)
	return true, nil
}

func (f *fakeMaterialRepo) Atomically(_ context.Context, fn func(repositories.RawMaterialRepository) error) error {
	return fn(f)
}

func TestRawMaterialService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new record for an unknown name", func(t *testing.T) {
		repo := newFakeMaterialRepo()
		svc := NewRawMaterialService(repo, nil)

		m, created, err := svc.Upsert(ctx, "Wood", "planks", dec("12.5"), dec("100"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Fatal("expected created=true for a new name")
		}
		if !m.CurrentStock.Equal(dec("100")) {
			t.Fatalf("expected stock 100, got %s", m.CurrentStock)
		}
	})

	t.Run("accumulates stock for an existing name", func(t *testing.T) {
		repo := newFakeMaterialRepo()
		svc := NewRawMaterialService(repo, nil)

		if _, _, err := svc.Upsert(ctx, "Wood", "planks", dec("12.5"), dec("100")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m, created, err := svc.Upsert(ctx, "Wood", "fresh planks", dec("13"), dec("60"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created {
			t.Fatal("expected created=false for an existing name")
		}
		if !m.CurrentStock.Equal(dec("160")) {
			t.Fatalf("expected accumulated stock 160, got %s", m.CurrentStock)
		}
		if m.Description != "fresh planks" || !m.Cost.Equal(dec("13")) {
			t.Fatalf("expected cost and description overwritten, got %+v", m)
		}
	})

	t.Run("never creates a second record for the same name", func(t *testing.T) {
		repo := newFakeMaterialRepo()
		svc := NewRawMaterialService(repo, nil)

		for i := 0; i < 5; i++ {
			if _, _, err := svc.Upsert(ctx, "Screw", "", dec("0.1"), dec("10")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		all, _ := repo.FindAll(ctx)
		if len(all) != 1 {
			t.Fatalf("expected exactly one record, got %d", len(all))
		}
		if !all[0].CurrentStock.Equal(dec("50")) {
			t.Fatalf("expected stock 50 after five upserts, got %s", all[0].CurrentStock)
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc := NewRawMaterialService(newFakeMaterialRepo(), nil)
		_, _, err := svc.Upsert(ctx, "", "", dec("1"), dec("1"))
		if !errors.Is(err, materialdomain.ErrInvalidRawMaterial) {
			t.Fatalf("expected ErrInvalidRawMaterial, got %v", err)
		}
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		svc := NewRawMaterialService(newFakeMaterialRepo(), nil)
		_, _, err := svc.Upsert(ctx, "Wood", "", dec("1"), dec("-1"))
		if !errors.Is(err, materialdomain.ErrInvalidRawMaterial) {
			t.Fatalf("expected ErrInvalidRawMaterial, got %v", err)
		}
	})
}

func TestRawMaterialService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites stock instead of accumulating", func(t *testing.T) {
		repo := newFakeMaterialRepo()
		svc := NewRawMaterialService(repo, nil)

		created, _, err := svc.Upsert(ctx, "Wood", "planks", dec("12.5"), dec("100"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m, err := svc.Replace(ctx, created.ID, "Plywood", "sheets", dec("8"), dec("30"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.CurrentStock.Equal(dec("30")) {
			t.Fatalf("expected stock replaced to 30, got %s", m.CurrentStock)
		}
		if m.Name.String() != "Plywood" {
			t.Fatalf("expected name Plywood, got %s", m.Name)
		}
	})

	t.Run("returns not-found sentinel for an unknown id", func(t *testing.T) {
		svc := NewRawMaterialService(newFakeMaterialRepo(), nil)
		_, err := svc.Replace(ctx, uuid.New(), "Wood", "", dec("1"), dec("1"))
		if !errors.Is(err, materialdomain.ErrRawMaterialNotFound) {
			t.Fatalf("expected ErrRawMaterialNotFound, got %v", err)
		}
	})
}

func TestRawMaterialService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMaterialRepo()
	svc := NewRawMaterialService(repo, nil)

	m, _, err := svc.Upsert(ctx, "Wood", "", dec("1"), dec("1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("reports true for an existing record", func(t *testing.T) {
		existed, err := svc.Delete(ctx, m.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !existed {
			t.Fatal("expected existed=true")
		}
	})

	t.Run("repeat delete reports false without error", func(t *testing.T) {
		existed, err := svc.Delete(ctx, m.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if existed {
			t.Fatal("expected existed=false on second delete")
		}
	})

	t.Run("unknown id reports false without error", func(t *testing.T) {
		existed, err := svc.Delete(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if existed {
			t.Fatal("expected existed=false for unknown id")
		}
	})
}

func TestRawMaterialService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMaterialRepo()
	svc := NewRawMaterialService(repo, nil)

	m, _, err := svc.Upsert(ctx, "Wood", "planks", dec("12.5"), dec("100"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("returns the stored record", func(t *testing.T) {
		got, err := svc.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != m.ID || !got.CurrentStock.Equal(dec("100")) {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("returns not-found sentinel for an unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		if !errors.Is(err, materialdomain.ErrRawMaterialNotFound) {
			t.Fatalf("expected ErrRawMaterialNotFound, got %v", err)
		}
	})
}

func TestRawMaterialService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMaterialRepo()
	svc := NewRawMaterialService(repo, nil)

	t.Run("empty store lists zero materials", func(t *testing.T) {
		all, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected no materials, got %d", len(all))
		}
	})

	t.Run("lists every material", func(t *testing.T) {
		for _, name := range []string{"Wood", "Screw", "Glue"} {
			if _, _, err := svc.Upsert(ctx, name, "", dec("1"), dec("1")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		all, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 materials, got %d", len(all))
		}
	})
}
