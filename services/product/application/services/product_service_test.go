package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	"github.com/Douglascrc/AutoFlex/services/product/domain/models"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
	materialmodels "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/models"
	materialrepos "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain/repositories"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// fakeProductRepo is an in-memory ProductRepository.
type fakeProductRepo struct {
	products map[uuid.UUID]*models.Product
	order    []uuid.UUID
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, productdomain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(f.order))
	for _, id := range f.order {
		if p, ok := f.products[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return productdomain.ErrProductNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.products[id]; !ok {
		return false, nil
	}
	delete(f.products, id)
	return true, nil
}

func (f *fakeProductRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

// fakeBOMRepo is an in-memory BOMRepository preserving insertion order.
type fakeBOMRepo struct {
	lines []*models.BOMLine
}

func (f *fakeBOMRepo) Add(_ context.Context, line *models.BOMLine) error {
	cp := *line
	f.lines = append(f.lines, &cp)
	return nil
}

func (f *fakeBOMRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]*models.BOMLine, error) {
	var out []*models.BOMLine
	for _, l := range f.lines {
		if l.ProductID == productID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeStockRepo is a read-only in-memory RawMaterialRepository for attach
// checks and the producibility query.
type fakeStockRepo struct {
	materials map[uuid.UUID]*materialmodels.RawMaterial
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{materials: make(map[uuid.UUID]*materialmodels.RawMaterial)}
}

func (f *fakeStockRepo) add(name, stock string) uuid.UUID {
	m, err := materialmodels.NewRawMaterial(materialmodels.MaterialName(name), "", dec("1"), dec(stock))
	if err != nil {
		panic(err)
	}
	f.materials[m.ID] = m
	return m.ID
}

func (f *fakeStockRepo) Create(_ context.Context, m *materialmodels.RawMaterial) error {
	f.materials[m.ID] = m
	return nil
}

func (f *fakeStockRepo) GetByID(_ context.Context, id uuid.UUID) (*materialmodels.RawMaterial, error) {
	m, ok := f.materials[id]
	if !ok {
		return nil, materialdomain.ErrRawMaterialNotFound
	}
	return m, nil
}

func (f *fakeStockRepo) GetByName(_ context.Context, name string) (*materialmodels.RawMaterial, error) {
	for _, m := range f.materials {
		if m.Name.String() == name {
			return m, nil
		}
	}
	return nil, materialdomain.ErrRawMaterialNotFound
}

func (f *fakeStockRepo) FindAll(_ context.Context) ([]*materialmodels.RawMaterial, error) {
	out := make([]*materialmodels.RawMaterial, 0, len(f.materials))
	for _, m := range f.materials {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStockRepo) Update(_ context.Context, m *materialmodels.RawMaterial) error {
	f.materials[m.ID] = m
	return nil
}

func (f *fakeStockRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.materials[id]; !ok {
		return false, nil
	}
	delete(f.materials, id)
	return true, nil
}

func (f *fakeStockRepo) Atomically(_ context.Context, fn func(materialrepos.RawMaterialRepository) error) error {
	return fn(f)
}

func newTestProductService() (*ProductService, *fakeProductRepo, *fakeBOMRepo, *fakeStockRepo) {
	products := newFakeProductRepo()
	bom := &fakeBOMRepo{}
	stock := newFakeStockRepo()
	return NewProductService(products, bom, stock, nil), products, bom, stock
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid product", func(t *testing.T) {
		svc, products, _, _ := newTestProductService()
		p, err := svc.Create(ctx, "Chair", "oak chair", dec("249.9"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := products.products[p.ID]; !ok {
			t.Fatal("expected product to be stored")
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		_, err := svc.Create(ctx, "", "", dec("1"))
		if !errors.Is(err, productdomain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		_, err := svc.Create(ctx, "Chair", "", dec("-1"))
		if !errors.Is(err, productdomain.ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})
}

func TestProductService_Replace(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites every field", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		p, _ := svc.Create(ctx, "Chair", "old", dec("100"))

		got, err := svc.Replace(ctx, p.ID, "Stool", "new", dec("50"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name.String() != "Stool" || !got.Price.Equal(dec("50")) {
			t.Fatalf("unexpected product after replace: %+v", got)
		}
	})

	t.Run("returns not-found sentinel for an unknown id", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		_, err := svc.Replace(ctx, uuid.New(), "Chair", "", dec("1"))
		if !errors.Is(err, productdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestProductService()
	p, _ := svc.Create(ctx, "Chair", "", dec("1"))

	existed, err := svc.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !existed {
		t.Fatal("expected existed=true")
	}

	existed, err = svc.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existed {
		t.Fatal("expected existed=false on second delete")
	}
}

func TestProductService_AttachRawMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("appends a line when both sides exist", func(t *testing.T) {
		svc, _, bom, stock := newTestProductService()
		p, _ := svc.Create(ctx, "Chair", "", dec("1"))
		materialID := stock.add("Wood", "100")

		if err := svc.AttachRawMaterial(ctx, p.ID, materialID, dec("4")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines, _ := bom.ListByProduct(ctx, p.ID)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
	})

	t.Run("duplicate pairs append independent lines", func(t *testing.T) {
		svc, _, bom, stock := newTestProductService()
		p, _ := svc.Create(ctx, "Chair", "", dec("1"))
		materialID := stock.add("Wood", "100")

		if err := svc.AttachRawMaterial(ctx, p.ID, materialID, dec("50")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.AttachRawMaterial(ctx, p.ID, materialID, dec("60")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		lines, _ := bom.ListByProduct(ctx, p.ID)
		if len(lines) != 2 {
			t.Fatalf("expected 2 independent lines, got %d", len(lines))
		}
	})

	t.Run("missing product wins over missing material", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		err := svc.AttachRawMaterial(ctx, uuid.New(), uuid.New(), dec("1"))
		if !errors.Is(err, productdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("missing material is reported when the product exists", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		p, _ := svc.Create(ctx, "Chair", "", dec("1"))
		err := svc.AttachRawMaterial(ctx, p.ID, uuid.New(), dec("1"))
		if !errors.Is(err, materialdomain.ErrRawMaterialNotFound) {
			t.Fatalf("expected ErrRawMaterialNotFound, got %v", err)
		}
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		svc, _, _, stock := newTestProductService()
		p, _ := svc.Create(ctx, "Chair", "", dec("1"))
		materialID := stock.add("Wood", "100")

		err := svc.AttachRawMaterial(ctx, p.ID, materialID, decimal.Zero)
		if !errors.Is(err, productdomain.ErrInvalidBOMLine) {
			t.Fatalf("expected ErrInvalidBOMLine, got %v", err)
		}
	})
}

func TestProductService_FindProducible(t *testing.T) {
	ctx := context.Background()

	t.Run("product with satisfied lines is producible", func(t *testing.T) {
		svc, _, _, stock := newTestProductService()
		wood := stock.add("Wood", "100")
		chair, _ := svc.Create(ctx, "Chair", "", dec("1"))
		if err := svc.AttachRawMaterial(ctx, chair.ID, wood, dec("50")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := svc.FindProducible(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != chair.ID {
			t.Fatalf("expected only the chair, got %v", got)
		}
	})

	t.Run("duplicate lines each check the full unreduced stock", func(t *testing.T) {
		svc, _, _, stock := newTestProductService()
		wood := stock.add("Wood", "100")
		chair, _ := svc.Create(ctx, "Chair", "", dec("1"))
		// 50 + 60 exceeds the stock of 100, but each line alone fits.
		if err := svc.AttachRawMaterial(ctx, chair.ID, wood, dec("50")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.AttachRawMaterial(ctx, chair.ID, wood, dec("60")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := svc.FindProducible(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected the chair to be producible, got %v", got)
		}
	})

	t.Run("one short line excludes the product", func(t *testing.T) {
		svc, _, _, stock := newTestProductService()
		wood := stock.add("Wood", "100")
		screw := stock.add("Screw", "3")
		desk, _ := svc.Create(ctx, "Desk", "", dec("1"))
		if err := svc.AttachRawMaterial(ctx, desk.ID, wood, dec("20")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.AttachRawMaterial(ctx, desk.ID, screw, dec("8")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := svc.FindProducible(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no producible products, got %v", got)
		}
	})

	t.Run("product without BOM lines is excluded", func(t *testing.T) {
		svc, _, _, stock := newTestProductService()
		wood := stock.add("Wood", "100")
		chair, _ := svc.Create(ctx, "Chair", "", dec("1"))
		if _, err := svc.Create(ctx, "Table", "no recipe yet", dec("1")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.AttachRawMaterial(ctx, chair.ID, wood, dec("10")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := svc.FindProducible(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != chair.ID {
			t.Fatalf("expected only the chair, got %v", got)
		}
	})

	t.Run("empty store yields no products", func(t *testing.T) {
		svc, _, _, _ := newTestProductService()
		got, err := svc.FindProducible(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", got)
		}
	})
}

func TestProductService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestProductService()
	p, _ := svc.Create(ctx, "Chair", "", dec("1"))

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("expected %v, got %v", p.ID, got.ID)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, productdomain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
