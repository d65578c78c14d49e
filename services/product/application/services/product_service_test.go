package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	productdomain "github.com/ghuser/labelpress/services/product/domain"
	"github.com/ghuser/labelpress/services/product/domain/models"
	"github.com/ghuser/labelpress/services/product/domain/repositories"
)

// fakeRepo is an in-memory ProductRepository for service-level tests.
type fakeRepo struct {
	products map[uuid.UUID]*models.Product
	saveErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[uuid.UUID]*models.Product)}
}

func (f *fakeRepo) Save(_ context.Context, p *models.Product) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, orgID, id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok || p.OrgID != orgID {
		return nil, productdomain.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeRepo) GetByIDs(_ context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error) {
	var out []*models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.OrgID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByOrgID(_ context.Context, orgID uuid.UUID, _ repositories.QueryOpts) ([]*models.Product, int, error) {
	var out []*models.Product
	for _, p := range f.products {
		if p.OrgID == orgID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) Delete(_ context.Context, orgID, id uuid.UUID) error {
	if p, ok := f.products[id]; ok && p.OrgID == orgID {
		delete(f.products, id)
		return nil
	}
	return productdomain.ErrProductNotFound
}

func (f *fakeRepo) Exists(_ context.Context, orgID, id uuid.UUID) (bool, error) {
	p, ok := f.products[id]
	return ok && p.OrgID == orgID, nil
}

// fakeMinter returns a fixed internal code.
type fakeMinter struct {
	code string
	err  error
}

func (f *fakeMinter) Generate(prefix string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return prefix + f.code, nil
}

func newService(repo repositories.ProductRepository, minter CodeMinter) *ProductService {
	return NewProductService(repo, nil, minter, "SP")
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("valid EAN-13 barcode accepted", func(t *testing.T) {
		svc := newService(newFakeRepo(), &fakeMinter{code: "1234567801"})

		p, err := svc.Create(ctx, orgID, "4006381333931", "Stabilo Pen", 25000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Barcode != "4006381333931" {
			t.Errorf("expected supplied barcode to be kept, got %q", p.Barcode)
		}
	})

	t.Run("empty barcode mints internal code", func(t *testing.T) {
		svc := newService(newFakeRepo(), &fakeMinter{code: "1234567801"})

		p, err := svc.Create(ctx, orgID, "", "House Brand Tea", 42000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(p.Barcode, "SP") {
			t.Errorf("expected minted internal code with SP prefix, got %q", p.Barcode)
		}
	})

	t.Run("unrecognizable barcode rejected", func(t *testing.T) {
		svc := newService(newFakeRepo(), &fakeMinter{code: "1234567801"})

		_, err := svc.Create(ctx, orgID, "café-latte", "Bad Code", 1000)
		if !errors.Is(err, productdomain.ErrInvalidBarcode) {
			t.Fatalf("expected ErrInvalidBarcode, got %v", err)
		}
	})

	t.Run("negative price rejected", func(t *testing.T) {
		svc := newService(newFakeRepo(), &fakeMinter{code: "1234567801"})

		_, err := svc.Create(ctx, orgID, "", "Discount Item", -1)
		if !errors.Is(err, productdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := newService(newFakeRepo(), &fakeMinter{code: "1234567801"})

		_, err := svc.Create(ctx, orgID, "", "", 1000)
		if !errors.Is(err, productdomain.ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("minter failure surfaces", func(t *testing.T) {
		mintErr := errors.New("registry full")
		svc := newService(newFakeRepo(), &fakeMinter{err: mintErr})

		_, err := svc.Create(ctx, orgID, "", "No Code Left", 1000)
		if !errors.Is(err, mintErr) {
			t.Fatalf("expected minter error, got %v", err)
		}
	})
}

func TestProductService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	orgID := uuid.New()
	repo := newFakeRepo()
	svc := newService(repo, &fakeMinter{code: "1234567801"})

	created, err := svc.Create(ctx, orgID, "4006381333931", "Stabilo Pen", 25000)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("get returns the created product", func(t *testing.T) {
		got, err := svc.GetByID(ctx, orgID, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ID || got.Name.String() != "Stabilo Pen" {
			t.Errorf("got wrong product: %+v", got)
		}
	})

	t.Run("get is org scoped", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New(), created.ID)
		if !errors.Is(err, productdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound for foreign org, got %v", err)
		}
	})

	t.Run("delete removes the product", func(t *testing.T) {
		if err := svc.Delete(ctx, orgID, created.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := svc.Delete(ctx, orgID, created.ID); !errors.Is(err, productdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
		}
	})
}
