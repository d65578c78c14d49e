package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/labelpress/pkg/cache"
	"github.com/ghuser/labelpress/services/label/domain/barcode"
	productdomain "github.com/ghuser/labelpress/services/product/domain"
	"github.com/ghuser/labelpress/services/product/domain/models"
	"github.com/ghuser/labelpress/services/product/domain/repositories"
	domainsvcs "github.com/ghuser/labelpress/services/product/domain/services"
)

// CodeMinter mints a unique internal code for products without a
// manufacturer barcode. Implemented by the label engine's generator.
type CodeMinter interface {
	Generate(prefix string) (string, error)
}

// ProductService orchestrates creation and retrieval of Products.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ProductService struct {
	repo   repositories.ProductRepository
	cache  *pkgcache.ProductCache
	minter CodeMinter
	prefix string
}

// NewProductService returns a ProductService wired with the given repository,
// cache, and internal-code minter. prefix is the internal-code prefix shared
// with the label engine's detection rules.
func NewProductService(repo repositories.ProductRepository, productCache *pkgcache.ProductCache, minter CodeMinter, prefix string) *ProductService {
	return &ProductService{repo: repo, cache: productCache, minter: minter, prefix: prefix}
}

// Create validates and persists a Product. The repository publishes
// ProductCreatedEvent through the outbox.
//
// Barcode handling: a supplied barcode must pass symbology validation; an
// empty barcode means the product has no manufacturer code, so a unique
// internal code is minted for it.
func (s *ProductService) Create(ctx context.Context, orgID uuid.UUID, code, name string, price int64) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProductName, err)
	}

	productPrice, err := models.NewPrice(price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidPrice, err)
	}

	if code == "" {
		code, err = s.minter.Generate(s.prefix)
		if err != nil {
			return nil, fmt.Errorf("mint internal code: %w", err)
		}
	} else if result := barcode.Validate(code, s.prefix); !result.Valid {
		return nil, fmt.Errorf("%w: %s", productdomain.ErrInvalidBarcode, result.Err)
	}

	product, err := models.NewProduct(orgID, code, productName, productPrice)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	if err := domainsvcs.ValidateProductForCreation(product); err != nil {
		return nil, fmt.Errorf("%w: %w", productdomain.ErrInvalidProductName, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a Product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, orgID, id); err == nil {
			return &models.Product{
				ID:        cached.ID,
				OrgID:     cached.OrgID,
				Barcode:   cached.Barcode,
				Name:      models.ProductName(cached.Name),
				Price:     models.Price(cached.Price),
				CreatedAt: cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error; fall through to Postgres.
			_ = err
		}
	}

	product, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedProduct{
				ID:        product.ID,
				OrgID:     product.OrgID,
				Barcode:   product.Barcode,
				Name:      product.Name.String(),
				Price:     product.Price.Int64(),
				CreatedAt: product.CreatedAt,
			})
		}()
	}

	return product, nil
}

// GetByIDs retrieves products for a batch of IDs. Missing IDs are absent from
// the result; callers decide whether that is an error.
func (s *ProductService) GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error) {
	products, err := s.repo.GetByIDs(ctx, orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

// List returns a paginated slice of products for the org plus total count.
func (s *ProductService) List(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	products, total, err := s.repo.FindByOrgID(ctx, orgID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// Delete removes a product by ID scoped to the given org.
// Returns ErrProductNotFound if no matching product exists.
func (s *ProductService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, orgID, id)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return productdomain.ErrProductNotFound
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), orgID, id)
	}
	return nil
}
