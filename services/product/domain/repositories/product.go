package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/labelpress/services/product/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Product, error)

	// GetByIDs retrieves products for a batch of IDs scoped to the org.
	// Missing IDs are simply absent from the result; callers decide whether
	// that is an error.
	GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error)

	// FindByOrgID retrieves a paginated list of products for the given org.
	// Returns the products slice and the total count (ignoring pagination).
	FindByOrgID(ctx context.Context, orgID uuid.UUID, opts QueryOpts) ([]*models.Product, int, error)

	// Delete removes a product by ID scoped to the given org.
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	// Exists reports whether a product with the given ID exists for the given org.
	Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error)
}
