package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/labelpress/pkg/database"
	"github.com/ghuser/labelpress/pkg/events"
	productdomain "github.com/ghuser/labelpress/services/product/domain"
	domainevents "github.com/ghuser/labelpress/services/product/domain/events"
	"github.com/ghuser/labelpress/services/product/domain/models"
	"github.com/ghuser/labelpress/services/product/domain/repositories"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given connection
// pool and event bus. The bus publishes ProductCreatedEvents after a successful save.
func NewProductRepository(db *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: db, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the same
// transaction (outbox pattern). Returns ErrProductAlreadyExists on unique
// constraint violations (duplicate barcode within the org).
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, org_id, barcode, name, price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			product.ID, product.OrgID, product.Barcode, product.Name.String(),
			product.Price.Int64(), product.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return productdomain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// publishCreated emits ProductCreatedEvent through a transaction-bound publisher
// so the event commits or rolls back with the row.
func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	evt := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  product.ID,
		OrgID:      product.OrgID,
		Barcode:    product.Barcode,
		Name:       product.Name.String(),
		Price:      product.Price.Int64(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	return pub.Publish(domainevents.TopicProductCreated, message.NewMessage(watermill.NewUUID(), payload))
}

// GetByID retrieves a Product by ID scoped to the given org. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Product, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, org_id, barcode, name, price, created_at
		FROM products WHERE id = $1 AND org_id = $2`, id, orgID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, productdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return product, nil
}

// GetByIDs retrieves products for a batch of IDs scoped to the org.
func (r *ProductRepository) GetByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]*models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, org_id, barcode, name, price, created_at
		FROM products WHERE org_id = $1 AND id = ANY($2)`, orgID, uuidStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("query products by ids: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// FindByOrgID retrieves a paginated list of products and total count for the given org.
func (r *ProductRepository) FindByOrgID(ctx context.Context, orgID uuid.UUID, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, org_id, barcode, name, price, created_at
		FROM products WHERE org_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, orgID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE org_id = $1`, orgID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return products, total, nil
}

// Delete removes a product by ID scoped to the given org.
func (r *ProductRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if _, err := r.db.DB().ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND org_id = $2`, id, orgID,
	); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// Exists reports whether a product with the given ID exists for the given org.
func (r *ProductRepository) Exists(ctx context.Context, orgID, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.DB().QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1 AND org_id = $2)`, id, orgID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

// scanTarget is satisfied by both *sql.Row and *sql.Rows.
type scanTarget interface {
	Scan(dest ...any) error
}

func scanProduct(row scanTarget) (*models.Product, error) {
	var (
		p     models.Product
		name  string
		price int64
	)
	if err := row.Scan(&p.ID, &p.OrgID, &p.Barcode, &name, &price, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Name = models.ProductName(name)
	p.Price = models.Price(price)
	return &p, nil
}

// uuidStrings converts IDs for the ANY($2) text-array binding.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
