package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is the core aggregate for this bounded context. Barcode may be
// empty at creation; the application layer mints an internal code before
// persisting when no manufacturer barcode exists.
type Product struct {
	ID        uuid.UUID
	OrgID     uuid.UUID // tenant scope — always filter by this in queries
	Barcode   string
	Name      ProductName
	Price     Price
	CreatedAt time.Time
}

// NewProduct constructs a valid Product aggregate with generated ID and current timestamp.
func NewProduct(orgID uuid.UUID, barcode string, name ProductName, price Price) (*Product, error) {
	return &Product{
		ID:        uuid.New(),
		OrgID:     orgID,
		Barcode:   barcode,
		Name:      name,
		Price:     price,
		CreatedAt: time.Now().UTC(),
	}, nil
}
