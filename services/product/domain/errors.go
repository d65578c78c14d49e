package domain

import "errors"

// Sentinel errors for the product domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists indicates a product with the same unique constraint already exists.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrInvalidProductName indicates the product name violates domain constraints.
	ErrInvalidProductName = errors.New("invalid product name")

	// ErrInvalidPrice indicates a negative or otherwise malformed price.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidBarcode indicates a supplied barcode failed engine validation.
	ErrInvalidBarcode = errors.New("invalid barcode")
)
