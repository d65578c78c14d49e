// Package services contains stateless domain services for the product bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/labelpress/services/product/domain/models"
)

// ValidateName enforces business rules for ProductName beyond the structural
// constraints enforced by the ProductName constructor (length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.ProductName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("product name must not have leading or trailing whitespace")
	}

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("product name must not be only whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("product name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("product name must not contain consecutive spaces")
	}

	return nil
}

// ValidateProductForCreation performs cross-field validation on a fully-constructed
// Product aggregate before it is persisted. It assumes the Product was built via
// models.NewProduct (so structural constraints are already satisfied) and
// adds business-level checks that span multiple fields.
func ValidateProductForCreation(product *models.Product) error {
	if product == nil {
		return fmt.Errorf("product cannot be nil")
	}

	if err := ValidateName(product.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if product.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}

	if product.Barcode == "" {
		return fmt.Errorf("barcode must be assigned before persisting")
	}

	if product.OrgID == uuid.Nil {
		return fmt.Errorf("org_id must be set")
	}

	if product.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	return nil
}
