package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	for name, err := range map[string]error{
		"ErrProductNotFound":      ErrProductNotFound,
		"ErrProductAlreadyExists": ErrProductAlreadyExists,
		"ErrInvalidProductName":   ErrInvalidProductName,
		"ErrInvalidPrice":         ErrInvalidPrice,
		"ErrInvalidBarcode":       ErrInvalidBarcode,
	} {
		if err == nil {
			t.Fatalf("%s must not be nil", name)
		}
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrProductNotFound.Error() != "product not found" {
		t.Fatalf("unexpected message: %q", ErrProductNotFound.Error())
	}
	if ErrProductAlreadyExists.Error() != "product already exists" {
		t.Fatalf("unexpected message: %q", ErrProductAlreadyExists.Error())
	}
	if ErrInvalidBarcode.Error() != "invalid barcode" {
		t.Fatalf("unexpected message: %q", ErrInvalidBarcode.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrProductNotFound)
	if !errors.Is(wrapped, ErrProductNotFound) {
		t.Fatal("errors.Is must match wrapped ErrProductNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidBarcode, errors.New("bad checksum"))
	if !errors.Is(wrapped2, ErrInvalidBarcode) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidBarcode")
	}
}
