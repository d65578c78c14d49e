package domain

import "errors"

// Sentinel errors for the label domain. Use errors.Is() to check these.
var (
	// ErrRegistryExhausted indicates the internal code generator could not
	// mint a unique code within its retry budget. This signals registry
	// exhaustion or a broken random source, not a recoverable condition.
	ErrRegistryExhausted = errors.New("unable to mint unique code")

	// ErrUnknownLabelSize indicates a label size outside the supported presets.
	ErrUnknownLabelSize = errors.New("unknown label size")

	// ErrBatchNotFound indicates the requested batch document is not cached
	// (never rendered, or expired).
	ErrBatchNotFound = errors.New("batch document not found")

	// ErrEmptyBatch indicates a batch request with no items.
	ErrEmptyBatch = errors.New("batch must contain at least one item")
)
