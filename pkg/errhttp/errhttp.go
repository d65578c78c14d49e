// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/labelpress/pkg/httpx"
	labeldomain "github.com/ghuser/labelpress/services/label/domain"
	productdomain "github.com/ghuser/labelpress/services/product/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, productdomain.ErrProductNotFound),
		errors.Is(err, labeldomain.ErrBatchNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, productdomain.ErrProductAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, productdomain.ErrInvalidProductName),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, productdomain.ErrInvalidBarcode),
		errors.Is(err, labeldomain.ErrUnknownLabelSize),
		errors.Is(err, labeldomain.ErrEmptyBatch):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, labeldomain.ErrRegistryExhausted):
		return http.StatusInternalServerError // 500 — fatal generation failure
	default:
		return http.StatusInternalServerError // 500
	}
}
