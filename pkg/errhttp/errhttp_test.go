package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	labeldomain "github.com/ghuser/labelpress/services/label/domain"
	productdomain "github.com/ghuser/labelpress/services/product/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrProductNotFound", productdomain.ErrProductNotFound, http.StatusNotFound},
		{"ErrBatchNotFound", labeldomain.ErrBatchNotFound, http.StatusNotFound},
		{"ErrProductAlreadyExists", productdomain.ErrProductAlreadyExists, http.StatusConflict},
		{"ErrInvalidProductName", productdomain.ErrInvalidProductName, http.StatusUnprocessableEntity},
		{"ErrInvalidBarcode", productdomain.ErrInvalidBarcode, http.StatusUnprocessableEntity},
		{"ErrUnknownLabelSize", labeldomain.ErrUnknownLabelSize, http.StatusUnprocessableEntity},
		{"ErrEmptyBatch", labeldomain.ErrEmptyBatch, http.StatusUnprocessableEntity},
		{"ErrRegistryExhausted", labeldomain.ErrRegistryExhausted, http.StatusInternalServerError},
		{"wrapped ErrProductNotFound", fmt.Errorf("get product: %w", productdomain.ErrProductNotFound), http.StatusNotFound},
		{"wrapped ErrUnknownLabelSize", fmt.Errorf("%w: %q", labeldomain.ErrUnknownLabelSize, "60x40"), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, productdomain.ErrProductNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, productdomain.ErrProductNotFound)

	if ct := w.Header().Get("Content-Type"); ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
