package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	pkgvalidator "github.com/ghuser/labelpress/pkg/validator"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
	"github.com/ghuser/labelpress/services/label/domain/render"
)

// BatchItemRequest is one line of a batch render request.
type BatchItemRequest struct {
	ProductID   string `json:"product_id"   validate:"omitempty,max=64" example:"123e4567-e89b-12d3-a456-426614174000"`
	Barcode     string `json:"barcode"      validate:"required,max=128" example:"8935049501234"`
	ProductName string `json:"product_name" validate:"required,max=255" example:"Jasmine Rice 5kg"`
	Price       int64  `json:"price"        validate:"min=0" example:"125000"`
	Quantity    int    `json:"quantity"     validate:"required,min=1,max=1000" example:"4"`
} // @name BatchItemRequest

// RenderBatchRequest is the request body for POST /labels/batch.
type RenderBatchRequest struct {
	Items []BatchItemRequest `json:"items" validate:"required,min=1,dive"`
	Size  string             `json:"size"  validate:"required" example:"38x25"`
} // @name RenderBatchRequest

// BatchHandler handles batch assembly and download.
type BatchHandler struct {
	svc *appsvcs.Services
}

// NewBatchHandler returns a BatchHandler backed by the given services.
func NewBatchHandler(svc *appsvcs.Services) *BatchHandler {
	return &BatchHandler{svc: svc}
}

// Render assembles a printable HTML document of repeated labels.
//
//	@Summary		Render label batch
//	@Description	Expands each item into quantity repeated labels and returns one print-ready HTML document. The batch ID for later download is in the X-Batch-ID header.
//	@Tags			labels
//	@Accept			json
//	@Produce		text/html
//	@Param			request	body		RenderBatchRequest	true	"Batch content"
//	@Success		200		{string}	string	"HTML document"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/labels/batch [post]
func (h *BatchHandler) Render(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RenderBatchRequest](w, r)
	if !ok {
		return
	}

	items := make([]render.BatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, render.BatchItem{
			ProductID:   item.ProductID,
			Barcode:     item.Barcode,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	result, err := h.svc.Label.RenderBatch(r.Context(), items, render.LabelSize(req.Size))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	writeBatchDocument(w, result)
}

// Download returns a previously rendered batch document.
//
//	@Summary		Download batch
//	@Description	Returns the cached HTML document for a batch ID; 404 once the cache entry has expired
//	@Tags			labels
//	@Produce		text/html
//	@Param			id	path		string	true	"Batch ID"
//	@Success		200	{string}	string	"HTML document"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/labels/batch/{id} [get]
func (h *BatchHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid batch id")
		return
	}

	doc, err := h.svc.Label.GetBatchDocument(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}

// writeBatchDocument writes the assembled document with batch metadata headers.
func writeBatchDocument(w http.ResponseWriter, result *appsvcs.BatchResult) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Batch-ID", result.ID.String())
	w.Header().Set("X-Label-Count", strconv.Itoa(result.LabelCount))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result.Document))
}
