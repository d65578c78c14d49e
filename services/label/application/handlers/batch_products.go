package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/auth"
	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	pkgvalidator "github.com/ghuser/labelpress/pkg/validator"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
	"github.com/ghuser/labelpress/services/label/domain/render"
)

// ProductBatchItemRequest selects a catalog product and a label count.
type ProductBatchItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Quantity  int       `json:"quantity"   validate:"required,min=1,max=1000" example:"4"`
} // @name ProductBatchItemRequest

// ProductBatchRequest is the request body for POST /labels/batch/products.
type ProductBatchRequest struct {
	Items []ProductBatchItemRequest `json:"items" validate:"required,min=1,dive"`
	Size  string                    `json:"size"  validate:"required" example:"38x25"`
} // @name ProductBatchRequest

// ProductBatchHandler handles POST /labels/batch/products requests.
type ProductBatchHandler struct {
	svc *appsvcs.Services
}

// NewProductBatchHandler returns a ProductBatchHandler backed by the given services.
func NewProductBatchHandler(svc *appsvcs.Services) *ProductBatchHandler {
	return &ProductBatchHandler{svc: svc}
}

// Execute assembles a batch document from catalog products.
//
//	@Summary		Render batch from products
//	@Description	Loads the referenced products and renders quantity labels for each, in request order
//	@Tags			labels
//	@Accept			json
//	@Produce		text/html
//	@Param			request	body		ProductBatchRequest	true	"Product selection"
//	@Success		200		{string}	string	"HTML document"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/labels/batch/products [post]
func (h *ProductBatchHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFromRequest(r)
	if !ok {
		httpx.JSONError(w, http.StatusUnauthorized, "organization scope required")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProductBatchRequest](w, r)
	if !ok {
		return
	}

	items := make([]appsvcs.ProductBatchItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, appsvcs.ProductBatchItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.svc.Label.RenderBatchForProducts(r.Context(), orgID, items, render.LabelSize(req.Size))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	writeBatchDocument(w, result)
}

// orgIDFromRequest resolves the tenant scope: the session context when
// RequireAuth is mounted, the X-Org-ID header otherwise.
func orgIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	if orgID, err := auth.OrgIDFromCtx(r.Context()); err == nil {
		return orgID, true
	}
	if raw := r.Header.Get("X-Org-ID"); raw != "" {
		if orgID, err := uuid.Parse(raw); err == nil {
			return orgID, true
		}
	}
	return uuid.Nil, false
}
