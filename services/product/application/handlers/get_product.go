package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	appsvcs "github.com/ghuser/labelpress/services/product/application/services"
)

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute fetches one product by ID.
//
//	@Summary		Get product
//	@Description	Retrieves a product by ID, served from cache when warm
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	ProductResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFromRequest(r)
	if !ok {
		writeOrgRequired(w)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.svc.Product.GetByID(r.Context(), orgID, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ProductResponse{
		ID:        product.ID,
		OrgID:     product.OrgID,
		Barcode:   product.Barcode,
		Name:      product.Name.String(),
		Price:     product.Price.Int64(),
		CreatedAt: product.CreatedAt,
	})
}
