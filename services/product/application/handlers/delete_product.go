package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	appsvcs "github.com/ghuser/labelpress/services/product/application/services"
)

// DeleteProductHandler handles DELETE /products/{id} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given services.
func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute deletes one product by ID.
//
//	@Summary		Delete product
//	@Description	Removes a product and evicts its cache entry
//	@Tags			products
//	@Param			id	path	string	true	"Product ID"
//	@Success		204
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.Product.Delete(r.Context(), orgID, id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
