package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	appsvcs "github.com/ghuser/labelpress/services/product/application/services"
	"github.com/ghuser/labelpress/services/product/domain/repositories"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListProductsResponse is the paginated list shape for GET /products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"  example:"137"`
	Limit    int               `json:"limit"  example:"50"`
	Offset   int               `json:"offset" example:"0"`
} // @name ListProductsResponse

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists products for the org with limit/offset pagination.
//
//	@Summary		List products
//	@Description	Paginated product listing, newest first
//	@Tags			products
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (max 200)"
//	@Param			offset	query		int	false	"Rows to skip"
//	@Success		200		{object}	ListProductsResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFromRequest(r)
	if !ok {
		writeOrgRequired(w)
		return
	}

	opts := repositories.QueryOpts{Limit: defaultPageLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.Limit = min(n, maxPageLimit)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	products, total, err := h.svc.Product.List(r.Context(), orgID, opts)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	resp := ListProductsResponse{
		Products: make([]ProductResponse, 0, len(products)),
		Total:    total,
		Limit:    opts.Limit,
		Offset:   opts.Offset,
	}
	for _, p := range products {
		resp.Products = append(resp.Products, ProductResponse{
			ID:        p.ID,
			OrgID:     p.OrgID,
			Barcode:   p.Barcode,
			Name:      p.Name.String(),
			Price:     p.Price.Int64(),
			CreatedAt: p.CreatedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, resp)
}
