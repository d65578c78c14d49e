package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	pkgvalidator "github.com/ghuser/labelpress/pkg/validator"
	appsvcs "github.com/ghuser/labelpress/services/product/application/services"
)

// CreateProductRequest is the request body for POST /products.
// Barcode is optional: when omitted, a unique internal code is minted.
type CreateProductRequest struct {
	Barcode string `json:"barcode" validate:"omitempty,max=64" example:"8935049501234"`
	Name    string `json:"name"    validate:"required,min=1,max=255" example:"Jasmine Rice 5kg"`
	Price   int64  `json:"price"   validate:"min=0" example:"125000"`
} // @name CreateProductRequest

// ProductResponse is the JSON shape for a single product.
type ProductResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	OrgID     uuid.UUID `json:"org_id"     example:"550e8400-e29b-41d4-a716-446655440000"`
	Barcode   string    `json:"barcode"    example:"8935049501234"`
	Name      string    `json:"name"       example:"Jasmine Rice 5kg"`
	Price     int64     `json:"price"      example:"125000"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a new product.
//
//	@Summary		Create product
//	@Description	Creates a product scoped to an organization. A supplied barcode must pass symbology validation; when omitted, an internal code is minted.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product creation request"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orgID, ok := orgIDFromRequest(r)
	if !ok {
		writeOrgRequired(w)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateProductRequest](w, r)
	if !ok {
		return
	}

	product, err := h.svc.Product.Create(r.Context(), orgID, req.Barcode, req.Name, req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ProductResponse{
		ID:        product.ID,
		OrgID:     product.OrgID,
		Barcode:   product.Barcode,
		Name:      product.Name.String(),
		Price:     product.Price.Int64(),
		CreatedAt: product.CreatedAt,
	})
}
