package handlers

import (
	"net/http"

	"github.com/ghuser/labelpress/pkg/errhttp"
	pkgvalidator "github.com/ghuser/labelpress/pkg/validator"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
	"github.com/ghuser/labelpress/services/label/domain/render"
)

// RenderLabelRequest is the request body for POST /labels/render.
type RenderLabelRequest struct {
	Barcode     string `json:"barcode"      validate:"required,max=128" example:"SP2345678142"`
	ProductName string `json:"product_name" validate:"required,max=255" example:"Jasmine Rice 5kg"`
	Price       int64  `json:"price"        validate:"min=0" example:"125000"`
	Size        string `json:"size"         validate:"required" example:"38x25"`
} // @name RenderLabelRequest

// RenderHandler handles POST /labels/render requests.
type RenderHandler struct {
	svc *appsvcs.Services
}

// NewRenderHandler returns a RenderHandler backed by the given services.
func NewRenderHandler(svc *appsvcs.Services) *RenderHandler {
	return &RenderHandler{svc: svc}
}

// Execute renders a single label and returns it as SVG.
//
//	@Summary		Render label
//	@Description	Renders one product label (Code128 bars, barcode text, name, price) as a standalone SVG
//	@Tags			labels
//	@Accept			json
//	@Produce		image/svg+xml
//	@Param			request	body		RenderLabelRequest	true	"Label content"
//	@Success		200		{string}	string	"SVG document"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/labels/render [post]
func (h *RenderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RenderLabelRequest](w, r)
	if !ok {
		return
	}

	svg, err := h.svc.Label.RenderLabel(render.LabelRequest{
		Barcode:     req.Barcode,
		ProductName: req.ProductName,
		Price:       req.Price,
		Size:        render.LabelSize(req.Size),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
