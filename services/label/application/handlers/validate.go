package handlers

import (
	"net/http"

	"github.com/ghuser/labelpress/pkg/httpx"
	pkgvalidator "github.com/ghuser/labelpress/pkg/validator"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
	"github.com/ghuser/labelpress/services/label/domain/barcode"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"unknown label size"`
} // @name ErrorResponse

// ValidateBarcodeRequest is the request body for POST /labels/validate.
// Barcode has no required tag on purpose: an empty value is a legitimate
// input that yields an invalid verdict, not a malformed request.
type ValidateBarcodeRequest struct {
	Barcode string `json:"barcode" validate:"max=128" example:"8935049501234"`
} // @name ValidateBarcodeRequest

// ValidateBarcodeResponse mirrors the engine's validation verdict.
type ValidateBarcodeResponse struct {
	IsValid bool   `json:"is_valid" example:"true"`
	Format  string `json:"format,omitempty" example:"EAN13"`
	Error   string `json:"error,omitempty" example:"format not recognized, supported: EAN-13, EAN-8, UPC-A, Code128"`
} // @name ValidateBarcodeResponse

// ValidateHandler handles POST /labels/validate requests.
type ValidateHandler struct {
	svc *appsvcs.Services
}

// NewValidateHandler returns a ValidateHandler backed by the given services.
func NewValidateHandler(svc *appsvcs.Services) *ValidateHandler {
	return &ValidateHandler{svc: svc}
}

// Execute classifies a barcode against the supported symbologies.
//
//	@Summary		Validate barcode
//	@Description	Classifies a barcode as EAN-13, EAN-8, UPC-A, Code128, or an internal code. Always returns 200; the verdict is in the body.
//	@Tags			labels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ValidateBarcodeRequest	true	"Barcode to classify"
//	@Success		200		{object}	ValidateBarcodeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/labels/validate [post]
func (h *ValidateHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ValidateBarcodeRequest](w, r)
	if !ok {
		return
	}

	result := h.svc.Label.Validate(req.Barcode)
	httpx.JSON(w, http.StatusOK, toValidateResponse(result))
}

func toValidateResponse(result barcode.ValidationResult) ValidateBarcodeResponse {
	return ValidateBarcodeResponse{
		IsValid: result.Valid,
		Format:  string(result.Format),
		Error:   result.Err,
	}
}
