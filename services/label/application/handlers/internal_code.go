package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/labelpress/pkg/errhttp"
	"github.com/ghuser/labelpress/pkg/httpx"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
)

// MintCodeResponse is returned on successful internal code generation.
type MintCodeResponse struct {
	Code string `json:"code" example:"SP2345678142"`
} // @name MintCodeResponse

// CodeStatusResponse reports whether a code was minted this session.
type CodeStatusResponse struct {
	Code   string `json:"code"   example:"SP2345678142"`
	Minted bool   `json:"minted" example:"true"`
} // @name CodeStatusResponse

// InternalCodeHandler handles the /labels/internal-code endpoints.
type InternalCodeHandler struct {
	svc *appsvcs.Services
}

// NewInternalCodeHandler returns an InternalCodeHandler backed by the given services.
func NewInternalCodeHandler(svc *appsvcs.Services) *InternalCodeHandler {
	return &InternalCodeHandler{svc: svc}
}

// Mint generates a unique internal code.
//
//	@Summary		Mint internal code
//	@Description	Generates a session-unique internal barcode for products without a manufacturer code
//	@Tags			labels
//	@Produce		json
//	@Success		201	{object}	MintCodeResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/labels/internal-code [post]
func (h *InternalCodeHandler) Mint(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.Label.MintCode()
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, MintCodeResponse{Code: code})
}

// Status reports whether a code was minted during the current session.
//
//	@Summary		Check internal code
//	@Description	Reports whether the given code was minted this session
//	@Tags			labels
//	@Produce		json
//	@Param			code	path		string	true	"Internal code"
//	@Success		200		{object}	CodeStatusResponse
//	@Router			/labels/internal-code/{code} [get]
func (h *InternalCodeHandler) Status(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	httpx.JSON(w, http.StatusOK, CodeStatusResponse{
		Code:   code,
		Minted: h.svc.Label.IsMinted(code),
	})
}

// Clear resets the session code registry.
//
//	@Summary		Clear internal codes
//	@Description	Drops all codes minted this session; subsequent mints may reuse values
//	@Tags			labels
//	@Success		204
//	@Router			/labels/internal-code [delete]
func (h *InternalCodeHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.Label.ClearCodes()
	w.WriteHeader(http.StatusNoContent)
}
