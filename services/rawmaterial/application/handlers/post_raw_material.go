package handlers

import (
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	pkgvalidator "github.com/Douglascrc/AutoFlex/pkg/validator"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
)

// PostRawMaterialHandler handles POST /raw-materials requests.
type PostRawMaterialHandler struct {
	svc *appsvcs.Services
}

// NewPostRawMaterialHandler returns a PostRawMaterialHandler backed by the
// given services.
func NewPostRawMaterialHandler(svc *appsvcs.Services) *PostRawMaterialHandler {
	return &PostRawMaterialHandler{svc: svc}
}

// Execute registers a raw material. When the name is already registered the
// request restocks it instead: currentStock is added to the existing stock
// while cost and description are overwritten.
//
//	@Summary		Register or restock a raw material
//	@Description	Creates a raw material, or accumulates stock onto the existing record with the same name
//	@Tags			raw-materials
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RawMaterialRequest	true	"Raw material payload"
//	@Success		201		{object}	RawMaterialResponse
//	@Failure		400		{object}	httpx.Problem
//	@Failure		422		{object}	httpx.Problem
//	@Router			/raw-materials [post]
func (h *PostRawMaterialHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RawMaterialRequest](w, r)
	if !ok {
		return
	}

	m, _, err := h.svc.RawMaterial.Upsert(r.Context(), req.Name, req.Description, req.Cost, req.CurrentStock)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(m))
}
