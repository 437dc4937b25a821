package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	pkgvalidator "github.com/Douglascrc/AutoFlex/pkg/validator"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
)

// PutRawMaterialHandler handles PUT /raw-materials/{id} requests.
type PutRawMaterialHandler struct {
	svc *appsvcs.Services
}

// NewPutRawMaterialHandler returns a PutRawMaterialHandler backed by the given
// services.
func NewPutRawMaterialHandler(svc *appsvcs.Services) *PutRawMaterialHandler {
	return &PutRawMaterialHandler{svc: svc}
}

// Execute replaces every field of a raw material, including the current
// stock. Unlike POST, currentStock here overwrites rather than accumulates.
// An absent ID answers a bare 404 with no body.
//
//	@Summary		Replace a raw material
//	@Description	Full overwrite of name, description, cost and current stock
//	@Tags			raw-materials
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Raw material ID"
//	@Param			request	body		RawMaterialRequest	true	"Replacement payload"
//	@Success		200		{object}	RawMaterialResponse
//	@Failure		400		{object}	httpx.Problem
//	@Failure		404		"not found"
//	@Failure		409		{object}	httpx.Problem
//	@Failure		422		{object}	httpx.Problem
//	@Router			/raw-materials/{id} [put]
func (h *PutRawMaterialHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[RawMaterialRequest](w, r)
	if !ok {
		return
	}

	m, err := h.svc.RawMaterial.Replace(r.Context(), id, req.Name, req.Description, req.Cost, req.CurrentStock)
	if err != nil {
		if errors.Is(err, materialdomain.ErrRawMaterialNotFound) {
			httpx.NotFound(w)
			return
		}
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(m))
}
