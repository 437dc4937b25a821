package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
)

// GetRawMaterialHandler handles GET /raw-materials/{id} requests.
type GetRawMaterialHandler struct {
	svc *appsvcs.Services
}

// NewGetRawMaterialHandler returns a GetRawMaterialHandler backed by the given
// services.
func NewGetRawMaterialHandler(svc *appsvcs.Services) *GetRawMaterialHandler {
	return &GetRawMaterialHandler{svc: svc}
}

// Execute retrieves a single raw material. An absent ID answers a bare 404
// with no body.
//
//	@Summary	Get a raw material
//	@Tags		raw-materials
//	@Produce	json
//	@Param		id	path		string	true	"Raw material ID"
//	@Success	200	{object}	RawMaterialResponse
//	@Failure	400	{object}	httpx.Problem
//	@Failure	404	"not found"
//	@Router		/raw-materials/{id} [get]
func (h *GetRawMaterialHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	m, err := h.svc.RawMaterial.GetByID(r.Context(), id)
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
