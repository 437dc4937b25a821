package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
)

// DeleteRawMaterialHandler handles DELETE /raw-materials/{id} requests.
type DeleteRawMaterialHandler struct {
	svc *appsvcs.Services
}

// NewDeleteRawMaterialHandler returns a DeleteRawMaterialHandler backed by the
// given services.
func NewDeleteRawMaterialHandler(svc *appsvcs.Services) *DeleteRawMaterialHandler {
	return &DeleteRawMaterialHandler{svc: svc}
}

// Execute deletes a raw material along with its BOM lines. Deleting is
// idempotent at the store level; only the response differs, 204 when a record
// existed and a bare 404 otherwise.
//
//	@Summary	Delete a raw material
//	@Tags		raw-materials
//	@Param		id	path	string	true	"Raw material ID"
//	@Success	204	"deleted"
//	@Failure	400	{object}	httpx.Problem
//	@Failure	404	"not found"
//	@Router		/raw-materials/{id} [delete]
func (h *DeleteRawMaterialHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	existed, err := h.svc.RawMaterial.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if !existed {
		httpx.NotFound(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
