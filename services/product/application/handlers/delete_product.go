package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// DeleteProductHandler handles DELETE /products/{id} requests.
type DeleteProductHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProductHandler returns a DeleteProductHandler backed by the given
// services.
func NewDeleteProductHandler(svc *appsvcs.Services) *DeleteProductHandler {
	return &DeleteProductHandler{svc: svc}
}

// Execute deletes a product along with its BOM lines. 204 when a record
// existed, a bare 404 otherwise.
//
//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	string	true	"Product ID"
//	@Success	204	"deleted"
//	@Failure	400	{object}	httpx.Problem
//	@Failure	404	"not found"
//	@Router		/products/{id} [delete]
func (h *DeleteProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	existed, err := h.svc.Product.Delete(r.Context(), id)
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
