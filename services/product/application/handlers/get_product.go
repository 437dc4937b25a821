package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
)

// GetProductHandler handles GET /products/{id} requests.
type GetProductHandler struct {
	svc *appsvcs.Services
}

// NewGetProductHandler returns a GetProductHandler backed by the given
// services.
func NewGetProductHandler(svc *appsvcs.Services) *GetProductHandler {
	return &GetProductHandler{svc: svc}
}

// Execute retrieves a single product. An absent ID answers a bare 404 with no
// body.
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	httpx.Problem
//	@Failure	404	"not found"
//	@Router		/products/{id} [get]
func (h *GetProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	p, err := h.svc.Product.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, productdomain.ErrProductNotFound) {
			httpx.NotFound(w)
			return
		}
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(p))
}
