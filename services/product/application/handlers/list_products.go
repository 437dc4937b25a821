package handlers

import (
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// ListProductsHandler handles GET /products requests.
type ListProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProductsHandler returns a ListProductsHandler backed by the given
// services.
func NewListProductsHandler(svc *appsvcs.Services) *ListProductsHandler {
	return &ListProductsHandler{svc: svc}
}

// Execute lists every product.
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	httpx.Problem
//	@Router		/products [get]
func (h *ListProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	httpx.JSON(w, http.StatusOK, out)
}
