package handlers

import (
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// ListProducibleProductsHandler handles GET /products/producible requests.
type ListProducibleProductsHandler struct {
	svc *appsvcs.Services
}

// NewListProducibleProductsHandler returns a ListProducibleProductsHandler
// backed by the given services.
func NewListProducibleProductsHandler(svc *appsvcs.Services) *ListProducibleProductsHandler {
	return &ListProducibleProductsHandler{svc: svc}
}

// Execute lists the products whose entire bill of materials is satisfiable
// from current stock. Products with no BOM lines are excluded.
//
//	@Summary	List producible products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	httpx.Problem
//	@Router		/products/producible [get]
func (h *ListProducibleProductsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Product.FindProducible(r.Context())
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
