package handlers

import (
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	pkgvalidator "github.com/Douglascrc/AutoFlex/pkg/validator"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// PostProductHandler handles POST /products requests.
type PostProductHandler struct {
	svc *appsvcs.Services
}

// NewPostProductHandler returns a PostProductHandler backed by the given
// services.
func NewPostProductHandler(svc *appsvcs.Services) *PostProductHandler {
	return &PostProductHandler{svc: svc}
}

// Execute creates a product.
//
//	@Summary	Create product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ProductRequest	true	"Product payload"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	httpx.Problem
//	@Failure	422		{object}	httpx.Problem
//	@Router		/products [post]
func (h *PostProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}

	p, err := h.svc.Product.Create(r.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(p))
}
