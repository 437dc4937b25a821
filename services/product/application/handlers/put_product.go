package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	pkgvalidator "github.com/Douglascrc/AutoFlex/pkg/validator"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
)

// PutProductHandler handles PUT /products/{id} requests.
type PutProductHandler struct {
	svc *appsvcs.Services
}

// NewPutProductHandler returns a PutProductHandler backed by the given
// services.
func NewPutProductHandler(svc *appsvcs.Services) *PutProductHandler {
	return &PutProductHandler{svc: svc}
}

// Execute replaces every field of a product. An absent ID answers a bare 404
// with no body.
//
//	@Summary	Replace a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Product ID"
//	@Param		request	body		ProductRequest	true	"Replacement payload"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	httpx.Problem
//	@Failure	404		"not found"
//	@Failure	422		{object}	httpx.Problem
//	@Router		/products/{id} [put]
func (h *PutProductHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ProductRequest](w, r)
	if !ok {
		return
	}

	p, err := h.svc.Product.Replace(r.Context(), id, req.Name, req.Description, req.Price)
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
