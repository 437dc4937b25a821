package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	pkgvalidator "github.com/Douglascrc/AutoFlex/pkg/validator"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// PostProductRawMaterialHandler handles POST /products/{id}/raw-materials
// requests.
type PostProductRawMaterialHandler struct {
	svc *appsvcs.Services
}

// NewPostProductRawMaterialHandler returns a PostProductRawMaterialHandler
// backed by the given services.
func NewPostProductRawMaterialHandler(svc *appsvcs.Services) *PostProductRawMaterialHandler {
	return &PostProductRawMaterialHandler{svc: svc}
}

// Execute attaches a raw material to the product's bill of materials.
// The product's existence is checked before the raw material's, so the 404
// problem body names the product when both are missing. Repeating the same
// pair appends another independent line.
//
//	@Summary		Attach a raw material to a product
//	@Description	Appends a BOM line declaring the per-unit consumption of a raw material
//	@Tags			products
//	@Accept			json
//	@Param			id		path	string						true	"Product ID"
//	@Param			request	body	AttachRawMaterialRequest	true	"Attachment payload"
//	@Success		200		"attached"
//	@Failure		400		{object}	httpx.Problem
//	@Failure		404		{object}	httpx.Problem
//	@Failure		422		{object}	httpx.Problem
//	@Router			/products/{id}/raw-materials [post]
func (h *PostProductRawMaterialHandler) Execute(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteProblem(w, httpx.Problem{
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "id must be a valid UUID",
		})
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AttachRawMaterialRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Product.AttachRawMaterial(r.Context(), productID, req.RawMaterialID, req.Quantity); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
