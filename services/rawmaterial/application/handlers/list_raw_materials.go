package handlers

import (
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/errhttp"
	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
)

// ListRawMaterialsHandler handles GET /raw-materials requests.
type ListRawMaterialsHandler struct {
	svc *appsvcs.Services
}

// NewListRawMaterialsHandler returns a ListRawMaterialsHandler backed by the
// given services.
func NewListRawMaterialsHandler(svc *appsvcs.Services) *ListRawMaterialsHandler {
	return &ListRawMaterialsHandler{svc: svc}
}

// Execute lists every raw material.
//
//	@Summary	List raw materials
//	@Tags		raw-materials
//	@Produce	json
//	@Success	200	{array}		RawMaterialResponse
//	@Failure	500	{object}	httpx.Problem
//	@Router		/raw-materials [get]
func (h *ListRawMaterialsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	materials, err := h.svc.RawMaterial.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]RawMaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toResponse(m))
	}
	httpx.JSON(w, http.StatusOK, out)
}
