// Package errhttp maps domain sentinel errors to HTTP problem responses.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/Douglascrc/AutoFlex/pkg/httpx"
	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
)

// WriteError maps err to an HTTP status code and writes a problem-detail
// response. Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors default to 500 with a generic detail; only the message
// of a recognized domain error reaches the client.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.WriteProblem(w, httpx.Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: httpx.SafeError(err, status),
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, materialdomain.ErrRawMaterialNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, materialdomain.ErrRawMaterialNameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, materialdomain.ErrInvalidRawMaterial):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, productdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, productdomain.ErrInvalidBOMLine):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
