package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	productdomain "github.com/Douglascrc/AutoFlex/services/product/domain"
	materialdomain "github.com/Douglascrc/AutoFlex/services/rawmaterial/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrRawMaterialNotFound", materialdomain.ErrRawMaterialNotFound, http.StatusNotFound},
		{"ErrProductNotFound", productdomain.ErrProductNotFound, http.StatusNotFound},
		{"ErrRawMaterialNameTaken", materialdomain.ErrRawMaterialNameTaken, http.StatusConflict},
		{"ErrInvalidRawMaterial", materialdomain.ErrInvalidRawMaterial, http.StatusUnprocessableEntity},
		{"ErrInvalidProduct", productdomain.ErrInvalidProduct, http.StatusUnprocessableEntity},
		{"ErrInvalidBOMLine", productdomain.ErrInvalidBOMLine, http.StatusUnprocessableEntity},
		{"wrapped ErrProductNotFound", fmt.Errorf("check product: %w", productdomain.ErrProductNotFound), http.StatusNotFound},
		{"wrapped ErrInvalidRawMaterial", fmt.Errorf("%w: negative cost", materialdomain.ErrInvalidRawMaterial), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_ProblemBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, materialdomain.ErrRawMaterialNotFound)

	var body struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Title != "Not Found" {
		t.Fatalf("expected title 'Not Found', got %q", body.Title)
	}
	if body.Status != http.StatusNotFound {
		t.Fatalf("expected status 404 in body, got %d", body.Status)
	}
	if body.Detail != materialdomain.ErrRawMaterialNotFound.Error() {
		t.Fatalf("expected detail %q, got %q", materialdomain.ErrRawMaterialNotFound.Error(), body.Detail)
	}
}

func TestWriteError_DistinguishesAttachFailures(t *testing.T) {
	// Both map to 404, but the detail keeps product and raw material apart.
	for _, tt := range []struct {
		err        error
		wantDetail string
	}{
		{productdomain.ErrProductNotFound, "product not found"},
		{materialdomain.ErrRawMaterialNotFound, "raw material not found"},
	} {
		w := httptest.NewRecorder()
		WriteError(w, tt.err)

		var body struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("response body is not valid JSON: %v", err)
		}
		if body.Detail != tt.wantDetail {
			t.Fatalf("expected detail %q, got %q", tt.wantDetail, body.Detail)
		}
	}
}

func TestWriteError_HidesInternalDetailOn500(t *testing.T) {
	storeErr := fmt.Errorf("insert raw material: %w",
		errors.New(`pq: connection to server at "10.0.0.5" failed`))

	w := httptest.NewRecorder()
	WriteError(w, storeErr)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Detail != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("expected generic detail, got %q", body.Detail)
	}
	if strings.Contains(w.Body.String(), "10.0.0.5") || strings.Contains(w.Body.String(), "pq:") {
		t.Fatalf("internal error text leaked to the client: %s", w.Body.String())
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, materialdomain.ErrRawMaterialNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
