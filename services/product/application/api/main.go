package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Douglascrc/AutoFlex/pkg/app"
	"github.com/Douglascrc/AutoFlex/services/product/application/handlers"
	appsvcs "github.com/Douglascrc/AutoFlex/services/product/application/services"
)

// ProductRoutes registers product and BOM endpoints on the provided chi
// router. The static /producible segment is registered alongside /{id}; chi
// matches it first.
func ProductRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
			r.Get("/producible", handlers.NewListProducibleProductsHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetProductHandler(svcs).Execute)
				r.Put("/", handlers.NewPutProductHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteProductHandler(svcs).Execute)
				r.Post("/raw-materials", handlers.NewPostProductRawMaterialHandler(svcs).Execute)
			})
		})
	})
}
