package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Douglascrc/AutoFlex/pkg/app"
	"github.com/Douglascrc/AutoFlex/services/rawmaterial/application/handlers"
	appsvcs "github.com/Douglascrc/AutoFlex/services/rawmaterial/application/services"
)

// RawMaterialRoutes registers raw material endpoints on the provided chi router.
func RawMaterialRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/raw-materials", func(r chi.Router) {
			r.Post("/", handlers.NewPostRawMaterialHandler(svcs).Execute)
			r.Get("/", handlers.NewListRawMaterialsHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetRawMaterialHandler(svcs).Execute)
				r.Put("/", handlers.NewPutRawMaterialHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteRawMaterialHandler(svcs).Execute)
			})
		})
	})
}
