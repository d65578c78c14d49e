package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/labelpress/pkg/app"
	"github.com/ghuser/labelpress/services/label/application/handlers"
	appsvcs "github.com/ghuser/labelpress/services/label/application/services"
)

// LabelRoutes registers label engine endpoints on the provided chi router.
func LabelRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/labels", func(r chi.Router) {
			r.Post("/validate", handlers.NewValidateHandler(svcs).Execute)

			codes := handlers.NewInternalCodeHandler(svcs)
			r.Post("/internal-code", codes.Mint)
			r.Get("/internal-code/{code}", codes.Status)
			r.Delete("/internal-code", codes.Clear)

			r.Post("/render", handlers.NewRenderHandler(svcs).Execute)

			batch := handlers.NewBatchHandler(svcs)
			r.Post("/batch", batch.Render)
			r.Get("/batch/{id}", batch.Download)
			r.Post("/batch/products", handlers.NewProductBatchHandler(svcs).Execute)
		})
	})
}
