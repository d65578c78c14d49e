package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/labelpress/pkg/app"
	"github.com/ghuser/labelpress/services/product/application/handlers"
	appsvcs "github.com/ghuser/labelpress/services/product/application/services"
)

// ProductRoutes registers product endpoints on the provided chi router.
func ProductRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/", handlers.NewListProductsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})
}
