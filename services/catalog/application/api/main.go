package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lilith-exe/LilysCloset/pkg/app"
	"github.com/Lilith-exe/LilysCloset/pkg/httpx"
	"github.com/Lilith-exe/LilysCloset/services/catalog/application/handlers"
	appsvcs "github.com/Lilith-exe/LilysCloset/services/catalog/application/services"
)

// CatalogRoutes registers the catalog endpoints on the provided chi router.
// The router is expected to already be mounted under the /api prefix.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	items := handlers.NewItemsHandler(svcs)
	categories := handlers.NewCategoriesHandler(svcs)
	subcategories := handlers.NewSubcategoriesHandler(svcs)
	tags := handlers.NewTagsHandler(svcs)
	query := handlers.NewQueryHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			httpx.JSONMessage(w, http.StatusOK, "LilysCloset Catalog API")
		})

		r.Route("/clothing-items", func(r chi.Router) {
			r.Post("/", items.Create)
			r.Get("/", items.List)
			r.Get("/search/{query}", query.Search)
			r.Get("/{id}", items.Get)
			r.Put("/{id}", items.Update)
			r.Delete("/{id}", items.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categories.Create)
			r.Get("/", categories.List)
			r.Put("/{id}", categories.UpdateIcon)
			r.Delete("/{id}", categories.Delete)
		})

		// GET takes a parent category name while PUT and DELETE take an ID,
		// so the param is registered under the shared name {key}.
		r.Route("/subcategories", func(r chi.Router) {
			r.Post("/", subcategories.Create)
			r.Get("/{key}", subcategories.ListByParent)
			r.Put("/{key}", subcategories.UpdateIcon)
			r.Delete("/{key}", subcategories.Delete)
		})

		r.Route("/tag-categories", func(r chi.Router) {
			r.Post("/", tags.CreateTagCategory)
			r.Get("/", tags.ListTagCategories)
			r.Delete("/{id}", tags.DeleteTagCategory)
		})

		// Same shape: GET filters by tag type, DELETE removes by ID.
		r.Route("/tags", func(r chi.Router) {
			r.Post("/", tags.CreateTag)
			r.Get("/", tags.ListTags)
			r.Get("/{key}", tags.ListTagsByType)
			r.Delete("/{key}", tags.DeleteTag)
		})

		r.Get("/stats", query.Stats)
	})
}
