package services

import (
	"github.com/Lilith-exe/LilysCloset/pkg/app"
	"github.com/Lilith-exe/LilysCloset/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for the catalog bounded
// context. It wires domain services with their infrastructure implementations.
type Services struct {
	Item        *ItemService
	Category    *CategoryService
	Subcategory *SubcategoryService
	Taxonomy    *TaxonomyService
	Query       *QueryService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	itemRepo := postgres.NewItemRepository(a.Db, a.EventBus)
	taxonomy := NewTaxonomyService(postgres.NewTaxonomyRepository(a.Db))

	return &Services{
		Item:        NewItemService(itemRepo),
		Category:    NewCategoryService(postgres.NewCategoryRepository(a.Db)),
		Subcategory: NewSubcategoryService(postgres.NewSubcategoryRepository(a.Db)),
		Taxonomy:    taxonomy,
		Query:       NewQueryService(itemRepo, taxonomy),
	}
}
