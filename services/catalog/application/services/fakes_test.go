package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// fakeItemRepo is an in-memory ItemRepository that mirrors the store contract:
// sequential inventory numbers assigned at create, never compacted on delete.
type fakeItemRepo struct {
	items map[uuid.UUID]*models.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*models.Item)}
}

func (r *fakeItemRepo) Create(_ context.Context, item *models.Item) error {
	max := 0
	for _, it := range r.items {
		if it.InventoryNumber > max {
			max = it.InventoryNumber
		}
	}
	item.InventoryNumber = max + 1
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, catalogdomain.ErrItemNotFound
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetByInventoryNumber(_ context.Context, n int) (*models.Item, error) {
	for _, it := range r.items {
		if it.InventoryNumber == n {
			cp := *it
			return &cp, nil
		}
	}
	return nil, catalogdomain.ErrItemNotFound
}

func (r *fakeItemRepo) List(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InventoryNumber < out[j].InventoryNumber
	})
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return catalogdomain.ErrItemNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return catalogdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeTaxonomyRepo is an in-memory TaxonomyRepository with the same uniqueness
// rules as the Postgres implementation.
type fakeTaxonomyRepo struct {
	tagCategories map[uuid.UUID]*models.TagCategory
	tags          map[uuid.UUID]*models.Tag
}

func newFakeTaxonomyRepo() *fakeTaxonomyRepo {
	return &fakeTaxonomyRepo{
		tagCategories: make(map[uuid.UUID]*models.TagCategory),
		tags:          make(map[uuid.UUID]*models.Tag),
	}
}

func (r *fakeTaxonomyRepo) CreateTagCategory(_ context.Context, tc *models.TagCategory) error {
	for _, existing := range r.tagCategories {
		if existing.Name == tc.Name {
			return catalogdomain.ErrTagCategoryExists
		}
	}
	cp := *tc
	r.tagCategories[tc.ID] = &cp
	return nil
}

func (r *fakeTaxonomyRepo) ListTagCategories(_ context.Context) ([]*models.TagCategory, error) {
	out := make([]*models.TagCategory, 0, len(r.tagCategories))
	for _, tc := range r.tagCategories {
		cp := *tc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTaxonomyRepo) GetTagCategory(_ context.Context, id uuid.UUID) (*models.TagCategory, error) {
	tc, ok := r.tagCategories[id]
	if !ok {
		return nil, catalogdomain.ErrTagCategoryNotFound
	}
	cp := *tc
	return &cp, nil
}

func (r *fakeTaxonomyRepo) DeleteTagCategory(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tagCategories[id]; !ok {
		return catalogdomain.ErrTagCategoryNotFound
	}
	delete(r.tagCategories, id)
	return nil
}

func (r *fakeTaxonomyRepo) CreateTag(_ context.Context, t *models.Tag) error {
	for _, existing := range r.tags {
		if existing.Name == t.Name && existing.TagType == t.TagType {
			return catalogdomain.ErrTagExists
		}
	}
	cp := *t
	r.tags[t.ID] = &cp
	return nil
}

func (r *fakeTaxonomyRepo) ListTags(_ context.Context) ([]*models.Tag, error) {
	out := make([]*models.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TagType != out[j].TagType {
			return out[i].TagType < out[j].TagType
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeTaxonomyRepo) ListTagsByType(_ context.Context, tagType string) ([]*models.Tag, error) {
	out := make([]*models.Tag, 0)
	for _, t := range r.tags {
		if t.TagType == tagType {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTaxonomyRepo) DeleteTag(_ context.Context, id uuid.UUID) error {
	if _, ok := r.tags[id]; !ok {
		return catalogdomain.ErrTagNotFound
	}
	delete(r.tags, id)
	return nil
}

// fakeCategoryRepo is an in-memory CategoryRepository.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*models.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *models.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return catalogdomain.ErrCategoryExists
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) UpdateIcon(_ context.Context, id uuid.UUID, icon string) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, catalogdomain.ErrCategoryNotFound
	}
	c.CustomIcon = icon
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return catalogdomain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

// tagCategoryNames flattens names for assertions, lowercased for set checks.
func tagCategoryNames(tcs []*models.TagCategory) []string {
	out := make([]string, len(tcs))
	for i, tc := range tcs {
		out[i] = strings.ToLower(tc.Name)
	}
	return out
}
