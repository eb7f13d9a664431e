package services

import (
	"context"
	"errors"
	"slices"
	"testing"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

func TestTaxonomyServiceListTagCategoriesSelfHealing(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaxonomyRepo()
	svc := NewTaxonomyService(repo)

	t.Run("fresh store yields the three defaults", func(t *testing.T) {
		tcs, err := svc.ListTagCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := tagCategoryNames(tcs)
		for _, def := range []string{"color", "theme", "features"} {
			if !slices.Contains(names, def) {
				t.Fatalf("missing default %q in %v", def, names)
			}
		}
	})

	t.Run("repeated listing never duplicates", func(t *testing.T) {
		first, err := svc.ListTagCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.ListTagCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("listing grew from %d to %d categories", len(first), len(second))
		}
	})

	t.Run("case variant of a default is not re-created", func(t *testing.T) {
		repo := newFakeTaxonomyRepo()
		svc := NewTaxonomyService(repo)
		if _, err := svc.CreateTagCategory(ctx, "Color"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tcs, err := svc.ListTagCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		colorCount := 0
		for _, name := range tagCategoryNames(tcs) {
			if name == "color" {
				colorCount++
			}
		}
		if colorCount != 1 {
			t.Fatalf("expected one color-ish category, got %d", colorCount)
		}
	})
}

func TestTaxonomyServiceCreateTagCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewTaxonomyService(newFakeTaxonomyRepo())

	if _, err := svc.CreateTagCategory(ctx, "season"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.CreateTagCategory(ctx, "season"); !errors.Is(err, catalogdomain.ErrTagCategoryExists) {
		t.Fatalf("expected ErrTagCategoryExists, got %v", err)
	}
}

func TestTaxonomyServiceDeleteTagCategory(t *testing.T) {
	ctx := context.Background()
	svc := NewTaxonomyService(newFakeTaxonomyRepo())

	t.Run("custom category deletes", func(t *testing.T) {
		tc, err := svc.CreateTagCategory(ctx, "season")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteTagCategory(ctx, tc.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("protected default is refused", func(t *testing.T) {
		tcs, err := svc.ListTagCategories(ctx) // heals defaults
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, tc := range tcs {
			if tc.Name != "color" {
				continue
			}
			if err := svc.DeleteTagCategory(ctx, tc.ID); !errors.Is(err, catalogdomain.ErrTagCategoryProtected) {
				t.Fatalf("expected ErrTagCategoryProtected, got %v", err)
			}
			return
		}
		t.Fatal("default color category missing after healing")
	})

	t.Run("case-variant protected default is refused", func(t *testing.T) {
		repo := newFakeTaxonomyRepo()
		svc := NewTaxonomyService(repo)
		tc, err := svc.CreateTagCategory(ctx, "Features")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteTagCategory(ctx, tc.ID); !errors.Is(err, catalogdomain.ErrTagCategoryProtected) {
			t.Fatalf("expected ErrTagCategoryProtected, got %v", err)
		}
	})
}

func TestTaxonomyServiceTags(t *testing.T) {
	ctx := context.Background()
	svc := NewTaxonomyService(newFakeTaxonomyRepo())

	t.Run("duplicate (name, tag_type) conflicts", func(t *testing.T) {
		if _, err := svc.CreateTag(ctx, "blue", "color", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.CreateTag(ctx, "blue", "color", nil); !errors.Is(err, catalogdomain.ErrTagExists) {
			t.Fatalf("expected ErrTagExists, got %v", err)
		}
		// Same name under a different type is fine.
		if _, err := svc.CreateTag(ctx, "blue", "theme", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete unknown tag is ErrTagNotFound", func(t *testing.T) {
		tag, err := svc.CreateTag(ctx, "red", "color", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteTag(ctx, tag.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteTag(ctx, tag.ID); !errors.Is(err, catalogdomain.ErrTagNotFound) {
			t.Fatalf("expected ErrTagNotFound, got %v", err)
		}
	})
}

func TestTaxonomyServiceListTagsByType(t *testing.T) {
	ctx := context.Background()
	svc := NewTaxonomyService(newFakeTaxonomyRepo())

	mustCreate := func(name string, categories []string) {
		t.Helper()
		if _, err := svc.CreateTag(ctx, name, "features", categories); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	mustCreate("cropped", []string{"Tops"})
	mustCreate("pockets", nil) // global
	mustCreate("zippered", []string{"Jackets"})

	t.Run("no filter returns all of the type", func(t *testing.T) {
		tags, err := svc.ListTagsByType(ctx, "features", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 3 {
			t.Fatalf("expected 3 tags, got %d", len(tags))
		}
	})

	t.Run("category filter keeps global and matching tags", func(t *testing.T) {
		tags, err := svc.ListTagsByType(ctx, "features", "Tops")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %d", len(tags))
		}
	})

	t.Run("the all sentinel disables the filter", func(t *testing.T) {
		tags, err := svc.ListTagsByType(ctx, "features", TagCategoryFilterAll)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 3 {
			t.Fatalf("expected 3 tags, got %d", len(tags))
		}
	})

	t.Run("sentinel is literal, not case-insensitive", func(t *testing.T) {
		tags, err := svc.ListTagsByType(ctx, "features", "All")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// "All" is treated as a real category name nothing is scoped to, so
		// only the global tag survives.
		if len(tags) != 1 || tags[0].Name != "pockets" {
			t.Fatalf("expected only the global tag, got %d tags", len(tags))
		}
	})

	t.Run("unknown type yields empty list", func(t *testing.T) {
		tags, err := svc.ListTagsByType(ctx, "material", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tags) != 0 {
			t.Fatalf("expected no tags, got %d", len(tags))
		}
	})
}
