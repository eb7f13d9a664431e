package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	svc := NewCategoryService(newFakeCategoryRepo())

	t.Run("duplicate name conflicts", func(t *testing.T) {
		if _, err := svc.Create(ctx, "Tops", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Create(ctx, "Tops", ""); !errors.Is(err, catalogdomain.ErrCategoryExists) {
			t.Fatalf("expected ErrCategoryExists, got %v", err)
		}
	})

	t.Run("case variant is a distinct category", func(t *testing.T) {
		if _, err := svc.Create(ctx, "tops", ""); err != nil {
			t.Fatalf("case variant should not conflict: %v", err)
		}
	})

	t.Run("update icon returns the updated record", func(t *testing.T) {
		c, err := svc.Create(ctx, "Shoes", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := svc.UpdateIcon(ctx, c.ID, "boot.svg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomIcon != "boot.svg" || got.Name != "Shoes" {
			t.Fatalf("unexpected category: %+v", got)
		}
	})

	t.Run("icon update on unknown ID is ErrCategoryNotFound", func(t *testing.T) {
		if _, err := svc.UpdateIcon(ctx, uuid.New(), "x.svg"); !errors.Is(err, catalogdomain.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("delete then delete again", func(t *testing.T) {
		c, err := svc.Create(ctx, "Hats", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Delete(ctx, c.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Delete(ctx, c.ID); !errors.Is(err, catalogdomain.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		if _, err := svc.Create(ctx, "", ""); !errors.Is(err, catalogdomain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
