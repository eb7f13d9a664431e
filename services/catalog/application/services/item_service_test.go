package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

func createTestItem(t *testing.T, svc *ItemService, name string) *models.Item {
	t.Helper()
	item, err := svc.Create(context.Background(), CreateItemInput{
		Name:     name,
		Category: "Tops",
		Image:    "aW1n",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return item
}

func TestItemServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())

	t.Run("assigns sequential inventory numbers starting at 1", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			item := createTestItem(t, svc, fmt.Sprintf("item %d", i))
			if item.InventoryNumber != i {
				t.Fatalf("expected inventory number %d, got %d", i, item.InventoryNumber)
			}
		}
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateItemInput{Category: "Tops", Image: "aW1n"})
		if !errors.Is(err, catalogdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})
}

func TestItemServiceInventorySequenceAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeItemRepo()
	svc := NewItemService(repo)

	a := createTestItem(t, svc, "a")
	b := createTestItem(t, svc, "b")

	if err := svc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The next number continues from the remaining max, so a gap left by
	// deleting the highest item is reused but earlier gaps are not compacted.
	c := createTestItem(t, svc, "c")
	if c.InventoryNumber != a.InventoryNumber+1 {
		t.Fatalf("expected inventory number %d, got %d", a.InventoryNumber+1, c.InventoryNumber)
	}
}

func TestItemServiceGet(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())
	item := createTestItem(t, svc, "a")

	t.Run("returns stored item", func(t *testing.T) {
		got, err := svc.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "a" || got.InventoryNumber != item.InventoryNumber {
			t.Fatalf("unexpected item: %+v", got)
		}
	})

	t.Run("unknown ID is ErrItemNotFound", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		if !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestItemServiceList(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())
	createTestItem(t, svc, "first")
	createTestItem(t, svc, "second")

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].InventoryNumber != 1 || items[1].InventoryNumber != 2 {
		t.Fatalf("expected ascending inventory order, got %d then %d",
			items[0].InventoryNumber, items[1].InventoryNumber)
	}
}

func TestItemServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())

	t.Run("empty patch is a no-op", func(t *testing.T) {
		item := createTestItem(t, svc, "a")
		got, err := svc.Update(ctx, item.ID, models.ItemPatch{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.UpdatedAt.Equal(item.UpdatedAt) {
			t.Fatal("no-op update must not touch UpdatedAt")
		}
	})

	t.Run("patch is persisted", func(t *testing.T) {
		item := createTestItem(t, svc, "a")
		if _, err := svc.Update(ctx, item.ID, models.ItemPatch{Name: models.Set("renamed")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := svc.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "renamed" {
			t.Fatalf("expected persisted rename, got %q", got.Name)
		}
		if got.InventoryNumber != item.InventoryNumber {
			t.Fatal("update must not change the inventory number")
		}
	})

	t.Run("unknown ID is ErrItemNotFound", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), models.ItemPatch{Name: models.Set("x")})
		if !errors.Is(err, catalogdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("invalid patch is rejected without persisting", func(t *testing.T) {
		item := createTestItem(t, svc, "a")
		_, err := svc.Update(ctx, item.ID, models.ItemPatch{Name: models.Null[string]()})
		if !errors.Is(err, catalogdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
		got, _ := svc.Get(ctx, item.ID)
		if got.Name != "a" {
			t.Fatal("rejected patch must not be persisted")
		}
	})
}

func TestItemServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewItemService(newFakeItemRepo())
	item := createTestItem(t, svc, "a")

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(ctx, item.ID); !errors.Is(err, catalogdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, item.ID); !errors.Is(err, catalogdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on double delete, got %v", err)
	}
}
