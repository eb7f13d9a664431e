package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

func TestNewItem(t *testing.T) {
	t.Run("returns item with non-zero ID", func(t *testing.T) {
		item, err := NewItem("Denim jacket", "Jackets", "", "aW1n", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("leaves inventory number unassigned", func(t *testing.T) {
		item, err := NewItem("Denim jacket", "Jackets", "", "aW1n", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.InventoryNumber != 0 {
			t.Fatalf("expected inventory number 0 before persist, got %d", item.InventoryNumber)
		}
	})

	t.Run("sets CreatedAt and UpdatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewItem("Denim jacket", "Jackets", "", "aW1n", "", nil)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
		if !item.UpdatedAt.Equal(item.CreatedAt) {
			t.Fatalf("expected UpdatedAt == CreatedAt on creation, got %v vs %v", item.UpdatedAt, item.CreatedAt)
		}
	})

	t.Run("clones the tags map", func(t *testing.T) {
		tags := TagMap{"color": {"blue"}}
		item, err := NewItem("Denim jacket", "Jackets", "", "aW1n", "", tags)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tags["color"][0] = "red"
		if item.Tags["color"][0] != "blue" {
			t.Fatal("stored tags alias the caller's map")
		}
	})

	t.Run("nil tags become an empty map", func(t *testing.T) {
		item, err := NewItem("Denim jacket", "Jackets", "", "aW1n", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Tags == nil {
			t.Fatal("expected non-nil tags map")
		}
	})

	tests := []struct {
		name     string
		itemName string
		category string
		image    string
	}{
		{"missing name", "", "Jackets", "aW1n"},
		{"missing category", "Denim jacket", "", "aW1n"},
		{"missing image", "Denim jacket", "Jackets", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name+" is invalid", func(t *testing.T) {
			_, err := NewItem(tt.itemName, tt.category, "", tt.image, "", nil)
			if !errors.Is(err, catalogdomain.ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
		})
	}
}

func TestItemApply(t *testing.T) {
	newItem := func(t *testing.T) *Item {
		t.Helper()
		item, err := NewItem("Denim jacket", "Jackets", "Denim", "aW1n", "thrifted", TagMap{"color": {"blue"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return item
	}

	t.Run("absent fields are untouched", func(t *testing.T) {
		item := newItem(t)
		if err := item.Apply(ItemPatch{Name: Set("Leather jacket")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != "Leather jacket" {
			t.Fatalf("expected name updated, got %q", item.Name)
		}
		if item.Category != "Jackets" || item.Subcategory != "Denim" || item.Notes != "thrifted" {
			t.Fatal("absent fields were modified")
		}
	})

	t.Run("explicit null clears subcategory, notes, and tags", func(t *testing.T) {
		item := newItem(t)
		patch := ItemPatch{
			Subcategory: Null[string](),
			Notes:       Null[string](),
			Tags:        Null[TagMap](),
		}
		if err := item.Apply(patch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Subcategory != "" || item.Notes != "" {
			t.Fatalf("expected cleared fields, got subcategory=%q notes=%q", item.Subcategory, item.Notes)
		}
		if len(item.Tags) != 0 {
			t.Fatalf("expected empty tags, got %v", item.Tags)
		}
	})

	t.Run("null on required fields is rejected", func(t *testing.T) {
		for name, patch := range map[string]ItemPatch{
			"name":     {Name: Null[string]()},
			"category": {Category: Null[string]()},
			"image":    {Image: Null[string]()},
		} {
			item := newItem(t)
			if err := item.Apply(patch); !errors.Is(err, catalogdomain.ErrInvalidItem) {
				t.Fatalf("null %s: expected ErrInvalidItem, got %v", name, err)
			}
		}
	})

	t.Run("refreshes UpdatedAt but never CreatedAt", func(t *testing.T) {
		item := newItem(t)
		created := item.CreatedAt
		updated := item.UpdatedAt
		time.Sleep(time.Millisecond)
		if err := item.Apply(ItemPatch{Notes: Set("re-hemmed")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.CreatedAt.Equal(created) {
			t.Fatal("CreatedAt changed on update")
		}
		if !item.UpdatedAt.After(updated) {
			t.Fatal("UpdatedAt not refreshed on update")
		}
	})

	t.Run("replacing tags clones the patch map", func(t *testing.T) {
		item := newItem(t)
		tags := TagMap{"theme": {"goth"}}
		if err := item.Apply(ItemPatch{Tags: Set(tags)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tags["theme"][0] = "cottagecore"
		if item.Tags["theme"][0] != "goth" {
			t.Fatal("stored tags alias the patch map")
		}
	})
}

func TestItemPatchIsEmpty(t *testing.T) {
	if !(ItemPatch{}).IsEmpty() {
		t.Fatal("zero patch should be empty")
	}
	if (ItemPatch{Notes: Null[string]()}).IsEmpty() {
		t.Fatal("patch with explicit null is not empty")
	}
	if (ItemPatch{Name: Set("x")}).IsEmpty() {
		t.Fatal("patch with set field is not empty")
	}
}
