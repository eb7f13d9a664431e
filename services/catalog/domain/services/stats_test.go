package services

import (
	"encoding/json"
	"testing"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

func TestCountByCategory(t *testing.T) {
	items := []*models.Item{
		testItem(t, "a", "Tops", "", nil),
		testItem(t, "b", "Tops", "", nil),
		testItem(t, "c", "Shoes", "", nil),
		testItem(t, "d", "tops", "", nil),
	}

	counts := CountByCategory(items)

	t.Run("highest count first", func(t *testing.T) {
		if counts[0].Key != "Tops" || counts[0].Count != 2 {
			t.Fatalf("expected Tops=2 first, got %+v", counts[0])
		}
	})

	t.Run("case variants count separately", func(t *testing.T) {
		if counts.Get("tops") != 1 {
			t.Fatalf("expected lowercase tops=1, got %d", counts.Get("tops"))
		}
	})

	t.Run("ties break by key ascending", func(t *testing.T) {
		if counts[1].Key != "Shoes" || counts[2].Key != "tops" {
			t.Fatalf("unexpected tie order: %+v", counts)
		}
	})
}

func TestCountTagValues(t *testing.T) {
	items := []*models.Item{
		testItem(t, "a", "Tops", "", models.TagMap{"color": {"blue", "blue", "red"}}),
		testItem(t, "b", "Tops", "", models.TagMap{"color": {"blue"}}),
		testItem(t, "c", "Tops", "", models.TagMap{"theme": {"goth"}}),
	}

	counts := CountTagValues(items, "color")

	t.Run("counts items not occurrences", func(t *testing.T) {
		if counts.Get("blue") != 2 {
			t.Fatalf("expected blue=2, got %d", counts.Get("blue"))
		}
	})

	t.Run("other axes are not counted", func(t *testing.T) {
		if counts.Get("goth") != 0 {
			t.Fatal("theme value leaked into color counts")
		}
	})

	t.Run("absent axis yields empty counts", func(t *testing.T) {
		if got := CountTagValues(items, "season"); len(got) != 0 {
			t.Fatalf("expected no counts, got %+v", got)
		}
	})
}

func TestOrderedCountsMarshalJSON(t *testing.T) {
	oc := OrderedCounts{
		{Key: "Tops", Count: 3},
		{Key: "Shoes", Count: 1},
	}

	b, err := json.Marshal(oc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"Tops":3,"Shoes":1}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}

	t.Run("empty counts marshal to empty object", func(t *testing.T) {
		b, err := json.Marshal(OrderedCounts{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(b) != "{}" {
			t.Fatalf("expected {}, got %s", b)
		}
	})
}
