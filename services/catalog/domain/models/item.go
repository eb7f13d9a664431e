package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
)

// TagMap is the schema-less tag mapping on a clothing item: tag category name
// to an ordered list of tag values, e.g. {"color": ["red", "blue"]}.
// Keys are advisory — the tag taxonomy is not enforced at item-write time —
// and duplicate values within a list are permitted.
type TagMap map[string][]string

// Clone returns a deep copy so stored items never alias caller maps.
func (t TagMap) Clone() TagMap {
	if t == nil {
		return TagMap{}
	}
	out := make(TagMap, len(t))
	for k, vs := range t {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// Item is the core aggregate of the catalog: one garment in the closet.
// Category and Subcategory are denormalized string references; they are matched
// against the category stores by convention, never foreign-key enforced, so
// dangling references are possible and not an error.
type Item struct {
	ID              uuid.UUID
	InventoryNumber int // sequential, assigned by the store at creation, never changed
	Name            string
	Category        string
	Subcategory     string // optional
	Image           string // base64-encoded, stored and returned verbatim
	Tags            TagMap
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewItem constructs a valid Item with a generated ID and current timestamps.
// The inventory number is assigned later, by the store, at persist time.
func NewItem(name, category, subcategory, image, notes string, tags TagMap) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", catalogdomain.ErrInvalidItem)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", catalogdomain.ErrInvalidItem)
	}
	if image == "" {
		return nil, fmt.Errorf("%w: image is required", catalogdomain.ErrInvalidItem)
	}

	now := time.Now().UTC()
	return &Item{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Subcategory: subcategory,
		Image:       image,
		Tags:        tags.Clone(),
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply mutates the item with the fields present in the patch and refreshes
// UpdatedAt. Callers must skip Apply entirely for an empty patch — a no-op
// update leaves UpdatedAt untouched.
//
// Patch semantics: a field absent from the payload is left unchanged; an
// explicit null clears it. Name, category, and image are required fields and
// cannot be cleared. The inventory number is never alterable.
func (it *Item) Apply(p ItemPatch) error {
	if p.Name.Present {
		if !p.Name.Valid || p.Name.Value == "" {
			return fmt.Errorf("%w: name cannot be cleared", catalogdomain.ErrInvalidItem)
		}
		it.Name = p.Name.Value
	}
	if p.Category.Present {
		if !p.Category.Valid || p.Category.Value == "" {
			return fmt.Errorf("%w: category cannot be cleared", catalogdomain.ErrInvalidItem)
		}
		it.Category = p.Category.Value
	}
	if p.Image.Present {
		if !p.Image.Valid || p.Image.Value == "" {
			return fmt.Errorf("%w: image cannot be cleared", catalogdomain.ErrInvalidItem)
		}
		it.Image = p.Image.Value
	}
	if p.Subcategory.Present {
		it.Subcategory = "" // cleared on null
		if p.Subcategory.Valid {
			it.Subcategory = p.Subcategory.Value
		}
	}
	if p.Notes.Present {
		it.Notes = ""
		if p.Notes.Valid {
			it.Notes = p.Notes.Value
		}
	}
	if p.Tags.Present {
		it.Tags = TagMap{}
		if p.Tags.Valid {
			it.Tags = p.Tags.Value.Clone()
		}
	}

	it.UpdatedAt = time.Now().UTC()
	return nil
}

// ItemPatch is a partial update for an Item. Each field distinguishes
// "absent", "explicit null", and "set to value" (see Optional).
type ItemPatch struct {
	Name        Optional[string]
	Category    Optional[string]
	Subcategory Optional[string]
	Image       Optional[string]
	Tags        Optional[TagMap]
	Notes       Optional[string]
}

// IsEmpty reports whether no field is present in the patch.
func (p ItemPatch) IsEmpty() bool {
	return !p.Name.Present && !p.Category.Present && !p.Subcategory.Present &&
		!p.Image.Present && !p.Tags.Present && !p.Notes.Present
}
