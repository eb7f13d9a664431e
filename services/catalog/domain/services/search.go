// Package services contains stateless domain services for the catalog bounded
// context: the search matcher and the statistics aggregation. They operate
// purely on domain types with zero external dependencies beyond stdlib.
package services

import (
	"strings"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// IsInventoryQuery reports whether the query consists only of decimal digits,
// which routes it to the exact inventory-number lookup instead of text search.
func IsInventoryQuery(q string) bool {
	if q == "" {
		return false
	}
	for _, r := range q {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MatchesQuery reports whether the item matches a case-insensitive substring
// search across its name, category, notes, and the value lists stored under
// each of the given tag category names. Tag categories not in tagTypes are not
// searched — the searchable axes follow the registered taxonomy, not the
// item's own keys.
func MatchesQuery(item *models.Item, query string, tagTypes []string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(item.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Category), q) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Notes), q) {
		return true
	}
	for _, tt := range tagTypes {
		for _, v := range item.Tags[tt] {
			if strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
	}
	return false
}

// FilterItems returns the items matching query, preserving input order.
// Callers pass items already sorted by ascending inventory number.
func FilterItems(items []*models.Item, query string, tagTypes []string) []*models.Item {
	out := make([]*models.Item, 0)
	for _, it := range items {
		if MatchesQuery(it, query, tagTypes) {
			out = append(out, it)
		}
	}
	return out
}
