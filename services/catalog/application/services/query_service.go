package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	catalogdomain "github.com/Lilith-exe/LilysCloset/services/catalog/domain"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/repositories"
	domainsvcs "github.com/Lilith-exe/LilysCloset/services/catalog/domain/services"
)

// Stats is the aggregated catalog statistics payload. Categories and the
// per-tag-category mappings are ordered highest count first; tag categories
// with zero occurrences are present with an empty mapping.
type Stats struct {
	TotalItems int                                 `json:"total_items"`
	Categories domainsvcs.OrderedCounts            `json:"categories"`
	Tags       map[string]domainsvcs.OrderedCounts `json:"tags"`
}

// QueryService implements search and statistics over the item collection.
// There is no index or cache behind it: every call reads the store and
// filters/counts in memory, which is proportionate to a personal closet.
type QueryService struct {
	items    repositories.ItemRepository
	taxonomy *TaxonomyService
}

// NewQueryService returns a QueryService over the given item repository and
// taxonomy service. The taxonomy service is used (rather than the raw
// repository) so the protected default tag categories are always searchable.
func NewQueryService(items repositories.ItemRepository, taxonomy *TaxonomyService) *QueryService {
	return &QueryService{items: items, taxonomy: taxonomy}
}

// Search dispatches on the query shape. A digit-only query is an exact
// inventory-number lookup and short-circuits: on a miss it returns an empty
// result rather than falling through to text search. Anything else is a
// case-insensitive substring match across name, category, notes, and the
// value lists of every registered tag category, ordered by ascending
// inventory number.
func (s *QueryService) Search(ctx context.Context, query string) ([]*models.Item, error) {
	if domainsvcs.IsInventoryQuery(query) {
		n, err := strconv.Atoi(query)
		if err != nil {
			// Digits but out of int range: no inventory number can match.
			return []*models.Item{}, nil
		}
		item, err := s.items.GetByInventoryNumber(ctx, n)
		if err != nil {
			if errors.Is(err, catalogdomain.ErrItemNotFound) {
				return []*models.Item{}, nil
			}
			return nil, fmt.Errorf("search by inventory number: %w", err)
		}
		return []*models.Item{item}, nil
	}

	tagTypes, err := s.taxonomy.TagCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return domainsvcs.FilterItems(items, query, tagTypes), nil
}

// Stats aggregates the catalog: total item count, items per distinct category
// value, and per registered tag category the item count of each tag value.
func (s *QueryService) Stats(ctx context.Context) (*Stats, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	tagTypes, err := s.taxonomy.TagCategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalItems: len(items),
		Categories: domainsvcs.CountByCategory(items),
		Tags:       make(map[string]domainsvcs.OrderedCounts, len(tagTypes)),
	}
	for _, tt := range tagTypes {
		stats.Tags[tt] = domainsvcs.CountTagValues(items, tt)
	}
	return stats, nil
}
