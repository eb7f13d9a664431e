package services

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/Lilith-exe/LilysCloset/services/catalog/domain/models"
)

// CountEntry is one key and its item count.
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts is a count mapping that keeps its highest-count-first order
// through JSON marshaling, which a plain map cannot do. Ties break by key
// ascending so output is deterministic.
type OrderedCounts []CountEntry

// MarshalJSON renders the counts as a JSON object in slice order.
func (oc OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range oc {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Count)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the count for key, or 0.
func (oc OrderedCounts) Get(key string) int {
	for _, e := range oc {
		if e.Key == key {
			return e.Count
		}
	}
	return 0
}

func sortCounts(m map[string]int) OrderedCounts {
	out := make(OrderedCounts, 0, len(m))
	for k, n := range m {
		out = append(out, CountEntry{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// CountByCategory counts items per distinct category value, highest count
// first. Distinct means byte-distinct: "Tops" and "tops" count separately.
func CountByCategory(items []*models.Item) OrderedCounts {
	m := make(map[string]int)
	for _, it := range items {
		m[it.Category]++
	}
	return sortCounts(m)
}

// CountTagValues counts, for one tag category, how many items carry each
// distinct tag value under it, highest count first. An item listing the same
// value twice still counts once — the unit is items, not occurrences.
func CountTagValues(items []*models.Item, tagType string) OrderedCounts {
	m := make(map[string]int)
	for _, it := range items {
		seen := make(map[string]bool)
		for _, v := range it.Tags[tagType] {
			if !seen[v] {
				seen[v] = true
				m[v]++
			}
		}
	}
	return sortCounts(m)
}
