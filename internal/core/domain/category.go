package domain

import (
	"slices"
	"strings"
)

// CategoryFilter is a set of category identifiers. Order is irrelevant and
// duplicates collapse.
type CategoryFilter struct {
	ids map[string]struct{}
}

// NewCategoryFilter builds a filter, trimming ids and dropping empty ones.
func NewCategoryFilter(ids ...string) CategoryFilter {
	f := CategoryFilter{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		f.ids[id] = struct{}{}
	}
	return f
}

// Len returns the number of distinct categories.
func (f CategoryFilter) Len() int {
	return len(f.ids)
}

// Contains reports whether id is part of the filter.
func (f CategoryFilter) Contains(id string) bool {
	_, ok := f.ids[id]
	return ok
}

// Values returns the categories sorted, so serialized requests are stable.
// An empty filter yields an empty, non-nil slice.
func (f CategoryFilter) Values() []string {
	out := make([]string, 0, len(f.ids))
	for id := range f.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
