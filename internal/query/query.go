// Package query implements allow-listed filtering, sorting and paging for list endpoints.
//
// A Spec maps the field names a client may send to typed descriptors. Resolving
// request Params against a Spec yields a Plan; unknown field names resolve to
// "no filter" or "no sort" rather than an error. A Plan can be applied to an
// in-memory slice or rendered to SQL by a repository, and both paths share the
// same allow-list. Composition order is always filter, then sort, then page.
package query

import (
	"math"
	"slices"
	"strings"
)

// Params are list parameters as they arrive from a request.
type Params struct {
	FilterOn    string
	FilterQuery string
	SortBy      string
	Ascending   bool
	PageNumber  int
	PageSize    int
}

// Filter describes a field that supports case-insensitive substring matching.
type Filter[T any] struct {
	// Column is the SQL expression compared against the pattern.
	Column string
	// Value extracts the field from an entity.
	Value func(T) string
}

// Sort describes an orderable field.
type Sort[T any] struct {
	// Column is the SQL expression used in ORDER BY.
	Column string
	// Compare orders two entities ascending.
	Compare func(a, b T) int
}

// Spec is the allow-list of filterable and sortable fields for one entity.
// Field names are matched exactly, including case.
type Spec[T any] struct {
	Filters map[string]Filter[T]
	Sorts   map[string]Sort[T]
}

// Plan is a Params value resolved against a Spec.
// A nil Filter or Sort means that step is skipped.
type Plan[T any] struct {
	Filter    *Filter[T]
	Needle    string
	Sort      *Sort[T]
	Ascending bool
	Offset    int
	Limit     int
}

// Resolve looks up the requested fields once and computes the page window.
func (s Spec[T]) Resolve(p Params) Plan[T] {
	plan := Plan[T]{Ascending: p.Ascending}
	if f, ok := s.Filters[p.FilterOn]; ok && p.FilterQuery != "" {
		plan.Filter = &f
		plan.Needle = p.FilterQuery
	}
	if o, ok := s.Sorts[p.SortBy]; ok {
		plan.Sort = &o
	}
	plan.Offset, plan.Limit = Window(p.PageNumber, p.PageSize)
	return plan
}

// Window converts a 1-based page number and a page size to offset and limit.
// Page numbers below 1 are treated as 1 and negative sizes as 0.
func Window(pageNumber, pageSize int) (offset, limit int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > 0 && pageNumber-1 > math.MaxInt/pageSize {
		return math.MaxInt, pageSize
	}
	return (pageNumber - 1) * pageSize, pageSize
}

// Apply runs the plan over items without modifying the input slice.
// Sorting is stable, so entities with equal keys keep their input order.
func (p Plan[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	if p.Filter != nil {
		needle := strings.ToLower(p.Needle)
		for _, it := range items {
			if strings.Contains(strings.ToLower(p.Filter.Value(it)), needle) {
				out = append(out, it)
			}
		}
	} else {
		out = append(out, items...)
	}

	if p.Sort != nil {
		cmp := p.Sort.Compare
		if p.Ascending {
			slices.SortStableFunc(out, cmp)
		} else {
			slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
		}
	}

	if p.Offset >= len(out) {
		return out[:0]
	}
	end := len(out)
	if p.Limit < end-p.Offset {
		end = p.Offset + p.Limit
	}
	return out[p.Offset:end]
}
