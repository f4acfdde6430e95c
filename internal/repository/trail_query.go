package repository

import (
	"cmp"
	"strings"

	"nzwalks/internal/model"
	"nzwalks/internal/query"
)

// Field names accepted by TrailQuery.
const (
	TrailFieldName   = "Name"
	TrailFieldLength = "Length"
)

// TrailQuery holds the list parameters for walks.
type TrailQuery struct {
	FilterOn    string
	FilterQuery string
	SortBy      string
	IsAscending bool
	PageNumber  int
	PageSize    int
}

// DefaultTrailQuery returns an unfiltered, unsorted first page of 1000 walks.
func DefaultTrailQuery() TrailQuery {
	return TrailQuery{IsAscending: true, PageNumber: 1, PageSize: 1000}
}

// Params converts q for use with TrailFields.
func (q TrailQuery) Params() query.Params {
	return query.Params{
		FilterOn:    q.FilterOn,
		FilterQuery: q.FilterQuery,
		SortBy:      q.SortBy,
		Ascending:   q.IsAscending,
		PageNumber:  q.PageNumber,
		PageSize:    q.PageSize,
	}
}

// TrailFields is the allow-list of walk fields clients may filter or sort on.
// Columns refer to the walks table aliased as w.
var TrailFields = query.Spec[model.Trail]{
	Filters: map[string]query.Filter[model.Trail]{
		TrailFieldName: {
			Column: "w.name",
			Value:  func(t model.Trail) string { return t.Name },
		},
	},
	Sorts: map[string]query.Sort[model.Trail]{
		TrailFieldName: {
			Column:  `w.name COLLATE "C"`,
			Compare: func(a, b model.Trail) int { return strings.Compare(a.Name, b.Name) },
		},
		TrailFieldLength: {
			Column:  "w.length_in_km",
			Compare: func(a, b model.Trail) int { return cmp.Compare(a.LengthInKm, b.LengthInKm) },
		},
	},
}
