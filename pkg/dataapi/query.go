package dataapi

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common query parameters for list operations.
// Page is 1-based, following the DataAPI pagination convention.
type QueryParams struct {
	Page    int
	Size    int
	Sort    string
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithSize sets the page size.
func (q *QueryParams) WithSize(size int) *QueryParams {
	q.Size = size

	return q
}

// WithSort sets the sort expression, e.g. "-createdAt".
func (q *QueryParams) WithSort(sort string) *QueryParams {
	q.Sort = sort

	return q
}

// WithFilter adds filter values for a key.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values. Multi-valued filters are
// joined with commas.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.Size > 0 {
		values.Set("size", strconv.Itoa(q.Size))
	}

	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}

	for key, filterValues := range q.Filters {
		if len(filterValues) > 0 {
			values.Set(key, strings.Join(filterValues, ","))
		}
	}

	return values
}
