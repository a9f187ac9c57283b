package dataapi

import (
	"context"
)

// PageFetcher fetches one page of T from a list endpoint. Resource clients
// implement this via their List methods.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[T], error)
}

// PageFetcherFunc adapts a function to the PageFetcher interface.
type PageFetcherFunc[T any] func(ctx context.Context, path string, params *QueryParams) (*PageResult[T], error)

// FetchPage implements PageFetcher.
func (f PageFetcherFunc[T]) FetchPage(ctx context.Context, path string, params *QueryParams) (*PageResult[T], error) {
	return f(ctx, path, params)
}

// PageIterator walks a paginated list endpoint item by item, fetching pages
// lazily. It is not safe for concurrent use.
type PageIterator[T any] struct {
	ctx     context.Context
	fetcher PageFetcher[T]
	path    string
	params  *QueryParams

	buffer  []T
	index   int
	page    int
	fetched bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over a paginated endpoint. A nil
// params starts at page 1 with the server's default size.
func NewPageIterator[T any](ctx context.Context, fetcher PageFetcher[T], path string, params *QueryParams) *PageIterator[T] {
	if params == nil {
		params = NewQueryParams()
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &PageIterator[T]{
		ctx:     ctx,
		fetcher: fetcher,
		path:    path,
		params:  params,
		page:    page,
	}
}

func (it *PageIterator[T]) fetch() {
	params := *it.params
	params.Page = it.page

	result, err := it.fetcher.FetchPage(it.ctx, it.path, &params)
	if err != nil {
		it.err = err
		it.done = true

		return
	}

	it.buffer = result.Content
	it.index = 0
	it.fetched = true

	if result.Last || result.TotalPages == 0 || len(result.Content) == 0 {
		it.done = true
	}

	it.page++
}

// HasNext reports whether another item is available. It may fetch the next
// page to find out.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.buffer) {
		return true
	}

	if it.done || it.err != nil {
		return false
	}

	it.fetch()

	return it.index < len(it.buffer)
}

// Next returns the next item, or ErrNoMoreItems when the sequence is
// exhausted.
func (it *PageIterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		if it.err != nil {
			return nil, it.err
		}

		return nil, ErrNoMoreItems
	}

	item := it.buffer[it.index]
	it.index++

	return &item, nil
}

// All collects the remaining items.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *item)
	}

	if it.err != nil {
		return nil, it.err
	}

	return all, nil
}

// ForEach applies fn to each remaining item, stopping on the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(*item)
		if err != nil {
			return err
		}
	}

	return it.err
}
