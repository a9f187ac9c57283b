package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/acproject/dataapi-sdks/internal/http"
	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// fetchPage retrieves one page of a collection endpoint and decodes it
// into a PageResult. All resource-client List and FetchPage methods go
// through here.
func fetchPage[T any](ctx context.Context, httpClient *http.Client, path string, params *dataapi.QueryParams) (*dataapi.PageResult[T], error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	var page dataapi.PageResult[T]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing %s page response: %w", path, err)
	}

	return &page, nil
}

// expectCreated enforces the create-endpoint contract: the server must
// answer 201 Created. Any other success status is treated as an error.
func expectCreated(path string, resp *http.Response) error {
	if resp.StatusCode == nethttp.StatusCreated {
		return nil
	}

	return &dataapi.Error{
		Kind:       dataapi.ErrorKindHTTP,
		Message:    fmt.Sprintf("expected 201 Created, got %d", resp.StatusCode),
		StatusCode: resp.StatusCode,
		Method:     nethttp.MethodPost,
		URL:        path,
	}
}
